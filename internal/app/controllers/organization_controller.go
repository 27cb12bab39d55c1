package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/app/services"
	"github.com/studorg/memtrack/internal/middleware"
)

// OrganizationController handles the organization registry endpoints
type OrganizationController struct {
	orgService *services.OrganizationService
}

// NewOrganizationController creates a new OrganizationController
func NewOrganizationController(orgService *services.OrganizationService) *OrganizationController {
	return &OrganizationController{
		orgService: orgService,
	}
}

// CreateOrganization registers a new organization
func (c *OrganizationController) CreateOrganization(ctx *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	org := &models.Organization{Name: req.Name}
	if err := c.orgService.CreateOrganization(ctx, org); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromOrganization(org)))
}

// GetOrganization retrieves an organization by ID
func (c *OrganizationController) GetOrganization(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	org, err := c.orgService.GetOrganization(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromOrganization(org)))
}

// ListOrganizations returns all organizations
func (c *OrganizationController) ListOrganizations(ctx *gin.Context) {
	orgs, err := c.orgService.ListOrganizations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.OrganizationListResponse{
		Organizations: make([]dto.OrganizationResponse, 0, len(orgs)),
	}
	for _, org := range orgs {
		resp.Organizations = append(resp.Organizations, dto.FromOrganization(org))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateOrganization renames an organization
func (c *OrganizationController) UpdateOrganization(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	org := &models.Organization{ID: id, Name: req.Name}
	if err := c.orgService.UpdateOrganization(ctx, org); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromOrganization(org)))
}

// DeleteOrganization removes an organization and all dependent records
func (c *OrganizationController) DeleteOrganization(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.orgService.DeleteOrganization(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Organization deleted"}))
}
