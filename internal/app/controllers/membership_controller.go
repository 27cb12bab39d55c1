package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/app/services"
	"github.com/studorg/memtrack/internal/middleware"
	"github.com/studorg/memtrack/internal/pkg/helpers"
)

// MembershipController handles enrollment and lifecycle endpoints
type MembershipController struct {
	membershipService *services.MembershipService
}

// NewMembershipController creates a new MembershipController
func NewMembershipController(membershipService *services.MembershipService) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
	}
}

// CreateMembership enrolls a student into an organization
func (c *MembershipController) CreateMembership(ctx *gin.Context) {
	var req dto.CreateMembershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	membership := &models.Membership{
		Batch:     req.Batch,
		Status:    models.MemberStatus(req.Status),
		Committee: req.Committee,
		OrgID:     req.OrgID,
		StudentID: req.StudentID,
	}

	if err := c.membershipService.CreateMembership(ctx, membership); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromMembership(membership)))
}

// GetMembership retrieves a membership by ID
func (c *MembershipController) GetMembership(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	membership, err := c.membershipService.GetMembership(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromMembership(membership)))
}

// ListOrganizationMembers returns one page of an organization's roster
func (c *MembershipController) ListOrganizationMembers(ctx *gin.Context) {
	orgID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	members, total, err := c.membershipService.ListOrganizationMembers(ctx, orgID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.OrgMemberListResponse{
		Members:        make([]dto.OrgMemberResponse, 0, len(members)),
		PaginationInfo: helpers.NewPaginationInfo(total, page, limit),
	}
	for _, member := range members {
		resp.Members = append(resp.Members, dto.FromOrgMember(member))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateMembershipStatus changes the lifecycle status of a membership. A
// change to inactive levies the one-time reduced fee for the current
// semester.
func (c *MembershipController) UpdateMembershipStatus(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateMembershipStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	membership, err := c.membershipService.UpdateStatus(ctx, id, models.MemberStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromMembership(membership)))
}

// UpdateMembership updates the batch and committee of a membership
func (c *MembershipController) UpdateMembership(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateMembershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	membership, err := c.membershipService.GetMembership(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	membership.Batch = req.Batch
	membership.Committee = req.Committee
	if err := c.membershipService.UpdateMembership(ctx, membership); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromMembership(membership)))
}

// DeleteMembership removes a membership and its terms and payments
func (c *MembershipController) DeleteMembership(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.membershipService.DeleteMembership(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Membership deleted"}))
}
