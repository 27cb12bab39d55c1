package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/app/services"
	"github.com/studorg/memtrack/internal/middleware"
)

// TermController handles fee term endpoints
type TermController struct {
	termService *services.TermService
}

// NewTermController creates a new TermController
func NewTermController(termService *services.TermService) *TermController {
	return &TermController{
		termService: termService,
	}
}

// OpenTerm opens the current semester's fee term for a membership. The fee
// follows the lifecycle policy for the membership's status.
func (c *TermController) OpenTerm(ctx *gin.Context) {
	var req dto.OpenTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	asOf, err := parseDateField("asOf", req.AsOf)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	term, err := c.termService.OpenTerm(ctx, req.MembershipID, asOf)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromTerm(term)))
}

// GetTerm retrieves a term with its balance
func (c *TermController) GetTerm(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	term, err := c.termService.GetTerm(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromTerm(term)))
}

// ListMembershipTerms lists the fee terms of a membership, newest first
func (c *TermController) ListMembershipTerms(ctx *gin.Context) {
	membershipID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	terms, err := c.termService.ListTerms(ctx, membershipID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.TermListResponse{Terms: make([]dto.TermResponse, 0, len(terms))}
	for _, term := range terms {
		resp.Terms = append(resp.Terms, dto.FromTerm(term))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
