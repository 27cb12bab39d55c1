package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/app/services"
	"github.com/studorg/memtrack/internal/middleware"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

// ReportController serves the read-only reporting endpoints. Filters come
// in as query parameters; every handler answers with a plain row list or a
// single aggregate object.
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// periodFilter reads the orgId, semester and acadYear query parameters
// shared by the per-semester reports.
func periodFilter(ctx *gin.Context) (int64, string, string, error) {
	orgID, err := parseIDQuery(ctx, "orgId")
	if err != nil {
		return 0, "", "", err
	}

	semester := ctx.Query("semester")
	acadYear := ctx.Query("acadYear")
	if semester == "" || acadYear == "" {
		return 0, "", "", fmt.Errorf("%w: semester and acadYear are required", apperrors.ErrValidationFailed)
	}

	return orgID, semester, acadYear, nil
}

// UnpaidFees reports members owing money for one organization and semester
func (c *ReportController) UnpaidFees(ctx *gin.Context) {
	orgID, semester, acadYear, err := periodFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := c.reportService.MembersWithUnpaidFees(ctx, orgID, semester, acadYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// MemberDebts reports one student's unpaid terms across organizations
func (c *ReportController) MemberDebts(ctx *gin.Context) {
	studentID, err := parseIDQuery(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := c.reportService.MemberUnpaidFees(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// ExecutiveCommittee reports the committee officers of an organization for
// one academic year.
func (c *ReportController) ExecutiveCommittee(ctx *gin.Context) {
	orgID, err := parseIDQuery(ctx, "orgId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	acadYear := ctx.Query("acadYear")
	if acadYear == "" {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: acadYear is required", apperrors.ErrValidationFailed))
		return
	}

	rows, err := c.reportService.ExecutiveCommittee(ctx, orgID, acadYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// RoleHistory reports everyone who held a committee role in an organization
func (c *ReportController) RoleHistory(ctx *gin.Context) {
	orgID, err := parseIDQuery(ctx, "orgId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := c.reportService.RoleHistory(ctx, orgID, ctx.Query("role"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// LatePayments reports payments made after the due date
func (c *ReportController) LatePayments(ctx *gin.Context) {
	orgID, semester, acadYear, err := periodFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := c.reportService.LatePayments(ctx, orgID, semester, acadYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// StatusBreakdown reports the active/inactive split over recent batches
func (c *ReportController) StatusBreakdown(ctx *gin.Context) {
	orgID, err := parseIDQuery(ctx, "orgId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	nBatches, err := strconv.Atoi(ctx.DefaultQuery("batches", "3"))
	if err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: batches must be a number", apperrors.ErrValidationFailed))
		return
	}

	breakdown, err := c.reportService.MembershipStatusBreakdown(ctx, orgID, nBatches)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(breakdown))
}

// Alumni reports the alumni of an organization up to a batch cutoff
func (c *ReportController) Alumni(ctx *gin.Context) {
	orgID, err := parseIDQuery(ctx, "orgId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	asOf := ctx.Query("asOf")
	if asOf == "" {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: asOf is required", apperrors.ErrValidationFailed))
		return
	}

	rows, err := c.reportService.AlumniMembers(ctx, orgID, asOf)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// FinancialStatus reports fee totals of an organization up to a date
func (c *ReportController) FinancialStatus(ctx *gin.Context) {
	orgID, err := parseIDQuery(ctx, "orgId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	asOf, err := parseDateField("asOf", ctx.Query("asOf"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status, err := c.reportService.OrganizationFinancialStatus(ctx, orgID, asOf)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(status))
}

// HighestDebts reports the largest outstanding balances for one
// organization and semester.
func (c *ReportController) HighestDebts(ctx *gin.Context) {
	orgID, semester, acadYear, err := periodFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := c.reportService.HighestDebtMembers(ctx, orgID, semester, acadYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// TermBalances reports collected and outstanding amounts per term
func (c *ReportController) TermBalances(ctx *gin.Context) {
	rows, err := c.reportService.TermBalances(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// FinancialSummary reports fees, collections and balances per organization
func (c *ReportController) FinancialSummary(ctx *gin.Context) {
	rows, err := c.reportService.FinancialSummaryByOrganization(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}
