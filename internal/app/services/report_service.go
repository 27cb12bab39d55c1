package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/pkg/academic"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

// ReportService answers the read-only reporting queries. It validates
// filter parameters and resolves referenced entities before running the
// aggregation, so bad filters surface as 4xx instead of empty result sets.
type ReportService struct {
	reportRepo  ReportRepository
	orgRepo     OrganizationRepository
	studentRepo StudentRepository
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo ReportRepository, orgRepo OrganizationRepository, studentRepo StudentRepository) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		orgRepo:     orgRepo,
		studentRepo: studentRepo,
	}
}

func (s *ReportService) checkOrganization(ctx context.Context, orgID int64) error {
	_, err := s.orgRepo.GetByID(ctx, orgID)
	return err
}

func validateSemester(semester string) error {
	if !academic.Semester(semester).IsValid() {
		return fmt.Errorf("%w: unknown semester %q", apperrors.ErrValidationFailed, semester)
	}
	return nil
}

// MembersWithUnpaidFees reports members owing money in one organization for
// a semester and academic year.
func (s *ReportService) MembersWithUnpaidFees(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.UnpaidFeeRow, error) {
	if err := s.checkOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	if err := validateSemester(semester); err != nil {
		return nil, err
	}

	return s.reportRepo.MembersWithUnpaidFees(ctx, orgID, semester, acadYear)
}

// MemberUnpaidFees reports every unpaid term of one student across all
// organizations.
func (s *ReportService) MemberUnpaidFees(ctx context.Context, studentID int64) ([]*dto.MemberDebtRow, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	return s.reportRepo.MemberUnpaidFees(ctx, studentID)
}

// ExecutiveCommittee reports the executive committee of an organization for
// one academic year.
func (s *ReportService) ExecutiveCommittee(ctx context.Context, orgID int64, acadYear string) ([]*dto.CommitteeMemberRow, error) {
	if err := s.checkOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	return s.reportRepo.ExecutiveCommittee(ctx, orgID, acadYear)
}

// RoleHistory reports everyone who held a committee role in an organization
func (s *ReportService) RoleHistory(ctx context.Context, orgID int64, role string) ([]*dto.RoleHistoryRow, error) {
	if err := s.checkOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	if !slices.Contains(models.ExecutiveRoles, role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, role)
	}

	return s.reportRepo.RoleHistory(ctx, orgID, role)
}

// LatePayments reports payments recorded after the due date for one
// organization, semester and academic year.
func (s *ReportService) LatePayments(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.LatePaymentRow, error) {
	if err := s.checkOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	if err := validateSemester(semester); err != nil {
		return nil, err
	}

	return s.reportRepo.LatePayments(ctx, orgID, semester, acadYear)
}

// MembershipStatusBreakdown reports the active and inactive split of an
// organization's memberships over its last nBatches batches.
func (s *ReportService) MembershipStatusBreakdown(ctx context.Context, orgID int64, nBatches int) (*dto.StatusBreakdownResponse, error) {
	if err := s.checkOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	if nBatches <= 0 {
		return nil, fmt.Errorf("%w: batch count must be positive", apperrors.ErrValidationFailed)
	}

	return s.reportRepo.MembershipStatusBreakdown(ctx, orgID, nBatches)
}

// AlumniMembers reports the alumni of an organization up to a batch cutoff
func (s *ReportService) AlumniMembers(ctx context.Context, orgID int64, asOf string) ([]*dto.AlumniRow, error) {
	if err := s.checkOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	return s.reportRepo.AlumniMembers(ctx, orgID, asOf)
}

// OrganizationFinancialStatus reports totals for an organization's fees up
// to a date.
func (s *ReportService) OrganizationFinancialStatus(ctx context.Context, orgID int64, asOf time.Time) (*dto.FinancialStatusResponse, error) {
	if err := s.checkOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	return s.reportRepo.OrganizationFinancialStatus(ctx, orgID, asOf)
}

// HighestDebtMembers reports the largest outstanding balances in an
// organization for a semester and academic year.
func (s *ReportService) HighestDebtMembers(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.DebtorRow, error) {
	if err := s.checkOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	if err := validateSemester(semester); err != nil {
		return nil, err
	}

	return s.reportRepo.HighestDebtMembers(ctx, orgID, semester, acadYear)
}

// TermBalances reports collected and outstanding amounts for every term
func (s *ReportService) TermBalances(ctx context.Context) ([]*dto.TermBalanceRow, error) {
	return s.reportRepo.TermBalances(ctx)
}

// FinancialSummaryByOrganization reports fees, collections and balances per
// organization.
func (s *ReportService) FinancialSummaryByOrganization(ctx context.Context) ([]*dto.OrgFinancialSummaryRow, error) {
	return s.reportRepo.FinancialSummaryByOrganization(ctx)
}
