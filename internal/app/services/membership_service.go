package services

import (
	"context"
	"time"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/policy"
	"github.com/studorg/memtrack/internal/pkg/academic"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
	"github.com/studorg/memtrack/internal/pkg/logger"
)

// MembershipService handles enrollment and the membership lifecycle
type MembershipService struct {
	membershipRepo MembershipRepository
	studentRepo    StudentRepository
	orgRepo        OrganizationRepository
	now            func() time.Time
}

// NewMembershipService creates a new membership service instance
func NewMembershipService(membershipRepo MembershipRepository, studentRepo StudentRepository, orgRepo OrganizationRepository) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		studentRepo:    studentRepo,
		orgRepo:        orgRepo,
		now:            time.Now,
	}
}

// CreateMembership enrolls a student into an organization. New memberships
// start active unless another valid status is given.
func (s *MembershipService) CreateMembership(ctx context.Context, membership *models.Membership) error {
	if membership.Status == "" {
		membership.Status = models.StatusActive
	}
	if !membership.Status.IsValid() {
		return apperrors.ErrInvalidMemberStatus
	}

	// Resolve both sides up front so a missing student and a missing
	// organization report as distinct errors.
	if _, err := s.studentRepo.GetByID(ctx, membership.StudentID); err != nil {
		return err
	}
	if _, err := s.orgRepo.GetByID(ctx, membership.OrgID); err != nil {
		return err
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return err
	}

	logger.Info().
		Int64("membershipId", membership.ID).
		Int64("studentId", membership.StudentID).
		Int64("orgId", membership.OrgID).
		Msg("Membership created")
	return nil
}

// GetMembership retrieves a membership by ID
func (s *MembershipService) GetMembership(ctx context.Context, id int64) (*models.Membership, error) {
	return s.membershipRepo.GetByID(ctx, id)
}

// ListOrganizationMembers returns one page of an organization's roster and
// the total member count.
func (s *MembershipService) ListOrganizationMembers(ctx context.Context, orgID int64, offset uint64, limit int) ([]*models.OrgMember, int64, error) {
	if _, err := s.orgRepo.GetByID(ctx, orgID); err != nil {
		return nil, 0, err
	}

	members, err := s.membershipRepo.GetByOrganization(ctx, orgID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.membershipRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// UpdateStatus moves a membership to a new lifecycle status. A move to
// inactive levies the one-time reduced fee for the current semester in the
// same transaction as the status write, so a failed levy leaves the old
// status in place and a retry charges normally. The term unique constraint
// keeps the charge from repeating if the status flips back and forth within
// one semester.
func (s *MembershipService) UpdateStatus(ctx context.Context, id int64, newStatus models.MemberStatus) (*models.Membership, error) {
	membership, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.ValidateTransition(membership.Status, newStatus); err != nil {
		return nil, err
	}

	if membership.Status == newStatus {
		return membership, nil
	}

	var feeTerm *models.Term
	if newStatus == models.StatusInactive {
		decision, err := policy.ComputeTermFee(models.StatusInactive, true)
		if err != nil {
			return nil, err
		}
		feeTerm = policy.BuildTerm(membership, academic.TermWindowFor(s.now()), decision)
	}

	if err := s.membershipRepo.UpdateStatus(ctx, id, newStatus, feeTerm); err != nil {
		return nil, err
	}

	previous := membership.Status
	membership.Status = newStatus

	switch {
	case feeTerm != nil && feeTerm.ID == 0:
		// Already charged for this semester; the fee is one-time.
		logger.Debug().
			Int64("membershipId", membership.ID).
			Str("semester", string(feeTerm.Semester)).
			Str("acadYear", feeTerm.AcademicYear).
			Msg("Transition fee already levied")
	case feeTerm != nil:
		logger.Info().
			Int64("membershipId", membership.ID).
			Int64("termId", feeTerm.ID).
			Float64("feeAmount", feeTerm.FeeAmount).
			Msg("Inactive transition fee levied")
	}

	logger.Info().
		Int64("membershipId", id).
		Str("from", string(previous)).
		Str("to", string(newStatus)).
		Msg("Membership status changed")
	return membership, nil
}

// UpdateMembership updates the batch and committee of a membership
func (s *MembershipService) UpdateMembership(ctx context.Context, membership *models.Membership) error {
	return s.membershipRepo.Update(ctx, membership)
}

// DeleteMembership removes a membership and its terms and payments
func (s *MembershipService) DeleteMembership(ctx context.Context, id int64) error {
	if err := s.membershipRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("membershipId", id).Msg("Membership deleted")
	return nil
}
