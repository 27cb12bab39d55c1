package services

import (
	"context"
	"errors"
	"time"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/policy"
	"github.com/studorg/memtrack/internal/pkg/academic"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
	"github.com/studorg/memtrack/internal/pkg/logger"
)

// TermService opens fee terms and answers term queries
type TermService struct {
	termRepo       TermRepository
	membershipRepo MembershipRepository
}

// NewTermService creates a new term service instance
func NewTermService(termRepo TermRepository, membershipRepo MembershipRepository) *TermService {
	return &TermService{
		termRepo:       termRepo,
		membershipRepo: membershipRepo,
	}
}

// OpenTerm opens the fee term of a membership for the semester containing
// asOf. The fee comes from the lifecycle policy; memberships that owe
// nothing get no term, and a second open for the same semester is rejected
// by the unique constraint.
func (s *TermService) OpenTerm(ctx context.Context, membershipID int64, asOf time.Time) (*models.Term, error) {
	membership, err := s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	window := academic.TermWindowFor(asOf)

	isTransition, err := s.isTransitionSemester(ctx, membership, window)
	if err != nil {
		return nil, err
	}

	decision, err := policy.ComputeTermFee(membership.Status, isTransition)
	if err != nil {
		return nil, err
	}

	term := policy.BuildTerm(membership, window, decision)
	if err := s.termRepo.Create(ctx, term); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("membershipId", membershipID).
		Int64("termId", term.ID).
		Str("semester", string(term.Semester)).
		Str("acadYear", term.AcademicYear).
		Float64("feeAmount", term.FeeAmount).
		Str("basis", string(decision.Basis)).
		Msg("Term opened")
	return term, nil
}

// isTransitionSemester reports whether window is the semester in which an
// inactive membership made its status change, judged by the most recent
// term on record.
func (s *TermService) isTransitionSemester(ctx context.Context, membership *models.Membership, window academic.TermWindow) (bool, error) {
	if membership.Status != models.StatusInactive {
		return false, nil
	}

	latest, err := s.termRepo.GetLatestByMembership(ctx, membership.ID)
	if errors.Is(err, apperrors.ErrTermNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return academic.SameTerm(latest.Semester, latest.AcademicYear, window.Semester, window.AcademicYear), nil
}

// GetTerm retrieves a term with its balance by ID
func (s *TermService) GetTerm(ctx context.Context, id int64) (*models.Term, error) {
	return s.termRepo.GetByID(ctx, id)
}

// ListTerms lists the fee terms of a membership, newest first
func (s *TermService) ListTerms(ctx context.Context, membershipID int64) ([]*models.Term, error) {
	if _, err := s.membershipRepo.GetByID(ctx, membershipID); err != nil {
		return nil, err
	}

	return s.termRepo.ListByMembership(ctx, membershipID)
}
