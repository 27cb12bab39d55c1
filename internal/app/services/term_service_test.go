package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/policy"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

type termFixture struct {
	termSvc       *TermService
	membershipSvc *MembershipService
	membership    *models.Membership
}

func newTermFixture(t *testing.T, status models.MemberStatus, at time.Time) *termFixture {
	t.Helper()

	f := newMembershipFixture(t, at)
	if status != models.StatusActive {
		_, err := f.svc.UpdateStatus(context.Background(), f.membership.ID, status)
		require.NoError(t, err)
		f.membership.Status = status
	}

	membershipRepo := f.svc.membershipRepo
	return &termFixture{
		termSvc:       NewTermService(f.termRepo, membershipRepo),
		membershipSvc: f.svc,
		membership:    f.membership,
	}
}

func TestOpenTermActiveMembership(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newTermFixture(t, models.StatusActive, at)

	term, err := f.termSvc.OpenTerm(context.Background(), f.membership.ID, at)
	require.NoError(t, err)

	assert.Equal(t, policy.ActiveSemesterFee, term.FeeAmount)
	assert.Equal(t, policy.ActiveSemesterFee, term.Balance)
	assert.Equal(t, models.PaymentUnpaid, term.PaymentStatus)
	assert.Equal(t, "1st", string(term.Semester))
	assert.Equal(t, "2025-2026", term.AcademicYear)
	assert.Equal(t, at, term.Start)
	assert.Equal(t, at.AddDate(0, 0, 180), term.End)
	assert.Equal(t, at.AddDate(0, 0, 30), term.FeeDue)
}

func TestOpenTermRejectsDuplicateSemester(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newTermFixture(t, models.StatusActive, at)
	ctx := context.Background()

	_, err := f.termSvc.OpenTerm(ctx, f.membership.ID, at)
	require.NoError(t, err)

	// Same semester, later date.
	_, err = f.termSvc.OpenTerm(ctx, f.membership.ID, at.AddDate(0, 1, 0))
	assert.ErrorIs(t, err, apperrors.ErrTermAlreadyExists)
}

func TestOpenTermAcrossSemesters(t *testing.T) {
	first := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newTermFixture(t, models.StatusActive, first)
	ctx := context.Background()

	_, err := f.termSvc.OpenTerm(ctx, f.membership.ID, first)
	require.NoError(t, err)

	second := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	term, err := f.termSvc.OpenTerm(ctx, f.membership.ID, second)
	require.NoError(t, err)
	assert.Equal(t, "2nd", string(term.Semester))
	assert.Equal(t, policy.ActiveSemesterFee, term.FeeAmount)

	terms, err := f.termSvc.ListTerms(ctx, f.membership.ID)
	require.NoError(t, err)
	assert.Len(t, terms, 2)
}

func TestOpenTermClosedMemberships(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	for _, status := range []models.MemberStatus{models.StatusExpelled, models.StatusAlumni} {
		f := newTermFixture(t, status, at)

		_, err := f.termSvc.OpenTerm(context.Background(), f.membership.ID, at)
		assert.ErrorIs(t, err, apperrors.ErrMembershipClosed, "status %s", status)
	}
}

func TestOpenTermSuspendedMembership(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newTermFixture(t, models.StatusSuspended, at)

	_, err := f.termSvc.OpenTerm(context.Background(), f.membership.ID, at)
	assert.ErrorIs(t, err, apperrors.ErrNoFeePolicy)
}

func TestOpenTermInactiveOutsideTransitionSemester(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newTermFixture(t, models.StatusInactive, at)
	ctx := context.Background()

	// The transition term for "1st" 2025-2026 was levied by the status
	// change. A semester later the inactive membership owes nothing.
	nextSemester := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.termSvc.OpenTerm(ctx, f.membership.ID, nextSemester)
	assert.ErrorIs(t, err, apperrors.ErrNoFeeDue)

	// Within the transition semester the charge already exists.
	_, err = f.termSvc.OpenTerm(ctx, f.membership.ID, at.AddDate(0, 0, 7))
	assert.ErrorIs(t, err, apperrors.ErrTermAlreadyExists)
}

func TestOpenTermUnknownMembership(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newTermFixture(t, models.StatusActive, at)

	_, err := f.termSvc.OpenTerm(context.Background(), 42, at)
	assert.ErrorIs(t, err, apperrors.ErrMembershipNotFound)
}
