package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/policy"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

type membershipFixture struct {
	svc        *MembershipService
	termRepo   *fakeTermRepo
	membership *models.Membership
}

// newMembershipFixture wires a membership service over fakes with one
// student enrolled in one organization.
func newMembershipFixture(t *testing.T, at time.Time) *membershipFixture {
	t.Helper()

	studentRepo := newFakeStudentRepo()
	orgRepo := newFakeOrgRepo()
	membershipRepo := newFakeMembershipRepo()
	termRepo := newFakeTermRepo()
	membershipRepo.termRepo = termRepo

	svc := NewMembershipService(membershipRepo, studentRepo, orgRepo)
	svc.now = func() time.Time { return at }

	ctx := context.Background()
	student := &models.Student{FirstName: "Ana", LastName: "Reyes", Gender: "Female", DegreeProgram: "BS CS", Standing: "Junior"}
	require.NoError(t, studentRepo.Create(ctx, student))
	org := &models.Organization{Name: "Computer Science Society"}
	require.NoError(t, orgRepo.Create(ctx, org))

	membership := &models.Membership{Batch: "2024-2025", OrgID: org.ID, StudentID: student.ID}
	require.NoError(t, svc.CreateMembership(ctx, membership))

	return &membershipFixture{svc: svc, termRepo: termRepo, membership: membership}
}

func TestCreateMembershipDefaultsToActive(t *testing.T) {
	f := newMembershipFixture(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, models.StatusActive, f.membership.Status)
	assert.NotZero(t, f.membership.ID)
}

func TestCreateMembershipRejectsDuplicate(t *testing.T) {
	f := newMembershipFixture(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	dup := &models.Membership{
		Batch:     "2024-2025",
		OrgID:     f.membership.OrgID,
		StudentID: f.membership.StudentID,
	}
	err := f.svc.CreateMembership(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrMembershipAlreadyExists)
}

func TestCreateMembershipRejectsUnknownStudent(t *testing.T) {
	f := newMembershipFixture(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	err := f.svc.CreateMembership(context.Background(), &models.Membership{
		Batch:     "2024-2025",
		OrgID:     f.membership.OrgID,
		StudentID: 999,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCreateMembershipRejectsUnknownStatus(t *testing.T) {
	f := newMembershipFixture(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	err := f.svc.CreateMembership(context.Background(), &models.Membership{
		Batch:     "2024-2025",
		Status:    "frozen",
		OrgID:     f.membership.OrgID,
		StudentID: f.membership.StudentID,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidMemberStatus)
}

func TestUpdateStatusToInactiveLeviesTransitionFee(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newMembershipFixture(t, at)
	ctx := context.Background()

	updated, err := f.svc.UpdateStatus(ctx, f.membership.ID, models.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, updated.Status)

	terms, err := f.termRepo.ListByMembership(ctx, f.membership.ID)
	require.NoError(t, err)
	require.Len(t, terms, 1)

	term := terms[0]
	assert.Equal(t, policy.InactiveTransitionFee, term.FeeAmount)
	assert.Equal(t, policy.InactiveTransitionFee, term.Balance)
	assert.Equal(t, models.PaymentUnpaid, term.PaymentStatus)
	assert.Equal(t, "1st", string(term.Semester))
	assert.Equal(t, "2025-2026", term.AcademicYear)
	assert.Equal(t, at.AddDate(0, 0, 30), term.FeeDue)
}

func TestUpdateStatusChargesTransitionFeeOnce(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newMembershipFixture(t, at)
	ctx := context.Background()

	_, err := f.svc.UpdateStatus(ctx, f.membership.ID, models.StatusInactive)
	require.NoError(t, err)

	// Flipping back and forth within the same semester must not charge twice.
	_, err = f.svc.UpdateStatus(ctx, f.membership.ID, models.StatusActive)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(ctx, f.membership.ID, models.StatusInactive)
	require.NoError(t, err)

	terms, err := f.termRepo.ListByMembership(ctx, f.membership.ID)
	require.NoError(t, err)
	assert.Len(t, terms, 1)
}

func TestUpdateStatusFailedLevyKeepsOldStatus(t *testing.T) {
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newMembershipFixture(t, at)
	ctx := context.Background()

	f.termRepo.failNextCreate = errors.New("connection reset by peer")
	_, err := f.svc.UpdateStatus(ctx, f.membership.ID, models.StatusInactive)
	require.Error(t, err)

	// The status write rolls back with the failed levy, so the charge is
	// not lost: the membership is still active and a retry levies normally.
	current, err := f.svc.GetMembership(ctx, f.membership.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, current.Status)

	updated, err := f.svc.UpdateStatus(ctx, f.membership.ID, models.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, updated.Status)

	terms, err := f.termRepo.ListByMembership(ctx, f.membership.ID)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, policy.InactiveTransitionFee, terms[0].FeeAmount)
}

func TestUpdateStatusSameStatusIsNoOp(t *testing.T) {
	f := newMembershipFixture(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	updated, err := f.svc.UpdateStatus(context.Background(), f.membership.ID, models.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, updated.Status)

	terms, err := f.termRepo.ListByMembership(context.Background(), f.membership.ID)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newMembershipFixture(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	_, err := f.svc.UpdateStatus(context.Background(), f.membership.ID, "frozen")
	assert.ErrorIs(t, err, apperrors.ErrInvalidMemberStatus)
}

func TestUpdateStatusUnknownMembership(t *testing.T) {
	f := newMembershipFixture(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	_, err := f.svc.UpdateStatus(context.Background(), 42, models.StatusAlumni)
	assert.ErrorIs(t, err, apperrors.ErrMembershipNotFound)
}
