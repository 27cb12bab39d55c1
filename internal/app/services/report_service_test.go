package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studorg/memtrack/internal/app/models"
)

func TestFinancialSummaryAcrossFeeLifecycle(t *testing.T) {
	ctx := context.Background()
	firstSemester := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	secondSemester := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	studentRepo := newFakeStudentRepo()
	orgRepo := newFakeOrgRepo()
	membershipRepo := newFakeMembershipRepo()
	termRepo := newFakeTermRepo()
	paymentRepo := newFakePaymentRepo(termRepo)
	membershipRepo.termRepo = termRepo

	membershipSvc := NewMembershipService(membershipRepo, studentRepo, orgRepo)
	membershipSvc.now = func() time.Time { return secondSemester }
	termSvc := NewTermService(termRepo, membershipRepo)
	paymentSvc := NewPaymentService(paymentRepo, termRepo)
	reportSvc := NewReportService(&fakeReportRepo{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		termRepo:       termRepo,
		paymentRepo:    paymentRepo,
	}, orgRepo, studentRepo)

	student := validStudent()
	require.NoError(t, studentRepo.Create(ctx, student))
	org := &models.Organization{Name: "Student Government"}
	require.NoError(t, orgRepo.Create(ctx, org))
	membership := &models.Membership{Batch: "2024-2025", OrgID: org.ID, StudentID: student.ID}
	require.NoError(t, membershipSvc.CreateMembership(ctx, membership))

	// Active dues for the first semester, partially paid. The membership
	// then goes inactive in the second semester and owes the one-time
	// reduced fee on top.
	term, err := termSvc.OpenTerm(ctx, membership.ID, firstSemester)
	require.NoError(t, err)
	_, _, err = paymentSvc.RecordPayment(ctx, term.ID, 600, firstSemester.AddDate(0, 0, 10))
	require.NoError(t, err)
	_, err = membershipSvc.UpdateStatus(ctx, membership.ID, models.StatusInactive)
	require.NoError(t, err)

	rows, err := reportSvc.FinancialSummaryByOrganization(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Student Government", row.Organization)
	assert.Equal(t, 1500.0, row.TotalFees)
	assert.Equal(t, 600.0, row.TotalCollected)
	assert.Equal(t, 900.0, row.TotalBalance)
}
