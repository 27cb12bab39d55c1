package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

func validStudent() *models.Student {
	return &models.Student{
		FirstName:     "Ben",
		LastName:      "Cruz",
		Gender:        "Male",
		DegreeProgram: "BS Math",
		Standing:      "Senior",
	}
}

func TestCreateStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())
	student := validStudent()

	require.NoError(t, svc.CreateStudent(context.Background(), student))
	assert.NotZero(t, student.ID)

	got, err := svc.GetStudent(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cruz", got.LastName)
}

func TestCreateStudentValidation(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Student)
	}{
		{"empty first name", func(s *models.Student) { s.FirstName = "  " }},
		{"empty last name", func(s *models.Student) { s.LastName = "" }},
		{"unknown gender", func(s *models.Student) { s.Gender = "X" }},
		{"unknown standing", func(s *models.Student) { s.Standing = "Super Senior" }},
		{"empty degree program", func(s *models.Student) { s.DegreeProgram = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := validStudent()
			tt.mutate(student)
			err := svc.CreateStudent(ctx, student)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestListStudentsPagination(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		student := validStudent()
		require.NoError(t, svc.CreateStudent(ctx, student))
	}

	page, total, err := svc.ListStudents(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(5), total)

	page, _, err = svc.ListStudents(ctx, 4, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestDeleteStudentUnknown(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())

	err := svc.DeleteStudent(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudentRemovesMembershipsTermsPayments(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	studentRepo := newFakeStudentRepo()
	orgRepo := newFakeOrgRepo()
	membershipRepo := newFakeMembershipRepo()
	termRepo := newFakeTermRepo()
	paymentRepo := newFakePaymentRepo(termRepo)
	studentRepo.membershipRepo = membershipRepo
	membershipRepo.termRepo = termRepo

	studentSvc := NewStudentService(studentRepo)
	membershipSvc := NewMembershipService(membershipRepo, studentRepo, orgRepo)
	termSvc := NewTermService(termRepo, membershipRepo)
	paymentSvc := NewPaymentService(paymentRepo, termRepo)

	student := validStudent()
	require.NoError(t, studentSvc.CreateStudent(ctx, student))
	org := &models.Organization{Name: "Engineering Club"}
	require.NoError(t, orgRepo.Create(ctx, org))
	membership := &models.Membership{Batch: "2024-2025", OrgID: org.ID, StudentID: student.ID}
	require.NoError(t, membershipSvc.CreateMembership(ctx, membership))

	term, err := termSvc.OpenTerm(ctx, membership.ID, at)
	require.NoError(t, err)
	_, _, err = paymentSvc.RecordPayment(ctx, term.ID, 400, at.AddDate(0, 0, 5))
	require.NoError(t, err)

	require.NoError(t, studentSvc.DeleteStudent(ctx, student.ID))

	// Dependent rows go with the student, matching the schema's cascading
	// foreign keys.
	_, err = membershipRepo.GetByID(ctx, membership.ID)
	assert.ErrorIs(t, err, apperrors.ErrMembershipNotFound)
	_, err = termRepo.GetByID(ctx, term.ID)
	assert.ErrorIs(t, err, apperrors.ErrTermNotFound)

	payments, err := paymentRepo.ListByTerm(ctx, term.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.Empty(t, membershipRepo.memberships)
	assert.Empty(t, termRepo.terms)
}
