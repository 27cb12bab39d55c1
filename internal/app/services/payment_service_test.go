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

func newPaymentFixture(t *testing.T) (*PaymentService, *models.Term) {
	t.Helper()

	at := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	f := newTermFixture(t, models.StatusActive, at)

	term, err := f.termSvc.OpenTerm(context.Background(), f.membership.ID, at)
	require.NoError(t, err)

	termRepo := f.termSvc.termRepo.(*fakeTermRepo)
	return NewPaymentService(newFakePaymentRepo(termRepo), termRepo), term
}

func TestRecordPaymentPartialThenPaid(t *testing.T) {
	svc, term := newPaymentFixture(t)
	ctx := context.Background()
	date := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)

	payment, updated, err := svc.RecordPayment(ctx, term.ID, 400, date)
	require.NoError(t, err)
	assert.NotZero(t, payment.ID)
	assert.Equal(t, 600.0, updated.Balance)
	assert.Equal(t, models.PaymentPartial, updated.PaymentStatus)

	_, updated, err = svc.RecordPayment(ctx, term.ID, 600, date.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Balance)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	payments, err := svc.ListPayments(ctx, term.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, term := newPaymentFixture(t)
	ctx := context.Background()
	date := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)

	_, _, err := svc.RecordPayment(ctx, term.ID, term.FeeAmount+1, date)
	assert.ErrorIs(t, err, apperrors.ErrPaymentExceedsBalance)

	// The failed attempt must leave the term untouched.
	got, err := svc.termRepo.GetByID(ctx, term.ID)
	require.NoError(t, err)
	assert.Equal(t, term.FeeAmount, got.Balance)
	assert.Equal(t, models.PaymentUnpaid, got.PaymentStatus)

	// Overpayment also applies to the remaining balance, not the fee.
	_, _, err = svc.RecordPayment(ctx, term.ID, 900, date)
	require.NoError(t, err)
	_, _, err = svc.RecordPayment(ctx, term.ID, 200, date)
	assert.ErrorIs(t, err, apperrors.ErrPaymentExceedsBalance)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, term := newPaymentFixture(t)
	ctx := context.Background()
	date := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)

	_, _, err := svc.RecordPayment(ctx, term.ID, 0, date)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentAmount)

	_, _, err = svc.RecordPayment(ctx, term.ID, -50, date)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentAmount)
}

func TestRecordPaymentUnknownTerm(t *testing.T) {
	svc, _ := newPaymentFixture(t)

	_, _, err := svc.RecordPayment(context.Background(), 42, 100, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrTermNotFound)
}
