package services

import (
	"context"
	"time"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/policy"
	"github.com/studorg/memtrack/internal/pkg/logger"
)

// PaymentService records payments against fee terms
type PaymentService struct {
	paymentRepo PaymentRepository
	termRepo    TermRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo PaymentRepository, termRepo TermRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		termRepo:    termRepo,
	}
}

// RecordPayment validates and applies a payment against a term. The amount
// must be positive and must not exceed the outstanding balance; both checks
// run before anything is written. On success the payment insert and the
// term balance update land in one transaction, and the updated term is
// returned alongside the payment.
func (s *PaymentService) RecordPayment(ctx context.Context, termID int64, amount float64, paymentDate time.Time) (*models.Payment, *models.Term, error) {
	term, err := s.termRepo.GetByID(ctx, termID)
	if err != nil {
		return nil, nil, err
	}

	if err := policy.ValidatePayment(amount, term.Balance); err != nil {
		return nil, nil, err
	}

	newBalance := term.Balance - amount
	newStatus := policy.DerivePaymentStatus(term.FeeAmount-newBalance, term.FeeAmount)

	payment := &models.Payment{
		Amount: amount,
		Date:   paymentDate,
		TermID: termID,
	}

	if err := s.paymentRepo.Record(ctx, payment, newBalance, newStatus); err != nil {
		return nil, nil, err
	}

	term.Balance = newBalance
	term.PaymentStatus = newStatus

	event := logger.Info().
		Int64("paymentId", payment.ID).
		Int64("termId", termID).
		Float64("amount", amount).
		Float64("balance", newBalance).
		Str("paymentStatus", string(newStatus))
	if policy.IsLate(paymentDate, term.FeeDue) {
		event = event.Bool("late", true)
	}
	event.Msg("Payment recorded")

	return payment, term, nil
}

// ListPayments lists the payments applied to one term, oldest first
func (s *PaymentService) ListPayments(ctx context.Context, termID int64) ([]*models.Payment, error) {
	if _, err := s.termRepo.GetByID(ctx, termID); err != nil {
		return nil, err
	}

	return s.paymentRepo.ListByTerm(ctx, termID)
}
