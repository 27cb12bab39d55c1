package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/db"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

// Record inserts a payment and moves the term to the given balance and
// payment status in one transaction. Either both rows change or neither does.
func (r *PaymentRepository) Record(ctx context.Context, payment *models.Payment, newBalance float64, newStatus models.PaymentStatus) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO payment (amount, payment_date, term_id)
			VALUES ($1, $2, $3)
			RETURNING payment_id
		`, payment.Amount, payment.Date, payment.TermID).Scan(&payment.ID)
		if err != nil {
			return fmt.Errorf("error inserting payment: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE term SET balance = $1, payment_status = $2
			WHERE term_id = $3
		`, newBalance, newStatus, payment.TermID)
		if err != nil {
			return fmt.Errorf("error updating term balance: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrTermNotFound
		}

		return nil
	})
}

// ListByTerm lists the payments applied to one term, oldest first
func (r *PaymentRepository) ListByTerm(ctx context.Context, termID int64) ([]*models.Payment, error) {
	query := `
		SELECT payment_id, amount, payment_date, term_id
		FROM payment
		WHERE term_id = $1
		ORDER BY payment_date, payment_id
	`

	rows, err := r.db.Query(ctx, query, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.Amount,
			&payment.Date,
			&payment.TermID,
		); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
