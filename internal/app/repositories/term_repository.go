package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
	"github.com/studorg/memtrack/internal/pkg/dberrors"
)

const termColumns = `term_id, semester, payment_status, role, term_start, term_end,
	acad_year, fee_amount, fee_due, balance, membership_id`

// TermRepository handles database operations for fee terms
type TermRepository struct {
	db *pgxpool.Pool
}

// NewTermRepository creates a new term repository
func NewTermRepository(db *pgxpool.Pool) *TermRepository {
	return &TermRepository{
		db: db,
	}
}

// Create opens a fee term. The unique constraint on (membership_id, semester,
// acad_year) makes a term chargeable at most once per semester.
func (r *TermRepository) Create(ctx context.Context, term *models.Term) error {
	query := `
		INSERT INTO term (semester, payment_status, role, term_start, term_end,
		                  acad_year, fee_amount, fee_due, balance, membership_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING term_id
	`

	err := r.db.QueryRow(ctx, query,
		term.Semester,
		term.PaymentStatus,
		term.Role,
		term.Start,
		term.End,
		term.AcademicYear,
		term.FeeAmount,
		term.FeeDue,
		term.Balance,
		term.MembershipID,
	).Scan(&term.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTermAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("error creating term: %w", err)
	}

	return nil
}

// GetByID retrieves a term by ID
func (r *TermRepository) GetByID(ctx context.Context, id int64) (*models.Term, error) {
	query := `SELECT ` + termColumns + ` FROM term WHERE term_id = $1`

	term, err := r.scanTerm(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, fmt.Errorf("error retrieving term: %w", err)
	}

	return term, nil
}

// GetLatestByMembership retrieves the most recently started term of a
// membership, if any.
func (r *TermRepository) GetLatestByMembership(ctx context.Context, membershipID int64) (*models.Term, error) {
	query := `SELECT ` + termColumns + `
		FROM term
		WHERE membership_id = $1
		ORDER BY term_start DESC
		LIMIT 1`

	term, err := r.scanTerm(r.db.QueryRow(ctx, query, membershipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, fmt.Errorf("error retrieving latest term: %w", err)
	}

	return term, nil
}

// ListByMembership lists the terms of a membership, newest first
func (r *TermRepository) ListByMembership(ctx context.Context, membershipID int64) ([]*models.Term, error) {
	query := `SELECT ` + termColumns + `
		FROM term
		WHERE membership_id = $1
		ORDER BY term_start DESC`

	rows, err := r.db.Query(ctx, query, membershipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		term, err := r.scanTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return terms, nil
}

func (r *TermRepository) scanTerm(row pgx.Row) (*models.Term, error) {
	var term models.Term
	err := row.Scan(
		&term.ID,
		&term.Semester,
		&term.PaymentStatus,
		&term.Role,
		&term.Start,
		&term.End,
		&term.AcademicYear,
		&term.FeeAmount,
		&term.FeeDue,
		&term.Balance,
		&term.MembershipID,
	)
	if err != nil {
		return nil, err
	}

	return &term, nil
}
