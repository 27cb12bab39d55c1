package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/db"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
	"github.com/studorg/memtrack/internal/pkg/dberrors"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *pgxpool.Pool
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{
		db: db,
	}
}

// Create enrolls a student into an organization. The unique constraint on
// (student_id, org_id) keeps enrollment to one membership per pair.
func (r *MembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	query := `
		INSERT INTO membership (batch, mem_status, committee, org_id, student_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING membership_id
	`

	err := r.db.QueryRow(ctx, query,
		membership.Batch,
		membership.Status,
		membership.Committee,
		membership.OrgID,
		membership.StudentID,
	).Scan(&membership.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "membership_student_id_org_id_key") {
			return apperrors.ErrMembershipAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating membership: %w", err)
	}

	return nil
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(ctx context.Context, id int64) (*models.Membership, error) {
	query := `
		SELECT membership_id, batch, mem_status, committee, org_id, student_id
		FROM membership
		WHERE membership_id = $1
	`

	var membership models.Membership
	err := r.db.QueryRow(ctx, query, id).Scan(
		&membership.ID,
		&membership.Batch,
		&membership.Status,
		&membership.Committee,
		&membership.OrgID,
		&membership.StudentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("error retrieving membership: %w", err)
	}

	return &membership, nil
}

// GetByOrganization lists the member roster of one organization, joined with
// student and organization data, one page at a time.
func (r *MembershipRepository) GetByOrganization(ctx context.Context, orgID int64, offset uint64, limit int) ([]*models.OrgMember, error) {
	query := `
		SELECT m.membership_id, s.student_id, s.first_name, s.last_name,
		       m.mem_status, m.batch, m.committee, org.org_name,
		       s.gender, s.degree_program
		FROM membership m
		JOIN student s ON m.student_id = s.student_id
		JOIN organization org ON m.org_id = org.org_id
		WHERE m.org_id = $1
		ORDER BY s.last_name, s.first_name, m.membership_id
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, orgID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.OrgMember
	for rows.Next() {
		var member models.OrgMember
		if err := rows.Scan(
			&member.MembershipID,
			&member.StudentID,
			&member.FirstName,
			&member.LastName,
			&member.Status,
			&member.Batch,
			&member.Committee,
			&member.Organization,
			&member.Gender,
			&member.DegreeProgram,
		); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// CountByOrganization returns the number of memberships in an organization
func (r *MembershipRepository) CountByOrganization(ctx context.Context, orgID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM membership WHERE org_id = $1`, orgID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting memberships: %w", err)
	}

	return count, nil
}

// UpdateStatus changes the lifecycle status of a membership. When feeTerm
// is non-nil it is inserted in the same transaction, so the status change
// and the transition charge land together or not at all. A semester that
// was already charged leaves feeTerm.ID zero.
func (r *MembershipRepository) UpdateStatus(ctx context.Context, id int64, status models.MemberStatus, feeTerm *models.Term) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE membership SET mem_status = $1 WHERE membership_id = $2`, status, id)
		if err != nil {
			return fmt.Errorf("error updating membership status: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrMembershipNotFound
		}

		if feeTerm == nil {
			return nil
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO term (semester, payment_status, role, term_start, term_end,
			                  acad_year, fee_amount, fee_due, balance, membership_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (membership_id, semester, acad_year) DO NOTHING
			RETURNING term_id
		`,
			feeTerm.Semester,
			feeTerm.PaymentStatus,
			feeTerm.Role,
			feeTerm.Start,
			feeTerm.End,
			feeTerm.AcademicYear,
			feeTerm.FeeAmount,
			feeTerm.FeeDue,
			feeTerm.Balance,
			feeTerm.MembershipID,
		).Scan(&feeTerm.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			feeTerm.ID = 0
			return nil
		}
		if err != nil {
			return fmt.Errorf("error levying transition fee: %w", err)
		}

		return nil
	})
}

// Update updates the batch and committee of a membership
func (r *MembershipRepository) Update(ctx context.Context, membership *models.Membership) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE membership SET batch = $1, committee = $2 WHERE membership_id = $3`,
		membership.Batch, membership.Committee, membership.ID)
	if err != nil {
		return fmt.Errorf("error updating membership: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMembershipNotFound
	}

	return nil
}

// Delete removes a membership. Terms and payments follow through the
// cascading foreign keys.
func (r *MembershipRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM membership WHERE membership_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting membership: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMembershipNotFound
	}

	return nil
}
