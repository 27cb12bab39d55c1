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

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *pgxpool.Pool
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{
		db: db,
	}
}

// Create inserts a new organization and fills in its generated ID
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organization (org_name)
		VALUES ($1)
		RETURNING org_id
	`

	err := r.db.QueryRow(ctx, query, org.Name).Scan(&org.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrOrganizationAlreadyExists
		}
		return fmt.Errorf("error creating organization: %w", err)
	}

	return nil
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	var org models.Organization
	err := r.db.QueryRow(ctx,
		`SELECT org_id, org_name FROM organization WHERE org_id = $1`, id).
		Scan(&org.ID, &org.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("error retrieving organization: %w", err)
	}

	return &org, nil
}

// GetAll retrieves all organizations ordered by name
func (r *OrganizationRepository) GetAll(ctx context.Context) ([]*models.Organization, error) {
	rows, err := r.db.Query(ctx, `SELECT org_id, org_name FROM organization ORDER BY org_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*models.Organization
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(&org.ID, &org.Name); err != nil {
			return nil, err
		}
		orgs = append(orgs, &org)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orgs, nil
}

// Update renames an organization
func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE organization SET org_name = $1 WHERE org_id = $2`, org.Name, org.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrOrganizationAlreadyExists
		}
		return fmt.Errorf("error updating organization: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOrganizationNotFound
	}

	return nil
}

// Delete deletes an organization by ID. Memberships, terms and payments
// follow through the cascading foreign keys.
func (r *OrganizationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM organization WHERE org_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting organization: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOrganizationNotFound
	}

	return nil
}
