package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
	"github.com/studorg/memtrack/internal/pkg/logger"
)

// OrganizationService handles organization registry operations
type OrganizationService struct {
	orgRepo OrganizationRepository
}

// NewOrganizationService creates a new organization service instance
func NewOrganizationService(orgRepo OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo: orgRepo,
	}
}

// CreateOrganization registers a new organization with a unique name
func (s *OrganizationService) CreateOrganization(ctx context.Context, org *models.Organization) error {
	if strings.TrimSpace(org.Name) == "" {
		return fmt.Errorf("%w: organization name cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return err
	}

	logger.Info().Int64("orgId", org.ID).Str("name", org.Name).Msg("Organization created")
	return nil
}

// GetOrganization retrieves an organization by ID
func (s *OrganizationService) GetOrganization(ctx context.Context, id int64) (*models.Organization, error) {
	return s.orgRepo.GetByID(ctx, id)
}

// ListOrganizations returns all organizations
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	return s.orgRepo.GetAll(ctx)
}

// UpdateOrganization renames an organization
func (s *OrganizationService) UpdateOrganization(ctx context.Context, org *models.Organization) error {
	if strings.TrimSpace(org.Name) == "" {
		return fmt.Errorf("%w: organization name cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.orgRepo.Update(ctx, org)
}

// DeleteOrganization removes an organization and, through the cascading
// foreign keys, all of its memberships, terms and payments.
func (s *OrganizationService) DeleteOrganization(ctx context.Context, id int64) error {
	if err := s.orgRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("orgId", id).Msg("Organization deleted")
	return nil
}
