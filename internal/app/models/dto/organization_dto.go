package dto

import "github.com/studorg/memtrack/internal/app/models"

// OrganizationResponse represents basic organization information
type OrganizationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateOrganizationRequest represents organization creation data
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateOrganizationRequest represents organization update data
type UpdateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// OrganizationListResponse represents a list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// FromOrganization converts a models.Organization to an OrganizationResponse
func FromOrganization(o *models.Organization) OrganizationResponse {
	return OrganizationResponse{ID: o.ID, Name: o.Name}
}
