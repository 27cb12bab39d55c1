package dto

import "github.com/studorg/memtrack/internal/app/models"

// MembershipResponse represents a student's membership in an organization
type MembershipResponse struct {
	ID        int64  `json:"id"`
	Batch     string `json:"batch"`
	Status    string `json:"status"`
	Committee string `json:"committee"`
	OrgID     int64  `json:"orgId"`
	StudentID int64  `json:"studentId"`
}

// CreateMembershipRequest enrolls a student into an organization
type CreateMembershipRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
	OrgID     int64  `json:"orgId" binding:"required,gt=0"`
	Batch     string `json:"batch" binding:"required"`
	Committee string `json:"committee"`
	Status    string `json:"status"`
}

// UpdateMembershipRequest represents membership update data
type UpdateMembershipRequest struct {
	Batch     string `json:"batch" binding:"required"`
	Committee string `json:"committee"`
}

// UpdateMembershipStatusRequest changes a membership's lifecycle status
type UpdateMembershipStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrgMemberResponse is one row on the organization members screen
type OrgMemberResponse struct {
	MembershipID  int64  `json:"membershipId"`
	StudentID     int64  `json:"studentId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Status        string `json:"status"`
	Batch         string `json:"batch"`
	Committee     string `json:"committee"`
	Organization  string `json:"organization"`
	Gender        string `json:"gender"`
	DegreeProgram string `json:"degreeProgram"`
}

// OrgMemberListResponse represents an organization's member roster
type OrgMemberListResponse struct {
	Members []OrgMemberResponse `json:"members"`
	PaginationInfo
}

// FromMembership converts a models.Membership to a MembershipResponse
func FromMembership(m *models.Membership) MembershipResponse {
	return MembershipResponse{
		ID:        m.ID,
		Batch:     m.Batch,
		Status:    string(m.Status),
		Committee: m.Committee,
		OrgID:     m.OrgID,
		StudentID: m.StudentID,
	}
}

// FromOrgMember converts a models.OrgMember to an OrgMemberResponse
func FromOrgMember(m *models.OrgMember) OrgMemberResponse {
	return OrgMemberResponse{
		MembershipID:  m.MembershipID,
		StudentID:     m.StudentID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Status:        string(m.Status),
		Batch:         m.Batch,
		Committee:     m.Committee,
		Organization:  m.Organization,
		Gender:        m.Gender,
		DegreeProgram: m.DegreeProgram,
	}
}
