package models

// MemberStatus is the lifecycle status of a membership.
type MemberStatus string

const (
	StatusActive    MemberStatus = "active"
	StatusInactive  MemberStatus = "inactive"
	StatusSuspended MemberStatus = "suspended"
	StatusExpelled  MemberStatus = "expelled"
	StatusAlumni    MemberStatus = "alumni"
)

// IsValid reports whether s is a known membership status.
func (s MemberStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusExpelled, StatusAlumni:
		return true
	}
	return false
}

// Closed reports whether the status is terminal for fee purposes. Closed
// memberships generate no further fee obligations.
func (s MemberStatus) Closed() bool {
	return s == StatusExpelled || s == StatusAlumni
}

// Executive committee roles, used by the committee reports.
var ExecutiveRoles = []string{"President", "Vice President", "Secretary", "Treasurer"}

// Membership links one student to one organization. A student holds at most
// one membership per organization.
type Membership struct {
	ID        int64        `json:"id" db:"membership_id"`
	Batch     string       `json:"batch" db:"batch"`
	Status    MemberStatus `json:"status" db:"mem_status"`
	Committee string       `json:"committee" db:"committee"`
	OrgID     int64        `json:"orgId" db:"org_id"`
	StudentID int64        `json:"studentId" db:"student_id"`
}

// OrgMember is a membership joined with its student and organization,
// as listed on the members screen.
type OrgMember struct {
	StudentID     int64        `json:"studentId" db:"student_id"`
	FirstName     string       `json:"firstName" db:"first_name"`
	LastName      string       `json:"lastName" db:"last_name"`
	Status        MemberStatus `json:"status" db:"mem_status"`
	Batch         string       `json:"batch" db:"batch"`
	Committee     string       `json:"committee" db:"committee"`
	Organization  string       `json:"organization" db:"org_name"`
	MembershipID  int64        `json:"membershipId" db:"membership_id"`
	Gender        string       `json:"gender" db:"gender"`
	DegreeProgram string       `json:"degreeProgram" db:"degree_program"`
}
