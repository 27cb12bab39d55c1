package models

// Organization represents a student organization
type Organization struct {
	ID   int64  `json:"id" db:"org_id"`
	Name string `json:"name" db:"org_name"`
}
