package models

// Student represents an enrolled student
type Student struct {
	ID            int64  `json:"id" db:"student_id"`
	FirstName     string `json:"firstName" db:"first_name"`
	LastName      string `json:"lastName" db:"last_name"`
	Gender        string `json:"gender" db:"gender"`
	DegreeProgram string `json:"degreeProgram" db:"degree_program"`
	Standing      string `json:"standing" db:"standing"`
}

// Accepted values for the student demographic fields.
var (
	Genders   = []string{"Male", "Female", "Other"}
	Standings = []string{"Freshman", "Sophomore", "Junior", "Senior", "Graduate"}
)
