package dto

import "github.com/studorg/memtrack/internal/app/models"

// StudentResponse represents basic student information
type StudentResponse struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Gender        string `json:"gender"`
	DegreeProgram string `json:"degreeProgram"`
	Standing      string `json:"standing"`
}

// CreateStudentRequest represents student registration data
type CreateStudentRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Gender        string `json:"gender" binding:"required"`
	DegreeProgram string `json:"degreeProgram" binding:"required"`
	Standing      string `json:"standing" binding:"required"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Gender        string `json:"gender" binding:"required"`
	DegreeProgram string `json:"degreeProgram" binding:"required"`
	Standing      string `json:"standing" binding:"required"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	PaginationInfo
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:            s.ID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Gender:        s.Gender,
		DegreeProgram: s.DegreeProgram,
		Standing:      s.Standing,
	}
}
