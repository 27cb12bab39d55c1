package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
	"github.com/studorg/memtrack/internal/pkg/logger"
)

// StudentService handles student registry operations
type StudentService struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before database operations
func validateStudent(student *models.Student) error {
	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !slices.Contains(models.Genders, student.Gender) {
		return fmt.Errorf("%w: unknown gender %q", apperrors.ErrValidationFailed, student.Gender)
	}
	if !slices.Contains(models.Standings, student.Standing) {
		return fmt.Errorf("%w: unknown standing %q", apperrors.ErrValidationFailed, student.Standing)
	}
	if strings.TrimSpace(student.DegreeProgram) == "" {
		return fmt.Errorf("%w: degree program cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateStudent registers a new student
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	logger.Info().Int64("studentId", student.ID).Msg("Student created")
	return nil
}

// GetStudent retrieves a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents returns one page of students and the total count
func (s *StudentService) ListStudents(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	students, err := s.studentRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// UpdateStudent updates an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent removes a student and, through the cascading foreign keys,
// all of their memberships, terms and payments.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
