package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/repositories"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

// CreateDefaultData creates the sample organizations and students if they
// don't exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	orgRepo := repositories.NewOrganizationRepository(dbPool)
	studentRepo := repositories.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (organizations/students)...")
	var finalErr error

	for _, name := range []string{"Computer Science Society", "Engineering Club", "Student Government"} {
		org := &models.Organization{Name: name}
		err := orgRepo.Create(ctx, org)
		if err != nil && !errors.Is(err, apperrors.ErrOrganizationAlreadyExists) {
			lgr.Error().Err(err).Str("name", name).Msg("Error creating default organization")
			finalErr = errors.Join(finalErr, err)
		}
	}

	count, err := studentRepo.CountAll(ctx)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if count > 0 {
		return finalErr
	}

	students := []*models.Student{
		{FirstName: "John", LastName: "Doe", Gender: "Male", DegreeProgram: "Computer Science", Standing: "Junior"},
		{FirstName: "Jane", LastName: "Smith", Gender: "Female", DegreeProgram: "Engineering", Standing: "Senior"},
		{FirstName: "Mike", LastName: "Johnson", Gender: "Male", DegreeProgram: "Information Technology", Standing: "Sophomore"},
		{FirstName: "Sarah", LastName: "Williams", Gender: "Female", DegreeProgram: "Computer Engineering", Standing: "Freshman"},
	}
	for _, student := range students {
		if err := studentRepo.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("lastName", student.LastName).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
