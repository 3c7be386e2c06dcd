package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/repositories"
	"github.com/campushq/studentms/internal/pkg/apperrors"
	"github.com/campushq/studentms/internal/pkg/helpers"
)

// CreateDefaultData seeds the default departments and a starter course
// catalog. Existing records are left alone, so the seed is safe to run on
// every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	courseRepo := repositories.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (departments, courses)...")
	var finalErr error

	departments := []*models.Department{
		{Code: "CSE", Name: "Computer Science and Engineering", Building: helpers.StringPtr("Engineering Block A")},
		{Code: "EEE", Name: "Electrical and Electronics Engineering", Building: helpers.StringPtr("Engineering Block B")},
		{Code: "MATH", Name: "Mathematics", Building: helpers.StringPtr("Science Block")},
	}

	now := time.Now()
	departmentIDs := make(map[string]int64, len(departments))
	for _, department := range departments {
		department.CreatedAt = now
		department.UpdatedAt = now

		err := departmentRepo.Create(ctx, department)
		switch {
		case err == nil:
			departmentIDs[department.Code] = department.ID
		case errors.Is(err, apperrors.ErrConflict):
			existing, errGet := departmentRepo.GetByCode(ctx, department.Code)
			if errGet != nil {
				lgr.Error().Err(errGet).Str("code", department.Code).Msg("Error resolving existing department")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			departmentIDs[department.Code] = existing.ID
		default:
			lgr.Error().Err(err).Str("code", department.Code).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	type seedCourse struct {
		code           string
		name           string
		credits        int
		departmentCode string
	}

	courses := []seedCourse{
		{code: "CS101", name: "Introduction to Programming", credits: 4, departmentCode: "CSE"},
		{code: "CS201", name: "Data Structures", credits: 4, departmentCode: "CSE"},
		{code: "EE101", name: "Circuit Theory", credits: 3, departmentCode: "EEE"},
		{code: "MA101", name: "Calculus I", credits: 3, departmentCode: "MATH"},
	}

	for _, c := range courses {
		departmentID, ok := departmentIDs[c.departmentCode]
		if !ok {
			continue
		}

		course := &models.Course{
			Code:         c.code,
			Name:         c.name,
			Credits:      c.credits,
			DepartmentID: departmentID,
			MaxStudents:  50,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := courseRepo.Create(ctx, course); err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("code", c.code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
