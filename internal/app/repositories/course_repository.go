package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/pkg/apperrors"
	"github.com/campushq/studentms/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, code, name, description, credits, department_id, instructor_name,
	max_students, semester, is_active, created_at, updated_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Description,
		&c.Credits,
		&c.DepartmentID,
		&c.InstructorName,
		&c.MaxStudents,
		&c.Semester,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]*models.Course, error) {
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, description, credits, department_id, instructor_name,
			max_students, semester, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		course.Code, course.Name, course.Description, course.Credits,
		course.DepartmentID, course.InstructorName, course.MaxStudents,
		course.Semester, course.IsActive, course.CreatedAt, course.UpdatedAt,
	).Scan(&course.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetByIDForUpdate retrieves a course by ID and locks the row for the
// duration of the surrounding transaction.
func (r *CourseRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 FOR UPDATE`

	course, err := scanCourse(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error locking course: %w", err)
	}

	return course, nil
}

// GetByCode retrieves a course by its unique code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE code = $1`

	course, err := scanCourse(querierFrom(ctx, r.db).QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course by code: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY id`)
}

// GetByDepartment retrieves all courses offered by a department
func (r *CourseRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	return r.queryCourses(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE department_id = $1 ORDER BY id`, departmentID)
}

// GetActive retrieves all active courses
func (r *CourseRepository) GetActive(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE is_active = TRUE ORDER BY id`)
}

// GetBySemester retrieves courses offered in a semester
func (r *CourseRepository) GetBySemester(ctx context.Context, semester string) ([]*models.Course, error) {
	return r.queryCourses(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE semester = $1 ORDER BY id`, semester)
}

// SearchByName finds courses whose name contains the keyword, case-insensitively
func (r *CourseRepository) SearchByName(ctx context.Context, keyword string) ([]*models.Course, error) {
	return r.queryCourses(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE name ILIKE '%' || $1 || '%' ORDER BY id`, keyword)
}

// GetWithAvailableSeats retrieves active courses whose enrolled count is
// below their maximum capacity.
func (r *CourseRepository) GetWithAvailableSeats(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses c
		WHERE c.is_active = TRUE
		  AND (SELECT COUNT(*) FROM enrollments e
		       WHERE e.course_id = c.id AND e.status = 'Enrolled') < c.max_students
		ORDER BY c.id
	`
	return r.queryCourses(ctx, query)
}

// ExistsByCode checks if a course code is used by a record other than
// excludeID. Pass 0 to check against all records.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := querierFrom(ctx, r.db).QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course code: %w", err)
	}

	return exists, nil
}

// CountByDepartment counts the courses offered by a department
func (r *CourseRepository) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM courses WHERE department_id = $1`, departmentID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting courses by department: %w", err)
	}

	return count, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, name = $2, description = $3, credits = $4, department_id = $5,
		    instructor_name = $6, max_students = $7, semester = $8, is_active = $9, updated_at = $10
		WHERE id = $11
	`

	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, query,
		course.Code, course.Name, course.Description, course.Credits,
		course.DepartmentID, course.InstructorName, course.MaxStudents,
		course.Semester, course.IsActive, course.UpdatedAt, course.ID,
	)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// SetActive activates or deactivates a course
func (r *CourseRepository) SetActive(ctx context.Context, id int64, active bool) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE courses SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("error updating course active state: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasEnrollments
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
