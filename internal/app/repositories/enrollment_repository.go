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

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

const enrollmentColumns = `id, student_id, course_id, enrollment_date, grade, grade_points,
	attendance_percentage, status, created_at, updated_at`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var e models.Enrollment
	err := row.Scan(
		&e.ID,
		&e.StudentID,
		&e.CourseID,
		&e.EnrollmentDate,
		&e.Grade,
		&e.GradePoints,
		&e.AttendancePercentage,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepository) queryEnrollments(ctx context.Context, query string, args ...any) ([]*models.Enrollment, error) {
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Create inserts a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, enrollment_date, grade, grade_points,
			attendance_percentage, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.EnrollmentDate,
		enrollment.Grade, enrollment.GradePoints, enrollment.AttendancePercentage,
		enrollment.Status, enrollment.CreatedAt, enrollment.UpdatedAt,
	).Scan(&enrollment.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_course_key") {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1`

	enrollment, err := scanEnrollment(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// GetAll retrieves all enrollments
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	return r.queryEnrollments(ctx, `SELECT `+enrollmentColumns+` FROM enrollments ORDER BY id`)
}

// GetByStudent retrieves all enrollments of a student
func (r *EnrollmentRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.queryEnrollments(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE student_id = $1 ORDER BY id`, studentID)
}

// GetByCourse retrieves all enrollments in a course
func (r *EnrollmentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return r.queryEnrollments(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE course_id = $1 ORDER BY id`, courseID)
}

// GetByStatus retrieves all enrollments with the given status
func (r *EnrollmentRepository) GetByStatus(ctx context.Context, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	return r.queryEnrollments(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE status = $1 ORDER BY id`, status)
}

// GetCompletedByStudent retrieves a student's completed enrollments
func (r *EnrollmentRepository) GetCompletedByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.queryEnrollments(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE student_id = $1 AND status = $2 ORDER BY id`,
		studentID, models.EnrollmentStatusCompleted)
}

// ExistsByStudentAndCourse checks if the student already has an enrollment
// record for the course, regardless of its status.
func (r *EnrollmentRepository) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := querierFrom(ctx, r.db).QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// CountActiveByCourse counts enrollments occupying a seat in a course
func (r *EnrollmentRepository) CountActiveByCourse(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND status = $2`,
		courseID, models.EnrollmentStatusEnrolled).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting course enrollments: %w", err)
	}

	return count, nil
}

// CountByCourse counts all enrollments in a course
func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting course enrollments: %w", err)
	}

	return count, nil
}

// AverageGradePoints computes the mean grade points over a student's
// enrollments that carry grade points, regardless of enrollment status.
// Returns ok=false when no such enrollment exists.
func (r *EnrollmentRepository) AverageGradePoints(ctx context.Context, studentID int64) (float64, bool, error) {
	var avg *float64
	err := querierFrom(ctx, r.db).QueryRow(ctx, `
		SELECT AVG(grade_points) FROM enrollments
		WHERE student_id = $1 AND grade_points IS NOT NULL`,
		studentID).Scan(&avg)

	if err != nil {
		return 0, false, fmt.Errorf("error averaging grade points: %w", err)
	}

	if avg == nil {
		return 0, false, nil
	}

	return *avg, true, nil
}

// Update updates an existing enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET enrollment_date = $1, grade = $2, grade_points = $3, attendance_percentage = $4,
		    status = $5, updated_at = $6
		WHERE id = $7
	`

	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, query,
		enrollment.EnrollmentDate, enrollment.Grade, enrollment.GradePoints,
		enrollment.AttendancePercentage, enrollment.Status, enrollment.UpdatedAt, enrollment.ID,
	)

	if err != nil {
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// DeleteAllByStudent deletes every enrollment belonging to a student
func (r *EnrollmentRepository) DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error) {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM enrollments WHERE student_id = $1`, studentID)
	if err != nil {
		return 0, fmt.Errorf("error deleting student enrollments: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
