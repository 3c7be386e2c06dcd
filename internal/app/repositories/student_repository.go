package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
	"github.com/campushq/studentms/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, student_number, first_name, last_name, email, phone, date_of_birth, gender,
	department_id, enrollment_date, status, gpa, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.StudentNumber,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.DateOfBirth,
		&s.Gender,
		&s.DepartmentID,
		&s.EnrollmentDate,
		&s.Status,
		&s.GPA,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]*models.Student, error) {
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_number, first_name, last_name, email, phone, date_of_birth, gender,
			department_id, enrollment_date, status, gpa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		student.StudentNumber, student.FirstName, student.LastName, student.Email,
		student.Phone, student.DateOfBirth, student.Gender, student.DepartmentID,
		student.EnrollmentDate, student.Status, student.GPA,
		student.CreatedAt, student.UpdatedAt,
	).Scan(&student.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
			return apperrors.ErrStudentNumberExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByStudentNumber retrieves a student by the unique student number
func (r *StudentRepository) GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_number = $1`

	student, err := scanStudent(querierFrom(ctx, r.db).QueryRow(ctx, query, studentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by number: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := scanStudent(querierFrom(ctx, r.db).QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.queryStudents(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id`)
}

// GetByDepartment retrieves all students in a department
func (r *StudentRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Student, error) {
	return r.queryStudents(ctx,
		`SELECT `+studentColumns+` FROM students WHERE department_id = $1 ORDER BY id`, departmentID)
}

// GetByStatus retrieves all students with the given status
func (r *StudentRepository) GetByStatus(ctx context.Context, status models.StudentStatus) ([]*models.Student, error) {
	return r.queryStudents(ctx,
		`SELECT `+studentColumns+` FROM students WHERE status = $1 ORDER BY id`, status)
}

// Search finds students whose first name, last name, email, or student
// number contains the keyword, case-insensitively.
func (r *StudentRepository) Search(ctx context.Context, keyword string) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		   OR student_number ILIKE '%' || $1 || '%'
		ORDER BY id
	`
	return r.queryStudents(ctx, query, keyword)
}

// Filter retrieves students matching the conjunction of the provided
// filters; nil filters match everything.
func (r *StudentRepository) Filter(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::bigint IS NULL OR department_id = $2)
		  AND ($3::numeric IS NULL OR gpa >= $3)
		ORDER BY id
	`
	return r.queryStudents(ctx, query, filter.Status, filter.DepartmentID, filter.MinGPA)
}

// GetWithMinGPA retrieves students with a GPA at or above the threshold
func (r *StudentRepository) GetWithMinGPA(ctx context.Context, minGPA float64) ([]*models.Student, error) {
	return r.queryStudents(ctx,
		`SELECT `+studentColumns+` FROM students WHERE gpa >= $1 ORDER BY id`, minGPA)
}

// ExistsByStudentNumber checks if a student number is used by a record other
// than excludeID. Pass 0 to check against all records.
func (r *StudentRepository) ExistsByStudentNumber(ctx context.Context, studentNumber string, excludeID int64) (bool, error) {
	var exists bool
	err := querierFrom(ctx, r.db).QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE student_number = $1 AND id != $2)`,
		studentNumber, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student number: %w", err)
	}

	return exists, nil
}

// ExistsByEmail checks if an email is used by a record other than excludeID.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := querierFrom(ctx, r.db).QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}

	return exists, nil
}

// CountByDepartment counts the students belonging to a department
func (r *StudentRepository) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE department_id = $1`, departmentID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting students by department: %w", err)
	}

	return count, nil
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET student_number = $1, first_name = $2, last_name = $3, email = $4, phone = $5,
		    date_of_birth = $6, gender = $7, department_id = $8, enrollment_date = $9,
		    status = $10, gpa = $11, updated_at = $12
		WHERE id = $13
	`

	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, query,
		student.StudentNumber, student.FirstName, student.LastName, student.Email,
		student.Phone, student.DateOfBirth, student.Gender, student.DepartmentID,
		student.EnrollmentDate, student.Status, student.GPA, student.UpdatedAt, student.ID,
	)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
			return apperrors.ErrStudentNumberExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateStatus updates only the status of a student
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status models.StudentStatus) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE students SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating student status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("student has dependent records; delete addresses, enrollments, and fees first")
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
