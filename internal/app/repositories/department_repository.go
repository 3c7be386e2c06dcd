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

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

const departmentColumns = `id, code, name, head_of_department, email, phone, building, established_year, created_at, updated_at`

func scanDepartment(row pgx.Row) (*models.Department, error) {
	var d models.Department
	err := row.Scan(
		&d.ID,
		&d.Code,
		&d.Name,
		&d.HeadOfDepartment,
		&d.Email,
		&d.Phone,
		&d.Building,
		&d.EstablishedYear,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (code, name, head_of_department, email, phone, building, established_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		department.Code, department.Name, department.HeadOfDepartment,
		department.Email, department.Phone, department.Building,
		department.EstablishedYear, department.CreatedAt, department.UpdatedAt,
	).Scan(&department.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "departments_code_key") {
			return apperrors.ErrDepartmentCodeExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`

	department, err := scanDepartment(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return department, nil
}

// GetByCode retrieves a department by its unique code
func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE code = $1`

	department, err := scanDepartment(querierFrom(ctx, r.db).QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department by code: %w", err)
	}

	return department, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY id`

	rows, err := querierFrom(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// ExistsByCode checks if a department code is already used by a record other
// than excludeID. Pass 0 to check against all records.
func (r *DepartmentRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := querierFrom(ctx, r.db).QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM departments WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking department code: %w", err)
	}

	return exists, nil
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET code = $1, name = $2, head_of_department = $3, email = $4, phone = $5,
		    building = $6, established_year = $7, updated_at = $8
		WHERE id = $9
	`

	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, query,
		department.Code, department.Name, department.HeadOfDepartment,
		department.Email, department.Phone, department.Building,
		department.EstablishedYear, department.UpdatedAt, department.ID,
	)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "departments_code_key") {
			return apperrors.ErrDepartmentCodeExists
		}
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		// Dependents inserted after the guard check still block the delete
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentHasStudents
		}
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
