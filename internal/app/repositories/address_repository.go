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

// AddressRepository handles database operations for student addresses
type AddressRepository struct {
	db *pgxpool.Pool
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{db: db}
}

const addressColumns = `id, student_id, address_type, street_address, city, state, postal_code,
	country, is_primary, created_at, updated_at`

func scanAddress(row pgx.Row) (*models.Address, error) {
	var a models.Address
	err := row.Scan(
		&a.ID,
		&a.StudentID,
		&a.Type,
		&a.StreetAddress,
		&a.City,
		&a.State,
		&a.PostalCode,
		&a.Country,
		&a.IsPrimary,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) queryAddresses(ctx context.Context, query string, args ...any) ([]*models.Address, error) {
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []*models.Address
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

// Create inserts a new address
func (r *AddressRepository) Create(ctx context.Context, address *models.Address) error {
	query := `
		INSERT INTO addresses (student_id, address_type, street_address, city, state, postal_code,
			country, is_primary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		address.StudentID, address.Type, address.StreetAddress, address.City,
		address.State, address.PostalCode, address.Country, address.IsPrimary,
		address.CreatedAt, address.UpdatedAt,
	).Scan(&address.ID)

	if err != nil {
		// The only unique index on addresses is the one-primary-per-student
		// partial index.
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("student already has a primary address")
		}
		return fmt.Errorf("error creating address: %w", err)
	}

	return nil
}

// GetByID retrieves an address by ID
func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*models.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	address, err := scanAddress(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAddressNotFound
		}
		return nil, fmt.Errorf("error retrieving address: %w", err)
	}

	return address, nil
}

// GetAll retrieves all addresses
func (r *AddressRepository) GetAll(ctx context.Context) ([]*models.Address, error) {
	return r.queryAddresses(ctx, `SELECT `+addressColumns+` FROM addresses ORDER BY id`)
}

// GetByStudent retrieves all addresses belonging to a student
func (r *AddressRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Address, error) {
	return r.queryAddresses(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE student_id = $1 ORDER BY id`, studentID)
}

// GetByStudentAndType retrieves a student's addresses of a given type
func (r *AddressRepository) GetByStudentAndType(ctx context.Context, studentID int64, addressType models.AddressType) ([]*models.Address, error) {
	return r.queryAddresses(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE student_id = $1 AND address_type = $2 ORDER BY id`,
		studentID, addressType)
}

// GetPrimaryByStudent retrieves the primary address of a student
func (r *AddressRepository) GetPrimaryByStudent(ctx context.Context, studentID int64) (*models.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE student_id = $1 AND is_primary = TRUE`

	address, err := scanAddress(querierFrom(ctx, r.db).QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoPrimaryAddress
		}
		return nil, fmt.Errorf("error retrieving primary address: %w", err)
	}

	return address, nil
}

// GetByCity retrieves addresses in a given city, case-insensitively
func (r *AddressRepository) GetByCity(ctx context.Context, city string) ([]*models.Address, error) {
	return r.queryAddresses(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE city ILIKE $1 ORDER BY id`, city)
}

// GetByState retrieves addresses in a given state, case-insensitively
func (r *AddressRepository) GetByState(ctx context.Context, state string) ([]*models.Address, error) {
	return r.queryAddresses(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE state ILIKE $1 ORDER BY id`, state)
}

// Update updates an existing address
func (r *AddressRepository) Update(ctx context.Context, address *models.Address) error {
	query := `
		UPDATE addresses
		SET address_type = $1, street_address = $2, city = $3, state = $4, postal_code = $5,
		    country = $6, is_primary = $7, updated_at = $8
		WHERE id = $9
	`

	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, query,
		address.Type, address.StreetAddress, address.City, address.State,
		address.PostalCode, address.Country, address.IsPrimary, address.UpdatedAt, address.ID,
	)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("student already has a primary address")
		}
		return fmt.Errorf("error updating address: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAddressNotFound
	}

	return nil
}

// UpdatePrimaryFlag sets or clears the primary flag on a single address
func (r *AddressRepository) UpdatePrimaryFlag(ctx context.Context, id int64, isPrimary bool) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx,
		`UPDATE addresses SET is_primary = $1, updated_at = NOW() WHERE id = $2`, isPrimary, id)
	if err != nil {
		return fmt.Errorf("error updating address primary flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAddressNotFound
	}

	return nil
}

// ClearPrimaryForStudent clears the primary flag on every address of a
// student except the one identified by keepID. Pass 0 to clear all.
func (r *AddressRepository) ClearPrimaryForStudent(ctx context.Context, studentID, keepID int64) error {
	_, err := querierFrom(ctx, r.db).Exec(ctx, `
		UPDATE addresses SET is_primary = FALSE, updated_at = NOW()
		WHERE student_id = $1 AND id != $2 AND is_primary = TRUE`,
		studentID, keepID)
	if err != nil {
		return fmt.Errorf("error clearing primary addresses: %w", err)
	}

	return nil
}

// Delete deletes an address by ID
func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting address: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAddressNotFound
	}

	return nil
}

// DeleteAllByStudent deletes every address belonging to a student
func (r *AddressRepository) DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error) {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM addresses WHERE student_id = $1`, studentID)
	if err != nil {
		return 0, fmt.Errorf("error deleting student addresses: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
