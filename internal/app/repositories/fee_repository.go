package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

// FeeRepository handles database operations for fees
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{db: db}
}

const feeColumns = `id, student_id, semester, fee_type, amount, paid_amount, due_date,
	payment_date, payment_status, payment_method, transaction_id, created_at, updated_at`

func scanFee(row pgx.Row) (*models.Fee, error) {
	var f models.Fee
	err := row.Scan(
		&f.ID,
		&f.StudentID,
		&f.Semester,
		&f.FeeType,
		&f.Amount,
		&f.PaidAmount,
		&f.DueDate,
		&f.PaymentDate,
		&f.PaymentStatus,
		&f.PaymentMethod,
		&f.TransactionID,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeeRepository) queryFees(ctx context.Context, query string, args ...any) ([]*models.Fee, error) {
	rows, err := querierFrom(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// Create inserts a new fee
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, semester, fee_type, amount, paid_amount, due_date,
			payment_date, payment_status, payment_method, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		fee.StudentID, fee.Semester, fee.FeeType, fee.Amount, fee.PaidAmount,
		fee.DueDate, fee.PaymentDate, fee.PaymentStatus, fee.PaymentMethod,
		fee.TransactionID, fee.CreatedAt, fee.UpdatedAt,
	).Scan(&fee.ID)

	if err != nil {
		return fmt.Errorf("error creating fee: %w", err)
	}

	return nil
}

// GetByID retrieves a fee by ID
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE id = $1`

	fee, err := scanFee(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return fee, nil
}

// GetAll retrieves all fees
func (r *FeeRepository) GetAll(ctx context.Context) ([]*models.Fee, error) {
	return r.queryFees(ctx, `SELECT `+feeColumns+` FROM fees ORDER BY id`)
}

// GetByStudent retrieves all fees of a student
func (r *FeeRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	return r.queryFees(ctx,
		`SELECT `+feeColumns+` FROM fees WHERE student_id = $1 ORDER BY id`, studentID)
}

// GetBySemester retrieves all fees for a semester
func (r *FeeRepository) GetBySemester(ctx context.Context, semester string) ([]*models.Fee, error) {
	return r.queryFees(ctx,
		`SELECT `+feeColumns+` FROM fees WHERE semester = $1 ORDER BY id`, semester)
}

// GetByStudentAndSemester retrieves a student's fees for a semester
func (r *FeeRepository) GetByStudentAndSemester(ctx context.Context, studentID int64, semester string) ([]*models.Fee, error) {
	return r.queryFees(ctx,
		`SELECT `+feeColumns+` FROM fees WHERE student_id = $1 AND semester = $2 ORDER BY id`,
		studentID, semester)
}

// GetByStatus retrieves all fees with the given payment status
func (r *FeeRepository) GetByStatus(ctx context.Context, status models.PaymentStatus) ([]*models.Fee, error) {
	return r.queryFees(ctx,
		`SELECT `+feeColumns+` FROM fees WHERE payment_status = $1 ORDER BY id`, status)
}

// GetPendingByStudent retrieves a student's fees still in the Pending state.
// Partially paid fees are not pending.
func (r *FeeRepository) GetPendingByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	return r.queryFees(ctx,
		`SELECT `+feeColumns+` FROM fees WHERE student_id = $1 AND payment_status = $2 ORDER BY id`,
		studentID, models.PaymentStatusPending)
}

// GetOverdue retrieves fees past their due date that are not fully paid
func (r *FeeRepository) GetOverdue(ctx context.Context, asOf time.Time) ([]*models.Fee, error) {
	return r.queryFees(ctx,
		`SELECT `+feeColumns+` FROM fees WHERE due_date < $1 AND payment_status != $2 ORDER BY due_date`,
		asOf, models.PaymentStatusPaid)
}

// SumAmountByStudent totals the amounts charged to a student
func (r *FeeRepository) SumAmountByStudent(ctx context.Context, studentID int64) (float64, error) {
	var total float64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM fees WHERE student_id = $1`, studentID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("error summing fee amounts: %w", err)
	}

	return total, nil
}

// SumPaidByStudent totals the payments recorded against a student's fees
func (r *FeeRepository) SumPaidByStudent(ctx context.Context, studentID int64) (float64, error) {
	var total float64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT COALESCE(SUM(paid_amount), 0) FROM fees WHERE student_id = $1`, studentID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("error summing fee payments: %w", err)
	}

	return total, nil
}

// SumOutstandingByStudent totals the unpaid balance across a student's fees.
// Fees marked Paid are excluded even when their paid amount does not cover
// the charge, since a status override settles the fee.
func (r *FeeRepository) SumOutstandingByStudent(ctx context.Context, studentID int64) (float64, error) {
	var total float64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT COALESCE(SUM(amount - paid_amount), 0) FROM fees WHERE student_id = $1 AND payment_status != $2`,
		studentID, models.PaymentStatusPaid).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("error summing outstanding balances: %w", err)
	}

	return total, nil
}

// CountPendingByStudent counts a student's fees still in the Pending state
func (r *FeeRepository) CountPendingByStudent(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := querierFrom(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM fees WHERE student_id = $1 AND payment_status = $2`,
		studentID, models.PaymentStatusPending).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting pending fees: %w", err)
	}

	return count, nil
}

// Update updates an existing fee
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	query := `
		UPDATE fees
		SET semester = $1, fee_type = $2, amount = $3, paid_amount = $4, due_date = $5,
		    payment_date = $6, payment_status = $7, payment_method = $8, transaction_id = $9,
		    updated_at = $10
		WHERE id = $11
	`

	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, query,
		fee.Semester, fee.FeeType, fee.Amount, fee.PaidAmount, fee.DueDate,
		fee.PaymentDate, fee.PaymentStatus, fee.PaymentMethod, fee.TransactionID,
		fee.UpdatedAt, fee.ID,
	)

	if err != nil {
		return fmt.Errorf("error updating fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// Delete deletes a fee by ID
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// DeleteAllByStudent deletes every fee belonging to a student
func (r *FeeRepository) DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error) {
	cmdTag, err := querierFrom(ctx, r.db).Exec(ctx,
		`DELETE FROM fees WHERE student_id = $1`, studentID)
	if err != nil {
		return 0, fmt.Errorf("error deleting student fees: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
