package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentms/internal/db"
)

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so a repository method runs against
// the pool by default and against the ambient transaction when one is open.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// TxManager opens transactions and exposes them to repositories through the
// context. Multi-step rules (capacity check + insert, primacy sweep) run
// inside WithinTransaction so they commit fully or not at all.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a transaction manager over the pool
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// WithinTransaction runs fn with a transaction bound to the context.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.WithTransaction(ctx, m.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// querierFrom returns the transaction bound to ctx, or the pool
func querierFrom(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	StudentRepository    *StudentRepository
	AddressRepository    *AddressRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	FeeRepository        *FeeRepository
	TxManager            *TxManager
}

// NewRepositories initializes all repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(pool),
		StudentRepository:    NewStudentRepository(pool),
		AddressRepository:    NewAddressRepository(pool),
		CourseRepository:     NewCourseRepository(pool),
		EnrollmentRepository: NewEnrollmentRepository(pool),
		FeeRepository:        NewFeeRepository(pool),
		TxManager:            NewTxManager(pool),
	}
}
