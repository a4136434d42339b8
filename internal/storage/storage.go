// Package storage defines the store interfaces — contracts that any
// database backend must satisfy to work with the console programs.
//
// Handlers only ever see these interfaces, so they do not know or care
// which driver is behind them, and tests can pass any implementation.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/records-console/internal/types"
)

var (
	// ErrRolledBack marks a write whose transaction was rolled back
	// after the statement failed. The driver error is wrapped alongside.
	ErrRolledBack = errors.New("transaction rolled back")

	// ErrAlreadyExists marks an insert rejected because a row with the
	// same primary key is already stored.
	ErrAlreadyExists = errors.New("record with this ID already exists")
)

// EmployeeStore is read-only: no write operations exist for employees.
type EmployeeStore interface {
	// GetEmployees returns every employee in the order the engine yields them.
	GetEmployees(ctx context.Context) ([]types.Employee, error)
}

// ProductStore is the full CRUD contract for products.
//
// Every write returns the number of affected rows. For updates and
// deletes a count of zero with a nil error means no row matched the ID.
type ProductStore interface {
	CreateProduct(ctx context.Context, product types.Product) (int64, error)
	GetProducts(ctx context.Context) ([]types.Product, error)
	UpdateProduct(ctx context.Context, product types.Product) (int64, error)
	DeleteProduct(ctx context.Context, id int64) (int64, error)
}

// StudentStore is the full CRUD contract for students. Row counts follow
// the same rules as ProductStore.
type StudentStore interface {
	CreateStudent(ctx context.Context, student types.Student) (int64, error)
	GetStudents(ctx context.Context) ([]types.Student, error)
	UpdateStudent(ctx context.Context, student types.Student) (int64, error)
	DeleteStudent(ctx context.Context, id int64) (int64, error)
}
