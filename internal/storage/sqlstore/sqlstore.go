// Package sqlstore implements the storage interfaces on top of
// database/sql. It supports SQLite (the default) and PostgreSQL through
// either the pgx or the lib/pq driver.
//
// The blank imports below register the drivers with database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/aanand-mishra/records-console/internal/config"
	"github.com/aanand-mishra/records-console/internal/storage"
	"github.com/aanand-mishra/records-console/internal/storage/record"
	"github.com/aanand-mishra/records-console/internal/types"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// schema returns the statements creating the three tables when they are
// missing. SQLite gives DECIMAL columns NUMERIC affinity and keeps the
// values as REAL, so under SQLite money is stored as TEXT and parsed back
// by decimal.Decimal without loss.
func schema(driver string) []string {
	salary, price := "DECIMAL(12,2)", "DECIMAL(10,2)"
	if driver == config.DriverSQLite {
		salary, price = "TEXT", "TEXT"
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS Employee (
		EmpID  INTEGER      PRIMARY KEY,
		Name   VARCHAR(100) NOT NULL,
		Salary %s NOT NULL
	)`, salary),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS Product (
		ProductID   INTEGER      PRIMARY KEY,
		ProductName VARCHAR(100) NOT NULL,
		Price       %s NOT NULL,
		Quantity    INTEGER      NOT NULL
	)`, price),
		`CREATE TABLE IF NOT EXISTS Student (
		StudentID  INTEGER      PRIMARY KEY,
		Name       VARCHAR(100) NOT NULL,
		Department VARCHAR(100) NOT NULL,
		Marks      INTEGER      NOT NULL
	)`,
	}
}

var (
	_ storage.EmployeeStore = (*Store)(nil)
	_ storage.ProductStore  = (*Store)(nil)
	_ storage.StudentStore  = (*Store)(nil)
)

// Store is the concrete implementation of storage.EmployeeStore,
// storage.ProductStore and storage.StudentStore.
//
// It holds exactly one database connection for its whole lifetime.
type Store struct {
	db *sql.DB

	employees *record.Repo[types.Employee]
	products  *record.Repo[types.Product]
	students  *record.Repo[types.Student]
}

// New opens the database described by cfg, verifies the connection and,
// unless cfg.SkipSchema is set, creates the tables that do not exist yet.
func New(ctx context.Context, cfg config.Database) (*Store, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("sqlstore.New: open db: %w", err)
	}

	// One connection, opened once and kept until Close.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore.New: connect: %w", err)
	}

	if !cfg.SkipSchema {
		for _, stmt := range schema(cfg.Driver) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("sqlstore.New: create table: %w", err)
			}
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("driver", cfg.Driver).
		Bool("schema", !cfg.SkipSchema).
		Msg("database connection established")

	return newStore(db, statementBuilder(cfg.Driver)), nil
}

func newStore(db *sql.DB, sb squirrel.StatementBuilderType) *Store {
	return &Store{
		db:        db,
		employees: record.NewRepo(db, sb, employeeTable),
		products:  record.NewRepo(db, sb, productTable),
		students:  record.NewRepo(db, sb, studentTable),
	}
}

// statementBuilder returns a builder emitting the placeholder style of driver.
func statementBuilder(driver string) squirrel.StatementBuilderType {
	switch driver {
	case config.DriverPgx, config.DriverPostgres:
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	default:
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
