package record

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Table binds a record type T to one database table.
//
// Columns lists every column in declaration order; the first one is the
// primary key. Values and Fields must follow exactly the same order:
// Values reads a record into statement arguments, Fields returns the
// scan destinations for one result row.
type Table[T any] struct {
	Name    string
	Columns []string
	Values  func(T) []any
	Fields  func(*T) []any
}

// Key returns the primary-key column name.
func (t Table[T]) Key() string {
	return t.Columns[0]
}

func (t Table[T]) insert(sb squirrel.StatementBuilderType, rec T) squirrel.InsertBuilder {
	return sb.Insert(t.Name).
		Columns(t.Columns...).
		Values(t.Values(rec)...)
}

func (t Table[T]) update(sb squirrel.StatementBuilderType, rec T) squirrel.UpdateBuilder {
	values := t.Values(rec)

	q := sb.Update(t.Name)
	for i, column := range t.Columns[1:] {
		q = q.Set(column, values[i+1])
	}
	return q.Where(squirrel.Eq{t.Key(): values[0]})
}

func (t Table[T]) delete(sb squirrel.StatementBuilderType, id any) squirrel.DeleteBuilder {
	return sb.Delete(t.Name).Where(squirrel.Eq{t.Key(): id})
}

func (t Table[T]) list(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(t.Columns...).From(t.Name)
}

// Repo performs the CRUD operations of one Table against a database.
type Repo[T any] struct {
	table Table[T]
	db    DB
	sb    squirrel.StatementBuilderType
}

// NewRepo returns a Repo for table. sb carries the placeholder format of
// the underlying driver.
func NewRepo[T any](db DB, sb squirrel.StatementBuilderType, table Table[T]) *Repo[T] {
	return &Repo[T]{table: table, db: db, sb: sb}
}

// Insert adds rec and returns the number of inserted rows.
func (r *Repo[T]) Insert(ctx context.Context, rec T) (int64, error) {
	query, args, err := r.table.insert(r.sb, rec).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s insert: build: %w", r.table.Name, err)
	}
	return Mutate(ctx, r.db, query, args...)
}

// Update overwrites every non-key column of the row identified by rec's key.
// Zero affected rows means the key was not found.
func (r *Repo[T]) Update(ctx context.Context, rec T) (int64, error) {
	query, args, err := r.table.update(r.sb, rec).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s update: build: %w", r.table.Name, err)
	}
	return Mutate(ctx, r.db, query, args...)
}

// Delete removes the row with the given key.
// Zero affected rows means the key was not found.
func (r *Repo[T]) Delete(ctx context.Context, id any) (int64, error) {
	query, args, err := r.table.delete(r.sb, id).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s delete: build: %w", r.table.Name, err)
	}
	return Mutate(ctx, r.db, query, args...)
}

// List returns every row in the order the engine returns them.
// The result is empty, never nil, when the table has no rows.
func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	query, args, err := r.table.list(r.sb).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s list: build: %w", r.table.Name, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s list: query: %w", r.table.Name, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var rec T
		if err := rows.Scan(r.table.Fields(&rec)...); err != nil {
			return nil, fmt.Errorf("%s list: scan row: %w", r.table.Name, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s list: rows iteration: %w", r.table.Name, err)
	}

	return records, nil
}
