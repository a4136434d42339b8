package record

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/records-console/internal/storage"
)

type widget struct {
	ID    int64
	Label string
	Count int
}

var widgets = Table[widget]{
	Name:    "Widget",
	Columns: []string{"WidgetID", "Label", "Count"},
	Values: func(w widget) []any {
		return []any{w.ID, w.Label, w.Count}
	},
	Fields: func(w *widget) []any {
		return []any{&w.ID, &w.Label, &w.Count}
	},
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE Widget (
		WidgetID INTEGER PRIMARY KEY,
		Label    TEXT    NOT NULL,
		Count    INTEGER NOT NULL
	)`)
	require.NoError(t, err)
	return db
}

func newTestRepo(t *testing.T) *Repo[widget] {
	t.Helper()
	return NewRepo(openTestDB(t), squirrel.StatementBuilder, widgets)
}

func TestStatements(t *testing.T) {
	ast := assert.New(t)
	w := widget{ID: 7, Label: "gear", Count: 3}

	query, args, err := widgets.insert(squirrel.StatementBuilder, w).ToSql()
	ast.NoError(err)
	ast.Equal("INSERT INTO Widget (WidgetID,Label,Count) VALUES (?,?,?)", query)
	ast.Equal([]any{int64(7), "gear", 3}, args)

	query, args, err = widgets.update(squirrel.StatementBuilder, w).ToSql()
	ast.NoError(err)
	ast.Equal("UPDATE Widget SET Label = ?, Count = ? WHERE WidgetID = ?", query)
	ast.Equal([]any{"gear", 3, int64(7)}, args)

	query, args, err = widgets.delete(squirrel.StatementBuilder, int64(7)).ToSql()
	ast.NoError(err)
	ast.Equal("DELETE FROM Widget WHERE WidgetID = ?", query)
	ast.Equal([]any{int64(7)}, args)

	query, _, err = widgets.list(squirrel.StatementBuilder).ToSql()
	ast.NoError(err)
	ast.Equal("SELECT WidgetID, Label, Count FROM Widget", query)
}

func TestStatementsDollarPlaceholders(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, _, err := widgets.update(sb, widget{ID: 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE Widget SET Label = $1, Count = $2 WHERE WidgetID = $3", query)
}

func TestInsertThenList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	rows, err := repo.Insert(ctx, widget{ID: 1, Label: "gear", Count: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: 1, Label: "gear", Count: 4}}, got)
}

func TestListEmptyIsNotNil(t *testing.T) {
	got, err := newTestRepo(t).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	_, err := repo.Insert(ctx, widget{ID: 1, Label: "gear", Count: 4})
	require.NoError(t, err)

	rows, err := repo.Update(ctx, widget{ID: 1, Label: "cog", Count: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: 1, Label: "cog", Count: 9}}, got)
}

func TestUpdateMissingKeyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	_, err := repo.Insert(ctx, widget{ID: 1, Label: "gear", Count: 4})
	require.NoError(t, err)

	rows, err := repo.Update(ctx, widget{ID: 2, Label: "cog", Count: 9})
	require.NoError(t, err)
	assert.Zero(t, rows)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: 1, Label: "gear", Count: 4}}, got)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	_, err := repo.Insert(ctx, widget{ID: 1, Label: "gear", Count: 4})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, widget{ID: 2, Label: "cog", Count: 1})
	require.NoError(t, err)

	rows, err := repo.Delete(ctx, int64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(ctx, int64(1))
	require.NoError(t, err)
	assert.Zero(t, rows)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: 2, Label: "cog", Count: 1}}, got)
}

func TestDuplicateInsertRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	_, err := repo.Insert(ctx, widget{ID: 1, Label: "gear", Count: 4})
	require.NoError(t, err)

	rows, err := repo.Insert(ctx, widget{ID: 1, Label: "impostor", Count: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrRolledBack)
	assert.Zero(t, rows)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: 1, Label: "gear", Count: 4}}, got)
}

func TestMutateExecFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := Mutate(ctx, db, "UPDATE Missing SET Label = ? WHERE WidgetID = ?", "x", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrRolledBack)

	// The single connection must be free again after the rollback.
	rows, err := Mutate(ctx, db, "INSERT INTO Widget (WidgetID, Label, Count) VALUES (?, ?, ?)", 5, "bolt", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestMutateBeginFailure(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Close())

	_, err := Mutate(context.Background(), db, "DELETE FROM Widget")
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrRolledBack)
}

// explosiveValue panics while the driver converts it to a statement argument.
type explosiveValue struct{}

func (explosiveValue) Value() (driver.Value, error) {
	panic("value conversion failed")
}

func TestMutatePanicRollsBackAndRepanics(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewRepo(db, squirrel.StatementBuilder, widgets)

	assert.PanicsWithValue(t, "value conversion failed", func() {
		_, _ = Mutate(ctx, db, "INSERT INTO Widget (WidgetID, Label, Count) VALUES (?, ?, ?)", 1, explosiveValue{}, 1)
	})

	// The single connection was released by the rollback and still commits.
	rows, err := repo.Insert(ctx, widget{ID: 2, Label: "nut", Count: 6})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: 2, Label: "nut", Count: 6}}, got)
}
