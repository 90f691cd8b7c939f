package postgres

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: querier y pgx.Rows en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuerier struct {
	rows    [][]any
	err     error
	lastSQL string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.lastSQL = sql
	if q.err != nil {
		return nil, q.err
	}
	return &fakeRows{data: q.rows, idx: -1}, nil
}

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.idx], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx]
	if len(row) != len(dest) {
		return errors.New("número de columnas distinto")
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if row[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func i32(n int32) *int32 { return &n }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func dbRow(order string, year, month *int32, issue *time.Time, unit decimal.NullDecimal) []any {
	return []any{
		order, year, month, issue, day(2024, 2, 1), nil,
		"Fornecedor", "ana", "Luva", "recebido", "ok",
		decimal.NewFromInt(2), decimal.NewFromInt(20), decimal.NewFromInt(18), unit,
	}
}

func TestOrderLineSource_Load(t *testing.T) {
	q := &fakeQuerier{rows: [][]any{
		dbRow("1001", i32(2024), i32(1), day(2024, 1, 3), decimal.NewNullDecimal(decimal.NewFromInt(9))),
		dbRow("1002", nil, nil, day(2023, 12, 28), decimal.NullDecimal{}),
		dbRow("1003", nil, nil, nil, decimal.NullDecimal{}),
	}}
	src := newOrderLineSource(q, "compras.purchase_order_lines", purchasing.SchemaNet(), nil)

	ds, report, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, q.lastSQL, `"compras"."purchase_order_lines"`)
	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 1, report.Skipped)

	lines := ds.View().Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2024, lines[0].Year)
	assert.Equal(t, 1, lines[0].Month)
	assert.True(t, lines[0].ArrivalDate.Absent())
	assert.True(t, lines[0].UnitNetPrice.Valid)

	assert.Equal(t, 2023, lines[1].Year, "año/mes derivados de la emisión")
	assert.Equal(t, 12, lines[1].Month)
	assert.False(t, lines[1].UnitNetPrice.Valid)
}

func TestOrderLineSource_ErrorDeConsulta(t *testing.T) {
	src := newOrderLineSource(&fakeQuerier{err: errors.New("conexión rechazada")}, "t", purchasing.SchemaNet(), nil)
	_, _, err := src.Load(context.Background())
	assert.ErrorContains(t, err, "conexión rechazada")
}

func TestOrderLineSource_ErroresDePostgresSeTraducen(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"42P01", domain.ErrNotFound},
		{"42703", domain.ErrMissingColumns},
	}
	for _, tc := range cases {
		pgErr := &pgconn.PgError{Code: tc.code, Message: "relation does not exist"}
		src := newOrderLineSource(&fakeQuerier{err: pgErr}, "t", purchasing.SchemaNet(), nil)
		_, _, err := src.Load(context.Background())
		assert.ErrorIs(t, err, tc.want, tc.code)
	}
}
