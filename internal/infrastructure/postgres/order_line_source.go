package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
	"github.com/jhoicas/compras-dashboard/internal/domain/repository"
	"github.com/jhoicas/compras-dashboard/pkg/logger"
)

var _ repository.OrderLineSource = (*OrderLineSource)(nil)

// querier subconjunto de pgxpool.Pool usado por la fuente (permite dobles en tests).
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// OrderLineSource lee el snapshot desde una vista de PostgreSQL con columnas normalizadas:
//
//	order_number, year, month, issue_date, expected_delivery_date, arrival_date,
//	supplier, buyer, product_description, order_status, situation,
//	item_quantity, gross_value, net_value, unit_net_price
type OrderLineSource struct {
	db     querier
	table  string
	schema purchasing.Schema
	log    *logger.Logger
}

// NewOrderLineSource construye la fuente sobre el pool.
func NewOrderLineSource(pool *pgxpool.Pool, table string, schema purchasing.Schema, log *logger.Logger) *OrderLineSource {
	return newOrderLineSource(pool, table, schema, log)
}

func newOrderLineSource(db querier, table string, schema purchasing.Schema, log *logger.Logger) *OrderLineSource {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderLineSource{db: db, table: table, schema: schema, log: log.Component("postgres")}
}

// selectQuery arma el SELECT con el identificador de tabla saneado ("schema.tabla" admitido).
func (s *OrderLineSource) selectQuery() string {
	ident := pgx.Identifier(strings.Split(s.table, ".")).Sanitize()
	return `
	SELECT
	    order_number::TEXT,
	    year,
	    month,
	    issue_date,
	    expected_delivery_date,
	    arrival_date,
	    COALESCE(supplier, ''),
	    COALESCE(buyer, ''),
	    COALESCE(product_description, ''),
	    COALESCE(order_status, ''),
	    COALESCE(situation, ''),
	    COALESCE(item_quantity, 0),
	    COALESCE(gross_value, 0),
	    COALESCE(net_value, 0),
	    unit_net_price
	FROM ` + ident + `
	ORDER BY order_number`
}

// Load ejecuta una única consulta y construye el snapshot. Las filas sin año/mes ni
// fecha de emisión se descartan como en el loader CSV.
func (s *OrderLineSource) Load(ctx context.Context) (*purchasing.Dataset, repository.LoadReport, error) {
	var report repository.LoadReport

	rows, err := s.db.Query(ctx, s.selectQuery())
	if err != nil {
		return nil, report, fmt.Errorf("postgres.OrderLineSource.Load: %w", classifyQueryError(err))
	}
	defer rows.Close()

	var lines []entity.OrderLine
	for rows.Next() {
		report.Rows++
		var (
			l                        entity.OrderLine
			year, month              *int32
			issue, expected, arrival *time.Time
			quantity, gross, net     decimal.Decimal
			unitPrice                decimal.NullDecimal
		)
		if err := rows.Scan(
			&l.OrderID,
			&year,
			&month,
			&issue,
			&expected,
			&arrival,
			&l.Supplier,
			&l.Buyer,
			&l.ProductDescription,
			&l.OrderStatus,
			&l.Situation,
			&quantity,
			&gross,
			&net,
			&unitPrice,
		); err != nil {
			return nil, report, fmt.Errorf("postgres.OrderLineSource.Load scan: %w", err)
		}
		l.IssueDate = dateFrom(issue)
		l.ExpectedDeliveryDate = dateFrom(expected)
		l.ArrivalDate = dateFrom(arrival)
		l.ItemQuantity, l.GrossValue, l.NetValue, l.UnitNetPrice = quantity, gross, net, unitPrice

		switch {
		case year != nil && month != nil && *month >= 1 && *month <= 12:
			l.Year, l.Month = int(*year), int(*month)
		case l.IssueDate.Valid():
			l.Year, l.Month = l.IssueDate.Time().Year(), int(l.IssueDate.Time().Month())
		default:
			report.Skipped++
			report.Warn(fmt.Sprintf("pedido %s: sin año/mes ni fecha de emisión", l.OrderID))
			continue
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, report, fmt.Errorf("postgres.OrderLineSource.Load rows: %w", err)
	}
	report.Loaded = len(lines)

	ds := purchasing.NewDataset(uuid.NewString(), s.schema, lines, nil)
	s.log.Info().
		Str("table", s.table).
		Str("snapshot_id", ds.ID()).
		Int("loaded", report.Loaded).
		Int("skipped", report.Skipped).
		Msg("dataset cargado")
	return ds, report, nil
}

func dateFrom(t *time.Time) entity.Date {
	if t == nil {
		return entity.ParseDate("")
	}
	return entity.NewDate(*t)
}
