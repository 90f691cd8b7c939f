package purchasing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// comparisonFields campos necesarios para el comparativo de períodos. El precio
// unitario es opcional: sin esa columna sólo se comparan cantidades.
var comparisonFields = []Field{FieldYear, FieldMonth, FieldProduct, FieldItemQuantity}

// Period par (año, mes) de calendario.
type Period struct {
	Year  int
	Month int
}

// Previous mes inmediatamente anterior; enero retrocede a diciembre del año previo.
func (p Period) Previous() Period {
	if p.Month-1 < 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Label formato "M/AAAA" usado en los encabezados del comparativo.
func (p Period) Label() string { return fmt.Sprintf("%d/%d", p.Month, p.Year) }

// Contains indica si la línea pertenece a la ventana del período.
func (p Period) Contains(l entity.OrderLine) bool {
	return l.Year == p.Year && l.Month == p.Month
}

// LatestPeriod año máximo de la vista y, dentro de él, el mes máximo.
func LatestPeriod(v View) (Period, error) {
	if v.Empty() {
		return Period{}, domain.ErrNoData
	}
	var p Period
	for i, l := range v.lines {
		if i == 0 || l.Year > p.Year {
			p = Period{Year: l.Year, Month: l.Month}
			continue
		}
		if l.Year == p.Year && l.Month > p.Month {
			p.Month = l.Month
		}
	}
	return p, nil
}

// ComparisonRow una fila por producto con ambos lados de la comparación.
// Un producto presente en una sola ventana aparece con ceros en la otra.
type ComparisonRow struct {
	Product          string
	PreviousQuantity decimal.Decimal
	CurrentQuantity  decimal.Decimal
	PreviousPrice    decimal.Decimal // promedio de preco unitario líquido
	CurrentPrice     decimal.Decimal
	VariationPct     decimal.Decimal
}

// Comparison resultado del comparativo mes actual vs mes anterior.
type Comparison struct {
	Current  Period
	Previous Period
	// PricesAvailable es false cuando el archivo no trae preco unitario líquido;
	// en ese caso precios y variación quedan en cero.
	PricesAvailable bool
	Rows            []ComparisonRow
}

// ComparePeriods compara cantidades y precio promedio por producto entre el último
// mes presente en la vista y el mes calendario anterior (join externo completo).
// Vista vacía -> domain.ErrNoData; columnas faltantes -> domain.ErrMissingColumns.
func ComparePeriods(v View) (*Comparison, error) {
	if v.Empty() {
		return nil, domain.ErrNoData
	}
	if missing := v.MissingFields(comparisonFields...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingColumns, missing)
	}

	current, err := LatestPeriod(v)
	if err != nil {
		return nil, err
	}
	previous := current.Previous()
	withPrices := len(v.MissingFields(FieldUnitNetPrice)) == 0

	prevAgg := aggregateWindow(v.where(previous.Contains), withPrices)
	curAgg := aggregateWindow(v.where(current.Contains), withPrices)

	keys := make([]string, 0, len(prevAgg)+len(curAgg))
	for k := range prevAgg {
		keys = append(keys, k)
	}
	for k := range curAgg {
		if _, ok := prevAgg[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	rows := make([]ComparisonRow, 0, len(keys))
	for _, k := range keys {
		prev, cur := prevAgg[k], curAgg[k]
		row := ComparisonRow{
			PreviousQuantity: decimal.Zero,
			CurrentQuantity:  decimal.Zero,
			PreviousPrice:    decimal.Zero,
			CurrentPrice:     decimal.Zero,
		}
		if prev != nil {
			row.Product = prev.label
			row.PreviousQuantity = prev.quantity
			row.PreviousPrice = prev.avgPrice()
		}
		if cur != nil {
			if row.Product == "" {
				row.Product = cur.label
			}
			row.CurrentQuantity = cur.quantity
			row.CurrentPrice = cur.avgPrice()
		}
		row.VariationPct = Variation(row.PreviousPrice, row.CurrentPrice)
		rows = append(rows, row)
	}

	return &Comparison{
		Current:         current,
		Previous:        previous,
		PricesAvailable: withPrices,
		Rows:            rows,
	}, nil
}

// Variation variación porcentual del precio: (actual - anterior) / anterior * 100.
// Si cualquiera de los dos precios es cero el resultado es 0; esto confunde
// "sin precio previo" con "sin cambio".
func Variation(previous, current decimal.Decimal) decimal.Decimal {
	if previous.IsZero() || current.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

type productAgg struct {
	label      string
	quantity   decimal.Decimal
	priceSum   decimal.Decimal
	priceCount int64
}

func (a *productAgg) avgPrice() decimal.Decimal {
	if a.priceCount == 0 {
		return decimal.Zero
	}
	return a.priceSum.Div(decimal.NewFromInt(a.priceCount))
}

// aggregateWindow suma cantidades y, si withPrices, acumula precios por producto
// normalizado. Las líneas sin descripción no participan del agrupamiento.
func aggregateWindow(v View, withPrices bool) map[string]*productAgg {
	out := make(map[string]*productAgg)
	for _, l := range v.lines {
		key := ProductKey(l.ProductDescription)
		if key == "" {
			continue
		}
		a, ok := out[key]
		if !ok {
			a = &productAgg{
				label:    strings.TrimSpace(l.ProductDescription),
				quantity: decimal.Zero,
				priceSum: decimal.Zero,
			}
			out[key] = a
		}
		a.quantity = a.quantity.Add(l.ItemQuantity)
		if withPrices && l.UnitNetPrice.Valid {
			a.priceSum = a.priceSum.Add(l.UnitNetPrice.Decimal)
			a.priceCount++
		}
	}
	return out
}
