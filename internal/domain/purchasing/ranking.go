package purchasing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-dashboard/internal/domain"
)

// DefaultTopN tamaño del ranking de proveedores cuando no se indica.
const DefaultTopN = 10

// SupplierTotal valor total comprado a un proveedor.
type SupplierTotal struct {
	Supplier string
	Total    decimal.Decimal
}

// TopSuppliers agrupa el valor por proveedor y devuelve los n mayores en orden descendente.
// Empates: proveedor en orden alfabético ascendente.
func TopSuppliers(v View, n int) ([]SupplierTotal, error) {
	if v.Empty() {
		return nil, domain.ErrNoData
	}
	valueField := v.Schema().ValueField()
	if missing := v.MissingFields(FieldSupplier, valueField); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingColumns, missing)
	}
	if n <= 0 {
		n = DefaultTopN
	}

	totals := make(map[string]decimal.Decimal)
	for _, l := range v.lines {
		cur, ok := totals[l.Supplier]
		if !ok {
			cur = decimal.Zero
		}
		totals[l.Supplier] = cur.Add(v.Value(l))
	}

	ranking := make([]SupplierTotal, 0, len(totals))
	for s, t := range totals {
		ranking = append(ranking, SupplierTotal{Supplier: s, Total: t})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if c := ranking[i].Total.Cmp(ranking[j].Total); c != 0 {
			return c > 0
		}
		return ranking[i].Supplier < ranking[j].Supplier
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking, nil
}
