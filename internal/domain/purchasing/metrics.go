package purchasing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Metrics los cinco indicadores de las tarjetas del dashboard.
// Entregados y pendientes se cuentan por separado: un pedido sin ninguno de los dos
// estados solo aparece en OrderCount.
type Metrics struct {
	OrderCount     int
	TotalValue     decimal.Decimal
	TotalItems     decimal.Decimal
	DeliveredCount int
	PendingCount   int
}

// ComputeMetrics calcula los indicadores sobre la vista. Vista vacía -> ceros.
func ComputeMetrics(v View) Metrics {
	schema := v.Schema()
	orders := make(map[string]struct{})
	delivered := make(map[string]struct{})
	pending := make(map[string]struct{})

	m := Metrics{TotalValue: decimal.Zero, TotalItems: decimal.Zero}
	for _, l := range v.lines {
		orders[l.OrderID] = struct{}{}
		m.TotalValue = m.TotalValue.Add(v.Value(l))
		m.TotalItems = m.TotalItems.Add(l.ItemQuantity)

		switch strings.TrimSpace(l.OrderStatus) {
		case schema.DeliveredStatus:
			delivered[l.OrderID] = struct{}{}
		case schema.PendingStatus:
			pending[l.OrderID] = struct{}{}
		}
	}
	m.OrderCount = len(orders)
	m.DeliveredCount = len(delivered)
	m.PendingCount = len(pending)
	return m
}
