package purchasing_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func price(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

// line construye una línea mínima; el resto de campos se ajusta en cada test.
func line(orderID string, year, month int, product, qty, value string) entity.OrderLine {
	return entity.OrderLine{
		OrderID:            orderID,
		Year:               year,
		Month:              month,
		Supplier:           "Fornecedor " + orderID,
		Buyer:              "ana",
		ProductDescription: product,
		OrderStatus:        purchasing.StatusReceived,
		Situation:          "aprovado",
		ItemQuantity:       dec(qty),
		GrossValue:         dec(value),
		NetValue:           dec(value),
	}
}

func viewOf(lines ...entity.OrderLine) purchasing.View {
	return purchasing.NewDataset("test", purchasing.SchemaNet(), lines, nil).View()
}
