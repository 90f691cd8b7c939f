package purchasing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
)

func TestComputeMetrics_ConteoDistintoDePedidos(t *testing.T) {
	v := viewOf(
		line("A", 2024, 1, "x", "1", "10"),
		line("A", 2024, 1, "y", "2", "20"),
		line("B", 2024, 1, "z", "3", "30"),
	)
	assert.Equal(t, 2, purchasing.ComputeMetrics(v).OrderCount, "dos líneas del mismo pedido cuentan una vez")
}

func TestComputeMetrics_VistaVacia(t *testing.T) {
	m := purchasing.ComputeMetrics(viewOf())
	assert.Equal(t, 0, m.OrderCount)
	assert.True(t, m.TotalValue.IsZero())
	assert.True(t, m.TotalItems.IsZero())
	assert.Equal(t, 0, m.DeliveredCount)
	assert.Equal(t, 0, m.PendingCount)
}

func TestComputeMetrics_EstadosIndependientes(t *testing.T) {
	a := line("1", 2024, 1, "x", "1", "10")
	b := line("2", 2024, 1, "x", "1", "10")
	b.OrderStatus = purchasing.StatusDeliveryPending
	c := line("3", 2024, 1, "x", "1", "10")
	c.OrderStatus = "cancelado"

	m := purchasing.ComputeMetrics(viewOf(a, b, c))
	assert.Equal(t, 3, m.OrderCount)
	assert.Equal(t, 1, m.DeliveredCount)
	assert.Equal(t, 1, m.PendingCount, "un estado desconocido no entra en ninguna de las dos cuentas")
}

func TestComputeMetrics_BaseDeValor(t *testing.T) {
	l := line("1", 2024, 1, "x", "4", "0")
	l.GrossValue = dec("120.50")
	l.NetValue = dec("100.25")
	lines := []entity.OrderLine{l}

	gross := purchasing.NewDataset("g", purchasing.SchemaGross(), lines, nil).View()
	net := purchasing.NewDataset("n", purchasing.SchemaNet(), lines, nil).View()

	assert.True(t, purchasing.ComputeMetrics(gross).TotalValue.Equal(dec("120.50")))
	assert.True(t, purchasing.ComputeMetrics(net).TotalValue.Equal(dec("100.25")))
	assert.True(t, purchasing.ComputeMetrics(net).TotalItems.Equal(dec("4")))
}

// Escenario completo: 2 líneas del pedido 1001 (ene/2024, recibido) y 1 línea del
// 1002 (feb/2024, pendiente); filtro year=2024, month=all.
func TestComputeMetrics_EscenarioCompleto(t *testing.T) {
	schema := purchasing.SchemaNet()
	schema.DeliveredStatus = "received"
	schema.PendingStatus = "delivery pending"

	a := line("1001", 2024, 1, "Luva", "2", "20")
	a.OrderStatus = "received"
	b := line("1001", 2024, 1, "Gaze", "1", "5")
	b.OrderStatus = "received"
	c := line("1002", 2024, 2, "Luva", "4", "40")
	c.OrderStatus = "delivery pending"

	ds := purchasing.NewDataset("e2e", schema, []entity.OrderLine{a, b, c}, nil)
	v := purchasing.ApplyFilters(ds.View(), purchasing.Filters{Year: "2024", Month: "all"})
	m := purchasing.ComputeMetrics(v)

	assert.Equal(t, 2, m.OrderCount)
	assert.Equal(t, 1, m.DeliveredCount)
	assert.Equal(t, 1, m.PendingCount)
	assert.True(t, m.TotalValue.Equal(dec("65")))
	assert.True(t, m.TotalItems.Equal(dec("7")))
}
