package purchasing_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
)

func supplierLine(supplier, value string) entity.OrderLine {
	l := line(supplier, 2024, 1, "x", "1", value)
	l.Supplier = supplier
	return l
}

func TestTopSuppliers_EmpatesDeterministas(t *testing.T) {
	v := viewOf(supplierLine("C", "50"), supplierLine("B", "100"), supplierLine("A", "60"), supplierLine("A", "40"))

	top, err := purchasing.TopSuppliers(v, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Supplier)
	assert.Equal(t, "B", top[1].Supplier)
	assert.True(t, top[0].Total.Equal(dec("100")))
	assert.True(t, top[1].Total.Equal(dec("100")))
}

func TestTopSuppliers_OrdenDescendenteYLimite(t *testing.T) {
	var lines []entity.OrderLine
	for i, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		lines = append(lines, supplierLine(s, strconv.Itoa((i%9+1)*10)))
	}
	top, err := purchasing.TopSuppliers(viewOf(lines...), 0)
	require.NoError(t, err)
	assert.Len(t, top, purchasing.DefaultTopN)
	for i := 1; i < len(top); i++ {
		assert.True(t, top[i-1].Total.GreaterThanOrEqual(top[i].Total))
	}
}

func TestTopSuppliers_SinDatos(t *testing.T) {
	_, err := purchasing.TopSuppliers(viewOf(), 10)
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestTopSuppliers_ColumnasFaltantes(t *testing.T) {
	ds := purchasing.NewDataset("x", purchasing.SchemaGross(),
		[]entity.OrderLine{supplierLine("A", "1")},
		[]purchasing.Field{purchasing.FieldOrderID, purchasing.FieldSupplier, purchasing.FieldNetValue})
	_, err := purchasing.TopSuppliers(ds.View(), 10)
	assert.ErrorIs(t, err, domain.ErrMissingColumns, "la variante bruta necesita el valor bruto")
}

func TestPendingLines(t *testing.T) {
	a := line("1", 2024, 1, "x", "1", "1")
	b := line("2", 2024, 1, "x", "1", "1")
	b.OrderStatus = " entrega pendente "
	pending := purchasing.PendingLines(viewOf(a, b))
	require.Len(t, pending, 1)
	assert.Equal(t, "2", pending[0].OrderID)
}
