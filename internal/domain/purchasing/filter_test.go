package purchasing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
)

func sampleView() purchasing.View {
	a := line("1001", 2024, 1, "Luva", "10", "100")
	b := line("1001", 2024, 1, "Seringa", "5", "50")
	c := line("1002", 2024, 2, "Luva", "3", "30")
	c.Buyer = "bruno"
	c.Situation = "pendente"
	d := line("1003", 2023, 12, "Gaze", "7", "70")
	return viewOf(a, b, c, d)
}

func TestApplyFilters_TodosDevuelveLaEntrada(t *testing.T) {
	v := sampleView()
	for _, f := range []purchasing.Filters{
		{},
		{Year: "all", Month: "all", Buyer: "all", Situation: "all"},
		{Year: "todos", Month: "TODOS", Buyer: " ", Situation: ""},
	} {
		out := purchasing.ApplyFilters(v, f)
		assert.Equal(t, v.Lines(), out.Lines())
	}
}

func TestApplyFilters_ComposicionEquivaleASimultaneo(t *testing.T) {
	v := sampleView()
	dims := []purchasing.Filters{
		{Year: "2024"},
		{Month: "1"},
		{Buyer: "ana"},
		{Situation: "aprovado"},
	}
	merge := func(a, b purchasing.Filters) purchasing.Filters {
		if a.Year == "" {
			a.Year = b.Year
		}
		if a.Month == "" {
			a.Month = b.Month
		}
		if a.Buyer == "" {
			a.Buyer = b.Buyer
		}
		if a.Situation == "" {
			a.Situation = b.Situation
		}
		return a
	}
	for i := range dims {
		for j := range dims {
			if i == j {
				continue
			}
			seq := purchasing.ApplyFilters(purchasing.ApplyFilters(v, dims[i]), dims[j])
			rev := purchasing.ApplyFilters(purchasing.ApplyFilters(v, dims[j]), dims[i])
			both := purchasing.ApplyFilters(v, merge(dims[i], dims[j]))
			assert.Equal(t, both.Lines(), seq.Lines(), "filtros %d+%d", i, j)
			assert.Equal(t, both.Lines(), rev.Lines(), "el orden no debe importar %d+%d", j, i)
		}
	}
}

func TestApplyFilters_MesPorAbreviatura(t *testing.T) {
	v := sampleView()
	byNum := purchasing.ApplyFilters(v, purchasing.Filters{Month: "2"})
	byAbbr := purchasing.ApplyFilters(v, purchasing.Filters{Month: "fev"})
	byEn := purchasing.ApplyFilters(v, purchasing.Filters{Month: "Feb"})

	require.Equal(t, 1, byNum.Len())
	assert.Equal(t, byNum.Lines(), byAbbr.Lines())
	assert.Equal(t, byNum.Lines(), byEn.Lines())
}

func TestApplyFilters_ValoresNoReconocidosDevuelvenVistaVacia(t *testing.T) {
	v := sampleView()
	assert.True(t, purchasing.ApplyFilters(v, purchasing.Filters{Month: "xyz"}).Empty())
	assert.True(t, purchasing.ApplyFilters(v, purchasing.Filters{Month: "13"}).Empty())
	assert.True(t, purchasing.ApplyFilters(v, purchasing.Filters{Year: "dois mil"}).Empty())
}

func TestApplyFilters_PeriodoAusenteEsVistaVaciaValida(t *testing.T) {
	out := purchasing.ApplyFilters(sampleView(), purchasing.Filters{Year: "2030", Month: "5"})
	assert.True(t, out.Empty())
	assert.Equal(t, 0, purchasing.ComputeMetrics(out).OrderCount)
}

func TestApplyFilters_NoModificaLaEntrada(t *testing.T) {
	v := sampleView()
	before := v.Lines()
	_ = purchasing.ApplyFilters(v, purchasing.Filters{Year: "2024", Buyer: "bruno"})
	assert.Equal(t, before, v.Lines())

	lines := v.Lines()
	lines[0].OrderID = "mutado"
	assert.Equal(t, "1001", v.Lines()[0].OrderID, "Lines debe devolver una copia")
}

func TestFilters_Validate(t *testing.T) {
	gross := purchasing.SchemaGross()
	assert.NoError(t, purchasing.Filters{Year: "2024", Month: "jan"}.Validate(gross))
	assert.NoError(t, purchasing.Filters{Buyer: "todos"}.Validate(gross))

	err := purchasing.Filters{Buyer: "ana"}.Validate(gross)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoError(t, purchasing.Filters{Buyer: "ana", Situation: "x"}.Validate(purchasing.SchemaNet()))
}

func TestParseMonth(t *testing.T) {
	cases := map[string]int{"1": 1, "03": 3, "dez": 12, "Mai.": 5, "august": 8, "Março": 3, "out": 10}
	for in, want := range cases {
		got, ok := purchasing.ParseMonth(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "0", "13", "junk", "xx"} {
		_, ok := purchasing.ParseMonth(in)
		assert.False(t, ok, in)
	}
	assert.Equal(t, "jan", purchasing.MonthLabel(1))
	assert.Equal(t, "", purchasing.MonthLabel(0))
	assert.Equal(t, "", purchasing.MonthLabel(13))
}

func TestOptions_ValoresOrdenados(t *testing.T) {
	opts := purchasing.Options(sampleView())
	assert.Equal(t, []int{2023, 2024}, opts.Years)
	assert.Equal(t, []int{1, 2, 12}, opts.Months)
	assert.Equal(t, []string{"ana", "bruno"}, opts.Buyers)
	assert.Equal(t, []string{"aprovado", "pendente"}, opts.Situations)

	gross := purchasing.NewDataset("g", purchasing.SchemaGross(), []entity.OrderLine{line("1", 2024, 1, "x", "1", "1")}, nil)
	assert.Empty(t, purchasing.Options(gross.View()).Buyers, "la variante bruta no expone comprador")
}
