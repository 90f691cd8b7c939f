package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/compras-dashboard/pkg/currency"
)

func TestFormat_SeparadoresBrasil(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"5", "R$ 5,00"},
		{"999.999", "R$ 1.000,00"},
		{"1234.5", "R$ 1.234,50"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"-1234.56", "R$ -1.234,56"},
		{"100000", "R$ 100.000,00"},
	}
	for _, tc := range cases {
		v := decimal.NullDecimal{Decimal: decimal.RequireFromString(tc.in), Valid: true}
		assert.Equal(t, tc.want, currency.Format(v), "entrada %s", tc.in)
	}
}

func TestFormat_ValorAusente(t *testing.T) {
	assert.Equal(t, "", currency.Format(decimal.NullDecimal{}))
}

func TestFormatter_SimboloPersonalizado(t *testing.T) {
	f := currency.NewFormatter("US$")
	assert.Equal(t, "US$ 12,30", f.FormatDecimal(decimal.RequireFromString("12.3")))

	def := currency.NewFormatter("  ")
	assert.Equal(t, "R$ 1,00", def.FormatDecimal(decimal.NewFromInt(1)))
}
