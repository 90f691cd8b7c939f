package csvsource

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDecimal_Formatos(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"R$ 1.234,56", "1234.56"},
		{"12,5", "12.5"},
		{"1.234.567", "1234567"},
		{"1,234,567", "1234567"},
		{"1.234.567,8", "1234567.8"},
		{"-1.234,50", "-1234.5"},
		{"2024.0", "2024"},
	}
	for _, tc := range cases {
		d, ok := parseDecimal(tc.raw)
		if assert.True(t, ok, tc.raw) {
			assert.True(t, d.Equal(decimal.RequireFromString(tc.want)), "%s -> %s", tc.raw, d)
		}
	}
}

func TestParseDecimal_Ilegibles(t *testing.T) {
	for _, raw := range []string{"", "nan", "abc", "1,23,4.5", "1.2.3", "12,34,5", "1.234,5.6", "1,2.3,4"} {
		_, ok := parseDecimal(raw)
		assert.False(t, ok, raw)
	}
}
