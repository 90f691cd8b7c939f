// Package currency formatea valores monetarios al estilo brasileño ("R$ 1.234,56").
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol símbolo usado cuando el Formatter no define uno.
const DefaultSymbol = "R$"

// Formatter convierte decimales en texto con separador de miles "." y decimal ",".
type Formatter struct {
	Symbol string
}

// NewFormatter construye un Formatter; símbolo vacío = DefaultSymbol.
func NewFormatter(symbol string) Formatter {
	if strings.TrimSpace(symbol) == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Symbol: symbol}
}

// Format devuelve "" para valores ausentes.
func (f Formatter) Format(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return f.FormatDecimal(v.Decimal)
}

// FormatDecimal formatea siempre con dos decimales, ej: 1234.5 -> "R$ 1.234,50".
func (f Formatter) FormatDecimal(v decimal.Decimal) string {
	symbol := f.Symbol
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return symbol + " " + Number(v)
}

// Number aplica solo el formato numérico (sin símbolo).
func Number(v decimal.Decimal) string {
	fixed := v.Round(2).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// Format usa el símbolo por defecto.
func Format(v decimal.NullDecimal) string {
	return Formatter{Symbol: DefaultSymbol}.Format(v)
}
