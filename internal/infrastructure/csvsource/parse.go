package csvsource

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseDecimal acepta "1234.56", "1.234,56", "1,234.56", "R$ 1.234,56" y "12,5".
// Con ambos separadores, el último es el decimal. Una sola coma es decimal (exporte BR);
// separadores repetidos solo valen como agrupación de miles.
// ok=false para celdas vacías o ilegibles.
func parseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" || strings.EqualFold(s, "nan") {
		return decimal.Zero, false
	}

	lastComma, lastDot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	var intPart, fracPart, group string
	switch {
	case lastComma >= 0 && lastDot >= 0:
		sep := lastComma
		group = "."
		if lastDot > lastComma {
			sep, group = lastDot, ","
		}
		intPart, fracPart = s[:sep], s[sep+1:]
	case lastComma >= 0 && strings.Count(s, ",") == 1:
		intPart, fracPart = s[:lastComma], s[lastComma+1:]
	case lastComma >= 0:
		intPart, group = s, ","
	case lastDot >= 0 && strings.Count(s, ".") > 1:
		intPart, group = s, "."
	default:
		intPart = s
		if lastDot >= 0 {
			intPart, fracPart = s[:lastDot], s[lastDot+1:]
		}
	}

	if strings.ContainsAny(fracPart, ",.") {
		return decimal.Zero, false
	}
	if group != "" {
		var ok bool
		if intPart, ok = ungroup(intPart, group); !ok {
			return decimal.Zero, false
		}
	}

	num := intPart
	if fracPart != "" {
		num += "." + fracPart
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ungroup quita los separadores de miles validando grupos de tres dígitos.
func ungroup(s, sep string) (string, bool) {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	parts := strings.Split(s, sep)
	if len(parts[0]) == 0 || len(parts[0]) > 3 {
		return "", false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return "", false
		}
	}
	return sign + strings.Join(parts, ""), true
}

// parseInt acepta enteros y flotantes exactos ("2024", "2024.0").
func parseInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	d, ok := parseDecimal(s)
	if !ok || !d.Equal(d.Truncate(0)) {
		return 0, false
	}
	return int(d.IntPart()), true
}
