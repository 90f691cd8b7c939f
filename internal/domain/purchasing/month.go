package purchasing

import (
	"strconv"
	"strings"
)

// monthAbbrevs etiquetas cortas (pt-BR) indexadas por mes-1.
var monthAbbrevs = [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// monthAliases abreviaturas en inglés que difieren de las de pt-BR y nombres completos.
var monthAliases = map[string]int{
	"feb": 2, "apr": 4, "may": 5, "aug": 8, "sep": 9, "oct": 10, "dec": 12,
	"janeiro": 1, "fevereiro": 2, "março": 3, "marco": 3, "abril": 4, "maio": 5, "junho": 6,
	"julho": 7, "agosto": 8, "setembro": 9, "outubro": 10, "novembro": 11, "dezembro": 12,
	"january": 1, "february": 2, "march": 3, "april": 4, "june": 6, "july": 7,
	"august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
}

// ParseMonth acepta "3", "03", "mar", "Mar." o "march". ok=false si no se reconoce.
func ParseMonth(s string) (int, bool) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 1 && n <= 12
	}
	for i, abbr := range monthAbbrevs {
		if abbr == s {
			return i + 1, true
		}
	}
	if m, ok := monthAliases[s]; ok {
		return m, true
	}
	return 0, false
}

// MonthLabel etiqueta corta del mes; "" para valores fuera de 1..12.
func MonthLabel(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthAbbrevs[m-1]
}
