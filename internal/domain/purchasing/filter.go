package purchasing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
)

// All valor que desactiva un criterio de filtro.
const All = "all"

// Filters criterios del dashboard; cada uno es opcional ("", "all" o "todos" = sin restricción).
type Filters struct {
	Year      string
	Month     string
	Buyer     string
	Situation string
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, All) || strings.EqualFold(s, "todos")
}

// Validate rechaza criterios sobre dimensiones que la variante no expone.
func (f Filters) Validate(s Schema) error {
	checks := []struct {
		dim   Dimension
		value string
	}{
		{DimensionYear, f.Year},
		{DimensionMonth, f.Month},
		{DimensionBuyer, f.Buyer},
		{DimensionSituation, f.Situation},
	}
	for _, c := range checks {
		if !isAll(c.value) && !s.HasDimension(c.dim) {
			return fmt.Errorf("%w: filtro %q no disponible en la variante %q", domain.ErrInvalidInput, c.dim, s.Name)
		}
	}
	return nil
}

// ApplyFilters aplica los criterios como AND lógico y devuelve una vista nueva.
// Un año no numérico o un mes no reconocido no producen error: la vista resultante queda vacía.
func ApplyFilters(v View, f Filters) View {
	var preds []func(entity.OrderLine) bool

	if !isAll(f.Year) {
		year, err := strconv.Atoi(strings.TrimSpace(f.Year))
		if err != nil {
			return v.where(func(entity.OrderLine) bool { return false })
		}
		preds = append(preds, func(l entity.OrderLine) bool { return l.Year == year })
	}
	if !isAll(f.Month) {
		month, ok := ParseMonth(f.Month)
		if !ok {
			return v.where(func(entity.OrderLine) bool { return false })
		}
		preds = append(preds, func(l entity.OrderLine) bool { return l.Month == month })
	}
	if !isAll(f.Buyer) {
		buyer := strings.TrimSpace(f.Buyer)
		preds = append(preds, func(l entity.OrderLine) bool { return strings.TrimSpace(l.Buyer) == buyer })
	}
	if !isAll(f.Situation) {
		situation := strings.TrimSpace(f.Situation)
		preds = append(preds, func(l entity.OrderLine) bool { return strings.TrimSpace(l.Situation) == situation })
	}

	if len(preds) == 0 {
		return v.where(func(entity.OrderLine) bool { return true })
	}
	return v.where(func(l entity.OrderLine) bool {
		for _, p := range preds {
			if !p(l) {
				return false
			}
		}
		return true
	})
}
