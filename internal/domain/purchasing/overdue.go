package purchasing

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
)

var overdueFields = []Field{FieldOrderID, FieldExpectedDate, FieldArrivalDate}

// IsOverdue línea con entrega prevista anterior a today y sin fecha de llegada.
// Una fecha prevista inválida o una llegada ilegible excluyen la línea.
func IsOverdue(l entity.OrderLine, today time.Time) bool {
	return l.ArrivalDate.Absent() && l.ExpectedDeliveryDate.Before(today)
}

// OverdueLines líneas atrasadas de la vista, en el orden original.
func OverdueLines(v View, today time.Time) ([]entity.OrderLine, error) {
	if missing := v.MissingFields(overdueFields...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingColumns, missing)
	}
	return v.where(func(l entity.OrderLine) bool { return IsOverdue(l, today) }).lines, nil
}

// FindOverdue pedidos distintos con al menos una línea atrasada, ordenados.
// today se inyecta; el clasificador no lee el reloj del sistema.
func FindOverdue(v View, today time.Time) ([]string, error) {
	lines, err := OverdueLines(v, today)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.OrderID]; ok {
			continue
		}
		seen[l.OrderID] = struct{}{}
		ids = append(ids, l.OrderID)
	}
	sort.Strings(ids)
	return ids, nil
}
