package purchasing

import (
	"strings"

	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
)

// PendingLines líneas con estado de entrega pendiente, en el orden original.
func PendingLines(v View) []entity.OrderLine {
	status := v.Schema().PendingStatus
	return v.where(func(l entity.OrderLine) bool {
		return strings.TrimSpace(l.OrderStatus) == status
	}).lines
}
