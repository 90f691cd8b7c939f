package repository

import (
	"context"

	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
)

// LoadReport resumen de la carga del snapshot.
type LoadReport struct {
	Rows           int      // filas leídas (sin encabezado)
	Loaded         int      // líneas incorporadas al dataset
	Skipped        int      // filas descartadas (sin año/mes determinable o sin pedido)
	Warnings       []string // problemas por fila, truncado a MaxWarnings
	MissingColumns []string // columnas esperadas que no existen en el origen
}

// MaxWarnings tope de avisos retenidos en el reporte.
const MaxWarnings = 50

// Warn agrega un aviso respetando el tope.
func (r *LoadReport) Warn(msg string) {
	if len(r.Warnings) < MaxWarnings {
		r.Warnings = append(r.Warnings, msg)
	}
}

// OrderLineSource carga el snapshot inmutable de líneas de pedido.
// Las implementaciones son read-only y se invocan una vez por sesión.
type OrderLineSource interface {
	Load(ctx context.Context) (*purchasing.Dataset, LoadReport, error)
}
