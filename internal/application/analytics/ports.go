package analytics

import (
	"context"

	"github.com/jhoicas/compras-dashboard/internal/application/dto"
)

// ReportPDFGenerator define el contrato para exportar el resumen del dashboard a PDF.
// La implementación concreta vive en infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, summary *dto.DashboardSummaryDTO) ([]byte, error)
}
