package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/compras-dashboard/internal/application/dto"
)

// ReportUseCase exporta el resumen filtrado del dashboard como PDF.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(dashboard *DashboardUseCase, generator ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator}
}

// DownloadSummaryPDF calcula el resumen con los filtros dados y lo renderiza.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrInvalidInput     si algún filtro no aplica a la variante del snapshot.
func (uc *ReportUseCase) DownloadSummaryPDF(
	ctx context.Context,
	req dto.DashboardFilterRequest,
) (pdfBytes []byte, filename string, err error) {
	summary, err := uc.dashboard.GetSummary(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: resumen: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateDashboardPDF(ctx, summary)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("compras_%s_%s.pdf", summary.Filters.Year, summary.Filters.Month)
	return pdfBytes, filename, nil
}
