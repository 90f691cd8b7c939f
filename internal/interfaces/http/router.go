package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/compras-dashboard/internal/application/analytics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
}

// Router registra las rutas de la API. No hay autenticación: el dashboard es de solo lectura.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	dashboard := api.Group("/dashboard")
	h := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", h.GetSummary)
	dashboard.Get("/metrics", h.GetMetrics)
	dashboard.Get("/lines", h.ListLines)
	dashboard.Get("/pending", h.GetPending)
	dashboard.Get("/suppliers/top", h.GetTopSuppliers)
	dashboard.Get("/comparison", h.GetComparison)
	dashboard.Get("/overdue", h.GetOverdue)
	dashboard.Get("/filters", h.GetFilterOptions)
	dashboard.Get("/report.pdf", h.DownloadReportPDF)
}
