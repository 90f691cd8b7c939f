package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/compras-dashboard/internal/application/analytics"
	"github.com/jhoicas/compras-dashboard/internal/application/dto"
	"github.com/jhoicas/compras-dashboard/internal/domain"
)

// DashboardHandler maneja los endpoints del dashboard de compras.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	report *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, report *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// GetSummary godoc
// @Summary      Resumen completo del dashboard
// @Description  Métricas, pedidos pendientes, top proveedores, comparativo mensual y atrasados
//
//	para los filtros indicados. Las secciones sin datos vienen con available=false.
//
// @Tags         dashboard
// @Produce      json
// @Param        year       query  string  false  "Año (ej: 2024) o 'all'"
// @Param        month      query  string  false  "Mes: número o abreviatura (jan, fev, ...) o 'all'"
// @Param        buyer      query  string  false  "Usuario comprador o 'all'"
// @Param        situation  query  string  false  "Situación del pedido o 'all'"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return badParams(c)
	}
	summary, err := h.uc.GetSummary(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetMetrics godoc
// @Summary      Las cinco métricas del dashboard
// @Tags         dashboard
// @Produce      json
// @Param        year       query  string  false  "Año o 'all'"
// @Param        month      query  string  false  "Mes o 'all'"
// @Param        buyer      query  string  false  "Usuario o 'all'"
// @Param        situation  query  string  false  "Situación o 'all'"
// @Success      200  {object}  dto.MetricsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return badParams(c)
	}
	m, err := h.uc.GetMetrics(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(m)
}

// ListLines godoc
// @Summary      Tabla filtrada de líneas de pedido
// @Tags         dashboard
// @Produce      json
// @Param        year    query  string  false  "Año o 'all'"
// @Param        month   query  string  false  "Mes o 'all'"
// @Param        limit   query  int     false  "Tamaño de página (default 50, max 500)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.OrderLinesDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/lines [get]
func (h *DashboardHandler) ListLines(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return badParams(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badParams(c)
	}
	lines, err := h.uc.ListLines(c.Context(), req, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(lines)
}

// GetPending godoc
// @Summary      Pedidos con entrega pendiente
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.PendingOrdersDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/pending [get]
func (h *DashboardHandler) GetPending(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return badParams(c)
	}
	p, err := h.uc.GetPending(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// GetTopSuppliers godoc
// @Summary      Ranking de proveedores por valor total
// @Tags         dashboard
// @Produce      json
// @Param        n  query  int  false  "Tamaño del ranking (default configurado, 10)"
// @Success      200  {object}  dto.TopSuppliersDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/suppliers/top [get]
func (h *DashboardHandler) GetTopSuppliers(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return badParams(c)
	}
	n := c.QueryInt("n", 0)
	if n < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "n debe ser mayor o igual a cero",
		})
	}
	top, err := h.uc.GetTopSuppliers(c.Context(), req, n)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(top)
}

// GetComparison godoc
// @Summary      Comparativo mes actual vs mes anterior por producto
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ComparisonDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/comparison [get]
func (h *DashboardHandler) GetComparison(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return badParams(c)
	}
	cmp, err := h.uc.GetComparison(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cmp)
}

// GetOverdue godoc
// @Summary      Pedidos atrasados (entrega prevista vencida sin llegada)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.OverdueDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/overdue [get]
func (h *DashboardHandler) GetOverdue(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return badParams(c)
	}
	o, err := h.uc.GetOverdue(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(o)
}

// GetFilterOptions godoc
// @Summary      Valores disponibles para los filtros
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.FilterOptionsDTO
// @Router       /api/dashboard/filters [get]
func (h *DashboardHandler) GetFilterOptions(c *fiber.Ctx) error {
	opts, err := h.uc.GetFilterOptions(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(opts)
}

// DownloadReportPDF godoc
// @Summary      Exporta el resumen filtrado en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) DownloadReportPDF(c *fiber.Ctx) error {
	req, err := parseFilters(c)
	if err != nil {
		return badParams(c)
	}
	b, filename, err := h.report.DownloadSummaryPDF(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// parseFilters lee year/month/buyer/situation de la query.
func parseFilters(c *fiber.Ctx) (dto.DashboardFilterRequest, error) {
	var req dto.DashboardFilterRequest
	err := c.QueryParser(&req)
	return req, err
}

func badParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}

// writeError traduce errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNoData):
		return c.Status(fiber.StatusOK).JSON(dto.SectionStatus{Message: err.Error()})
	case errors.Is(err, domain.ErrMissingColumns):
		return c.Status(fiber.StatusOK).JSON(dto.SectionStatus{Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
