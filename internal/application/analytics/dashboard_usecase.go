// Package analytics contiene los casos de uso del dashboard de compras: aplica los
// filtros del usuario sobre el snapshot y arma las secciones (métricas, pendientes,
// ranking de proveedores, comparativo mensual y atrasos).
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/compras-dashboard/internal/application/dto"
	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
	"github.com/jhoicas/compras-dashboard/pkg/currency"
	"github.com/jhoicas/compras-dashboard/pkg/logger"
)

// DashboardConfig parámetros de presentación del caso de uso.
type DashboardConfig struct {
	TopN           int            // tamaño del ranking de proveedores por defecto
	CurrencySymbol string         // "R$" por defecto
	Location       *time.Location // zona para calcular "hoy"; nil = UTC
}

// DashboardUseCase calcula las secciones del dashboard sobre un snapshot inmutable.
//
// Cada petición recalcula todo a partir del snapshot; no hay estado mutable compartido,
// por lo que el caso de uso es seguro para peticiones concurrentes.
type DashboardUseCase struct {
	dataset   *purchasing.Dataset
	formatter currency.Formatter
	topN      int
	loc       *time.Location
	now       func() time.Time
	log       *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dataset *purchasing.Dataset, cfg DashboardConfig, log *logger.Logger) *DashboardUseCase {
	if cfg.TopN <= 0 {
		cfg.TopN = purchasing.DefaultTopN
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{
		dataset:   dataset,
		formatter: currency.NewFormatter(cfg.CurrencySymbol),
		topN:      cfg.TopN,
		loc:       cfg.Location,
		now:       time.Now,
		log:       log.Component("dashboard"),
	}
}

// WithClock reemplaza el reloj usado para "hoy" (tests y CLI --today).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	cp := *uc
	cp.now = now
	return &cp
}

// SnapshotID identificador del snapshot en uso.
func (uc *DashboardUseCase) SnapshotID() string { return uc.dataset.ID() }

// today fecha de referencia para la clasificación de atrasos.
func (uc *DashboardUseCase) today() time.Time { return uc.now().In(uc.loc) }

// view valida los filtros contra la variante del snapshot y los aplica.
func (uc *DashboardUseCase) view(req dto.DashboardFilterRequest) (purchasing.View, error) {
	f := purchasing.Filters{Year: req.Year, Month: req.Month, Buyer: req.Buyer, Situation: req.Situation}
	if err := f.Validate(uc.dataset.Schema()); err != nil {
		return purchasing.View{}, err
	}
	return purchasing.ApplyFilters(uc.dataset.View(), f), nil
}

// sectionResult resultado de una sección calculada en una goroutine.
type sectionResult[T any] struct {
	value T
	err   error
}

// GetSummary construye el resumen completo para los filtros indicados.
//
// Las secciones son independientes y leen la misma vista inmutable; se calculan en paralelo:
//  1. Métricas
//  2. Pedidos pendientes
//  3. Top-N proveedores
//  4. Comparativo mes actual vs anterior
//  5. Pedidos atrasados
func (uc *DashboardUseCase) GetSummary(ctx context.Context, req dto.DashboardFilterRequest) (*dto.DashboardSummaryDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := uc.view(req)
	if err != nil {
		return nil, err
	}

	metricsCh := make(chan dto.MetricsDTO, 1)
	pendingCh := make(chan dto.PendingOrdersDTO, 1)
	suppliersCh := make(chan sectionResult[dto.TopSuppliersDTO], 1)
	comparisonCh := make(chan sectionResult[dto.ComparisonDTO], 1)
	overdueCh := make(chan sectionResult[dto.OverdueDTO], 1)

	go func() { metricsCh <- uc.metrics(v) }()
	go func() { pendingCh <- uc.pending(v) }()
	go func() {
		s, err := uc.topSuppliers(v, uc.topN)
		suppliersCh <- sectionResult[dto.TopSuppliersDTO]{s, err}
	}()
	go func() {
		c, err := uc.comparison(v)
		comparisonCh <- sectionResult[dto.ComparisonDTO]{c, err}
	}()
	go func() {
		o, err := uc.overdue(v)
		overdueCh <- sectionResult[dto.OverdueDTO]{o, err}
	}()

	metrics := <-metricsCh
	pending := <-pendingCh
	suppliers := <-suppliersCh
	comparison := <-comparisonCh
	overdue := <-overdueCh

	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: top proveedores: %w", suppliers.err)
	}
	if comparison.err != nil {
		return nil, fmt.Errorf("dashboard: comparativo: %w", comparison.err)
	}
	if overdue.err != nil {
		return nil, fmt.Errorf("dashboard: atrasados: %w", overdue.err)
	}

	uc.log.Debug().
		Str("year", req.Year).Str("month", req.Month).
		Int("lines", v.Len()).
		Int("orders", metrics.OrderCount).
		Msg("resumen calculado")

	return &dto.DashboardSummaryDTO{
		SnapshotID:   uc.dataset.ID(),
		Filters:      filtersDTO(req),
		Metrics:      metrics,
		Pending:      pending,
		TopSuppliers: suppliers.value,
		Comparison:   comparison.value,
		Overdue:      overdue.value,
	}, nil
}

// GetMetrics devuelve solo las cinco métricas.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context, req dto.DashboardFilterRequest) (*dto.MetricsDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := uc.view(req)
	if err != nil {
		return nil, err
	}
	m := uc.metrics(v)
	return &m, nil
}

// ListLines devuelve una página de la tabla filtrada de líneas.
func (uc *DashboardUseCase) ListLines(ctx context.Context, req dto.DashboardFilterRequest, page dto.PageRequest) (*dto.OrderLinesDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := uc.view(req)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()

	lines := v.Lines()
	total := len(lines)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)

	items := make([]dto.OrderLineDTO, 0, end-start)
	for _, l := range lines[start:end] {
		items = append(items, uc.lineDTO(v, l))
	}
	return &dto.OrderLinesDTO{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetPending devuelve la tabla de pedidos con entrega pendiente.
func (uc *DashboardUseCase) GetPending(ctx context.Context, req dto.DashboardFilterRequest) (*dto.PendingOrdersDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := uc.view(req)
	if err != nil {
		return nil, err
	}
	p := uc.pending(v)
	return &p, nil
}

// GetTopSuppliers devuelve el ranking; n <= 0 usa el valor configurado.
func (uc *DashboardUseCase) GetTopSuppliers(ctx context.Context, req dto.DashboardFilterRequest, n int) (*dto.TopSuppliersDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := uc.view(req)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = uc.topN
	}
	s, err := uc.topSuppliers(v, n)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetComparison devuelve el comparativo mensual sobre la vista filtrada.
func (uc *DashboardUseCase) GetComparison(ctx context.Context, req dto.DashboardFilterRequest) (*dto.ComparisonDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := uc.view(req)
	if err != nil {
		return nil, err
	}
	c, err := uc.comparison(v)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOverdue devuelve los pedidos atrasados a la fecha de hoy.
func (uc *DashboardUseCase) GetOverdue(ctx context.Context, req dto.DashboardFilterRequest) (*dto.OverdueDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := uc.view(req)
	if err != nil {
		return nil, err
	}
	o, err := uc.overdue(v)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetFilterOptions valores disponibles para los selectores (sobre el snapshot completo).
func (uc *DashboardUseCase) GetFilterOptions(ctx context.Context) (*dto.FilterOptionsDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := purchasing.Options(uc.dataset.View())
	months := make([]dto.MonthOptionDTO, 0, len(opts.Months))
	for _, m := range opts.Months {
		months = append(months, dto.MonthOptionDTO{Value: m, Label: purchasing.MonthLabel(m)})
	}
	return &dto.FilterOptionsDTO{
		Years:      opts.Years,
		Months:     months,
		Buyers:     nonNil(opts.Buyers),
		Situations: nonNil(opts.Situations),
	}, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (uc *DashboardUseCase) metrics(v purchasing.View) dto.MetricsDTO {
	m := purchasing.ComputeMetrics(v)
	return dto.MetricsDTO{
		OrderCount:      m.OrderCount,
		TotalValue:      m.TotalValue.Round(2),
		TotalValueLabel: uc.formatter.FormatDecimal(m.TotalValue),
		TotalItems:      m.TotalItems,
		DeliveredCount:  m.DeliveredCount,
		PendingCount:    m.PendingCount,
	}
}

func (uc *DashboardUseCase) pending(v purchasing.View) dto.PendingOrdersDTO {
	lines := purchasing.PendingLines(v)
	out := dto.PendingOrdersDTO{Items: make([]dto.PendingOrderDTO, 0, len(lines))}
	if len(lines) == 0 {
		out.Message = "no hay pedidos con entrega pendiente"
		return out
	}
	out.Available = true
	for _, l := range lines {
		out.Items = append(out.Items, dto.PendingOrderDTO{
			OrderID:              l.OrderID,
			IssueDate:            l.IssueDate.String(),
			ExpectedDeliveryDate: l.ExpectedDeliveryDate.String(),
			Supplier:             l.Supplier,
			ItemQuantity:         l.ItemQuantity,
			Value:                uc.formatter.FormatDecimal(v.Value(l)),
		})
	}
	return out
}

func (uc *DashboardUseCase) topSuppliers(v purchasing.View, n int) (dto.TopSuppliersDTO, error) {
	out := dto.TopSuppliersDTO{N: n, Items: []dto.SupplierRankDTO{}}
	ranking, err := purchasing.TopSuppliers(v, n)
	if err != nil {
		status, err := sectionFromError(err)
		out.SectionStatus = status
		return out, err
	}
	out.Available = true
	for i, r := range ranking {
		out.Items = append(out.Items, dto.SupplierRankDTO{
			Rank:            i + 1,
			Supplier:        r.Supplier,
			TotalValue:      r.Total.Round(2),
			TotalValueLabel: uc.formatter.FormatDecimal(r.Total),
		})
	}
	return out, nil
}

func (uc *DashboardUseCase) comparison(v purchasing.View) (dto.ComparisonDTO, error) {
	out := dto.ComparisonDTO{Rows: []dto.ComparisonRowDTO{}}
	cmp, err := purchasing.ComparePeriods(v)
	if err != nil {
		status, err := sectionFromError(err)
		out.SectionStatus = status
		return out, err
	}
	out.Available = true
	out.CurrentPeriod = cmp.Current.Label()
	out.PreviousPeriod = cmp.Previous.Label()
	out.PricesAvailable = cmp.PricesAvailable
	for _, r := range cmp.Rows {
		out.Rows = append(out.Rows, dto.ComparisonRowDTO{
			Product:          r.Product,
			PreviousQuantity: r.PreviousQuantity,
			CurrentQuantity:  r.CurrentQuantity,
			PreviousPrice:    r.PreviousPrice.Round(2),
			CurrentPrice:     r.CurrentPrice.Round(2),
			VariationPct:     r.VariationPct,
		})
	}
	return out, nil
}

func (uc *DashboardUseCase) overdue(v purchasing.View) (dto.OverdueDTO, error) {
	today := uc.today()
	out := dto.OverdueDTO{Today: today.Format("2006-01-02"), OrderIDs: []string{}, Items: []dto.OrderLineDTO{}}

	lines, err := purchasing.OverdueLines(v, today)
	if err != nil {
		status, err := sectionFromError(err)
		out.SectionStatus = status
		return out, err
	}
	ids, err := purchasing.FindOverdue(v, today)
	if err != nil {
		return out, err
	}
	out.Available = true
	out.OrderIDs = ids
	for _, l := range lines {
		out.Items = append(out.Items, uc.lineDTO(v, l))
	}
	if len(ids) == 0 {
		out.Message = "no hay pedidos atrasados"
	}
	return out, nil
}

// sectionFromError traduce "sin datos" y "columnas faltantes" a un estado de sección;
// cualquier otro error se propaga.
func sectionFromError(err error) (dto.SectionStatus, error) {
	switch {
	case errors.Is(err, domain.ErrNoData):
		return dto.SectionStatus{Message: domain.ErrNoData.Error()}, nil
	case errors.Is(err, domain.ErrMissingColumns):
		return dto.SectionStatus{Message: err.Error()}, nil
	}
	return dto.SectionStatus{}, err
}

func filtersDTO(req dto.DashboardFilterRequest) dto.FiltersDTO {
	orAll := func(s string) string {
		if s == "" {
			return purchasing.All
		}
		return s
	}
	return dto.FiltersDTO{
		Year:      orAll(req.Year),
		Month:     orAll(req.Month),
		Buyer:     orAll(req.Buyer),
		Situation: orAll(req.Situation),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
