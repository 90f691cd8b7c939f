// Package pdf exporta el resumen del dashboard de compras a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros aplicados   │  Fecha de referencia │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Pedidos | Valor | Itens | Recebidos | Pendentes   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP FORNECEDORES: # | Fornecedor | Valor                    │
//	│  COMPARATIVO: Produto | Qtd ant | Qtd atual | Preço | Var%   │
//	│  PENDENTES: Pedido | Emissão | Prevista | Fornecedor | Valor │
//	│  ATRASADOS: lista de pedidos                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: snapshot id                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/compras-dashboard/internal/application/analytics"
	"github.com/jhoicas/compras-dashboard/internal/application/dto"
	"github.com/jhoicas/compras-dashboard/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// maxTableRows limita las tablas largas (pendientes, comparativo) en el PDF.
const maxTableRows = 40

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

var _ analytics.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador; title vacío usa el título por defecto.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	if strings.TrimSpace(title) == "" {
		title = "Dashboard de Compras"
	}
	return &MarotoReportGenerator{title: title}
}

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardPDF(ctx context.Context, s *dto.DashboardSummaryDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(s.Metrics))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(suppliersRows(s.TopSuppliers)...)
	m.AddRows(comparisonRows(s.Comparison)...)
	m.AddRows(pendingRows(s.Pending)...)
	m.AddRows(overdueRows(s.Overdue)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Snapshot: "+s.SnapshotID, props.Text{Size: 6.5, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + filtros (izq) y fecha de referencia de atrasos (der).
func headerRow(title string, s *dto.DashboardSummaryDTO) core.Row {
	f := s.Filters
	filters := fmt.Sprintf("Ano: %s   |   Mês: %s   |   Usuário: %s   |   Situação: %s",
		f.Year, f.Month, f.Buyer, f.Situation)

	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filters, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Referência: "+s.Overdue.Today, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// metricsRow: las cinco tarjetas en una fila.
func metricsRow(m dto.MetricsDTO) core.Row {
	card := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		card("Pedidos", fmt.Sprint(m.OrderCount), 2),
		card("Valor total", m.TotalValueLabel, 4),
		card("Itens", m.TotalItems.String(), 2),
		card("Recebidos", fmt.Sprint(m.DeliveredCount), 2),
		card("Pendentes", fmt.Sprint(m.PendingCount), 2),
	)
}

func suppliersRows(s dto.TopSuppliersDTO) []core.Row {
	rows := []core.Row{sectionTitle(fmt.Sprintf("Top %d fornecedores", s.N))}
	if !s.Available {
		return append(rows, unavailableRow(s.Message))
	}
	rows = append(rows, tableHeader([]string{"#", "Fornecedor", "Valor"}, []int{1, 8, 3}))
	for _, it := range s.Items {
		rows = append(rows, tableRow([]string{fmt.Sprint(it.Rank), it.Supplier, it.TotalValueLabel}, []int{1, 8, 3}))
	}
	return rows
}

func comparisonRows(c dto.ComparisonDTO) []core.Row {
	title := "Comparativo mensal"
	if c.Available {
		title = fmt.Sprintf("Comparativo %s vs %s", c.CurrentPeriod, c.PreviousPeriod)
	}
	rows := []core.Row{sectionTitle(title)}
	if !c.Available {
		return append(rows, unavailableRow(c.Message))
	}
	if !c.PricesAvailable {
		rows = append(rows, unavailableRow("sem coluna de preço unitário: apenas quantidades"))
	}
	sizes := []int{4, 1, 1, 2, 2, 2}
	rows = append(rows, tableHeader([]string{"Produto", "Qtd ant.", "Qtd atual", "Preço ant.", "Preço atual", "Var. %"}, sizes))
	for i, r := range c.Rows {
		if i == maxTableRows {
			rows = append(rows, truncatedRow(len(c.Rows)-maxTableRows))
			break
		}
		rows = append(rows, tableRow([]string{
			r.Product,
			r.PreviousQuantity.String(),
			r.CurrentQuantity.String(),
			currency.Number(r.PreviousPrice),
			currency.Number(r.CurrentPrice),
			r.VariationPct.StringFixed(2),
		}, sizes))
	}
	return rows
}

func pendingRows(p dto.PendingOrdersDTO) []core.Row {
	rows := []core.Row{sectionTitle("Pedidos com entrega pendente")}
	if !p.Available {
		return append(rows, unavailableRow(p.Message))
	}
	sizes := []int{2, 2, 2, 3, 1, 2}
	rows = append(rows, tableHeader([]string{"Pedido", "Emissão", "Prevista", "Fornecedor", "Itens", "Valor"}, sizes))
	for i, it := range p.Items {
		if i == maxTableRows {
			rows = append(rows, truncatedRow(len(p.Items)-maxTableRows))
			break
		}
		rows = append(rows, tableRow([]string{
			it.OrderID, it.IssueDate, it.ExpectedDeliveryDate, it.Supplier, it.ItemQuantity.String(), it.Value,
		}, sizes))
	}
	return rows
}

func overdueRows(o dto.OverdueDTO) []core.Row {
	rows := []core.Row{sectionTitle("Pedidos atrasados")}
	switch {
	case !o.Available:
		return append(rows, unavailableRow(o.Message))
	case len(o.OrderIDs) == 0:
		return append(rows, unavailableRow("nenhum pedido atrasado"))
	}
	return append(rows, row.New(8).Add(col.New(12).Add(
		text.New(strings.Join(o.OrderIDs, ", "), props.Text{Size: 8, Color: colorRed, Top: 1, Left: 1}),
	)))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

func unavailableRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func truncatedRow(rest int) core.Row {
	return unavailableRow(fmt.Sprintf("... y %d filas más", rest))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}
