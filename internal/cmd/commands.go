package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/compras-dashboard/internal/application/dto"
	"github.com/jhoicas/compras-dashboard/pkg/currency"
)

func newSummaryCmd(factory UseCaseFactory, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Métricas, pendientes, top proveedores, comparativo y atrasados",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := useCase(cmd.Context(), factory, opts)
			if err != nil {
				return err
			}
			s, err := uc.GetSummary(cmd.Context(), opts.filters())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, s)
			}
			printMetrics(out, s.Metrics)
			printPending(out, s.Pending)
			printSuppliers(out, s.TopSuppliers)
			printComparison(out, s.Comparison)
			printOverdue(out, s.Overdue)
			return nil
		},
	}
}

func newCompareCmd(factory UseCaseFactory, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Comparativo de cantidad y precio promedio: último mes vs mes anterior",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := useCase(cmd.Context(), factory, opts)
			if err != nil {
				return err
			}
			c, err := uc.GetComparison(cmd.Context(), opts.filters())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			printComparison(cmd.OutOrStdout(), *c)
			return nil
		},
	}
}

func newOverdueCmd(factory UseCaseFactory, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "Pedidos con entrega prevista vencida y sin llegada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := useCase(cmd.Context(), factory, opts)
			if err != nil {
				return err
			}
			o, err := uc.GetOverdue(cmd.Context(), opts.filters())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), o)
			}
			printOverdue(cmd.OutOrStdout(), *o)
			return nil
		},
	}
}

func newSuppliersCmd(factory UseCaseFactory, opts *options) *cobra.Command {
	var n int
	c := &cobra.Command{
		Use:   "suppliers",
		Short: "Ranking de proveedores por valor total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 0 {
				return fmt.Errorf("--n debe ser mayor o igual a cero")
			}
			uc, err := useCase(cmd.Context(), factory, opts)
			if err != nil {
				return err
			}
			top, err := uc.GetTopSuppliers(cmd.Context(), opts.filters(), n)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), top)
			}
			printSuppliers(cmd.OutOrStdout(), *top)
			return nil
		},
	}
	c.Flags().IntVar(&n, "n", 0, "Tamaño del ranking (0 = valor configurado)")
	return c
}

// ── Salida en texto ───────────────────────────────────────────────────────────

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("─", len([]rune(title))))
}

func printMetrics(w io.Writer, m dto.MetricsDTO) {
	section(w, "Métricas")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pedidos\t%d\n", m.OrderCount)
	fmt.Fprintf(tw, "Valor total\t%s\n", m.TotalValueLabel)
	fmt.Fprintf(tw, "Itens\t%s\n", m.TotalItems.String())
	fmt.Fprintf(tw, "Recebidos\t%d\n", m.DeliveredCount)
	fmt.Fprintf(tw, "Pendentes\t%d\n", m.PendingCount)
	tw.Flush()
}

func printPending(w io.Writer, p dto.PendingOrdersDTO) {
	section(w, "Pedidos com entrega pendente")
	if !p.Available {
		fmt.Fprintln(w, p.Message)
		return
	}
	if len(p.Items) == 0 {
		fmt.Fprintln(w, "nenhum pedido pendente")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Pedido\tEmissão\tPrevista\tFornecedor\tItens\tValor")
	for _, it := range p.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.OrderID, it.IssueDate, it.ExpectedDeliveryDate, it.Supplier, it.ItemQuantity.String(), it.Value)
	}
	tw.Flush()
}

func printSuppliers(w io.Writer, s dto.TopSuppliersDTO) {
	section(w, fmt.Sprintf("Top %d fornecedores", s.N))
	if !s.Available {
		fmt.Fprintln(w, s.Message)
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tFornecedor\tValor")
	for _, it := range s.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", it.Rank, it.Supplier, it.TotalValueLabel)
	}
	tw.Flush()
}

func printComparison(w io.Writer, c dto.ComparisonDTO) {
	if !c.Available {
		section(w, "Comparativo mensal")
		fmt.Fprintln(w, c.Message)
		return
	}
	section(w, fmt.Sprintf("Comparativo %s vs %s", c.CurrentPeriod, c.PreviousPeriod))
	if !c.PricesAvailable {
		fmt.Fprintln(w, "sem coluna de preço unitário: apenas quantidades")
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Produto\tQtd ant.\tQtd atual\tPreço ant.\tPreço atual\tVar. %")
	for _, r := range c.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Product,
			r.PreviousQuantity.String(),
			r.CurrentQuantity.String(),
			currency.Number(r.PreviousPrice),
			currency.Number(r.CurrentPrice),
			r.VariationPct.StringFixed(2),
		)
	}
	tw.Flush()
}

func printOverdue(w io.Writer, o dto.OverdueDTO) {
	section(w, "Pedidos atrasados em "+o.Today)
	switch {
	case !o.Available:
		fmt.Fprintln(w, o.Message)
	case len(o.OrderIDs) == 0:
		fmt.Fprintln(w, "nenhum pedido atrasado")
	default:
		fmt.Fprintln(w, strings.Join(o.OrderIDs, "\n"))
	}
}
