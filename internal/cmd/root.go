// Package cmd implementa la CLI comprasctl sobre el mismo snapshot y casos de uso que la API.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/compras-dashboard/internal/application/analytics"
	"github.com/jhoicas/compras-dashboard/internal/application/dto"
	"github.com/jhoicas/compras-dashboard/internal/bootstrap"
	"github.com/jhoicas/compras-dashboard/pkg/config"
	"github.com/jhoicas/compras-dashboard/pkg/logger"
)

// UseCaseFactory carga el snapshot y construye el caso de uso del dashboard.
type UseCaseFactory func(ctx context.Context) (*analytics.DashboardUseCase, error)

// options flags compartidos por todos los subcomandos.
type options struct {
	year      string
	month     string
	buyer     string
	situation string
	today     string
	asJSON    bool
}

func (o *options) filters() dto.DashboardFilterRequest {
	return dto.DashboardFilterRequest{Year: o.year, Month: o.month, Buyer: o.buyer, Situation: o.situation}
}

// NewRootCmd construye el árbol de comandos; factory nil usa la configuración del entorno.
func NewRootCmd(factory UseCaseFactory) *cobra.Command {
	if factory == nil {
		factory = fromEnvironment
	}
	opts := &options{}

	root := &cobra.Command{
		Use:   "comprasctl",
		Short: "Analítica de pedidos de compra desde la línea de comandos",
		Long: `comprasctl carga el exporte de líneas de pedidos de compra configurado
(DATASET_SOURCE, DATASET_PATH, ...) y muestra las mismas secciones que el dashboard:
resumen, comparativo mensual, pedidos atrasados y ranking de proveedores.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.year, "year", "all", "Año (ej: 2024) o 'all'")
	pf.StringVar(&opts.month, "month", "all", "Mes: número o abreviatura (jan, fev, ...) o 'all'")
	pf.StringVar(&opts.buyer, "buyer", "all", "Usuario comprador o 'all'")
	pf.StringVar(&opts.situation, "situation", "all", "Situación del pedido o 'all'")
	pf.StringVar(&opts.today, "today", "", "Fecha de referencia para atrasos (YYYY-MM-DD); por defecto hoy")
	pf.BoolVar(&opts.asJSON, "json", false, "Salida en JSON")

	root.AddCommand(
		newSummaryCmd(factory, opts),
		newCompareCmd(factory, opts),
		newOverdueCmd(factory, opts),
		newSuppliersCmd(factory, opts),
	)
	return root
}

// Execute ejecuta la CLI con la configuración del entorno.
func Execute() {
	if err := NewRootCmd(nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fromEnvironment carga config con Viper y el snapshot; los logs van a stderr.
func fromEnvironment(ctx context.Context) (*analytics.DashboardUseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: os.Stderr})

	ds, err := bootstrap.LoadDataset(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return bootstrap.DashboardUseCase(ds, cfg.Dashboard, log)
}

// useCase aplica --today sobre el caso de uso construido por la factory.
func useCase(ctx context.Context, factory UseCaseFactory, opts *options) (*analytics.DashboardUseCase, error) {
	uc, err := factory(ctx)
	if err != nil {
		return nil, err
	}
	if opts.today == "" {
		return uc, nil
	}
	today, err := time.Parse("2006-01-02", opts.today)
	if err != nil {
		return nil, fmt.Errorf("--today: se espera YYYY-MM-DD: %w", err)
	}
	return uc.WithClock(func() time.Time { return today }), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
