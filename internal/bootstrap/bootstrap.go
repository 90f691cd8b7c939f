// Package bootstrap arma las piezas compartidas por el servidor HTTP y la CLI:
// esquema, origen del snapshot y caso de uso del dashboard a partir de la configuración.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/compras-dashboard/internal/application/analytics"
	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
	"github.com/jhoicas/compras-dashboard/internal/domain/repository"
	"github.com/jhoicas/compras-dashboard/internal/infrastructure/csvsource"
	"github.com/jhoicas/compras-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/compras-dashboard/pkg/config"
	"github.com/jhoicas/compras-dashboard/pkg/logger"
)

// Schema resuelve el preset configurado y aplica los overrides de columnas.
func Schema(cfg config.DatasetConfig) (purchasing.Schema, error) {
	schema, ok := purchasing.SchemaByName(cfg.Schema)
	if !ok {
		return purchasing.Schema{}, fmt.Errorf("%w: esquema %q (gross|net)", domain.ErrInvalidInput, cfg.Schema)
	}
	if len(cfg.Columns) == 0 {
		return schema, nil
	}
	overrides := make(map[purchasing.Field]string, len(cfg.Columns))
	for field, column := range cfg.Columns {
		overrides[purchasing.Field(field)] = column
	}
	return schema.WithColumns(overrides), nil
}

// Location zona horaria para "hoy"; vacía = UTC.
func Location(cfg config.DashboardConfig) (*time.Location, error) {
	if cfg.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: zona horaria %q: %v", domain.ErrInvalidInput, cfg.Timezone, err)
	}
	return loc, nil
}

// OpenSource construye el origen configurado. closeFn libera recursos (pool de PostgreSQL).
func OpenSource(ctx context.Context, cfg *config.Config, log *logger.Logger) (src repository.OrderLineSource, closeFn func(), err error) {
	schema, err := Schema(cfg.Dataset)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Dataset.Source {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: conexión a PostgreSQL: %w", err)
		}
		return postgres.NewOrderLineSource(pool, cfg.Dataset.Table, schema, log), pool.Close, nil
	default:
		loader := csvsource.NewLoader(csvsource.Options{
			Path:      cfg.Dataset.Path,
			Delimiter: []rune(cfg.Dataset.Delimiter)[0],
			Encoding:  cfg.Dataset.Encoding,
			Schema:    schema,
		}, log)
		return loader, func() {}, nil
	}
}

// LoadDataset abre el origen y carga el snapshot.
func LoadDataset(ctx context.Context, cfg *config.Config, log *logger.Logger) (*purchasing.Dataset, error) {
	src, closeSrc, err := OpenSource(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	ds, report, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: cargar snapshot: %w", err)
	}

	if len(report.MissingColumns) > 0 {
		log.Warn().
			Str("snapshot_id", ds.ID()).
			Strs("missing_columns", report.MissingColumns).
			Msg("secciones que dependen de estas columnas quedarán no disponibles")
	}
	return ds, nil
}

// DashboardUseCase construye el caso de uso con los parámetros de presentación configurados.
func DashboardUseCase(ds *purchasing.Dataset, cfg config.DashboardConfig, log *logger.Logger) (*analytics.DashboardUseCase, error) {
	loc, err := Location(cfg)
	if err != nil {
		return nil, err
	}
	return analytics.NewDashboardUseCase(ds, analytics.DashboardConfig{
		TopN:           cfg.TopN,
		CurrencySymbol: cfg.CurrencySymbol,
		Location:       loc,
	}, log), nil
}
