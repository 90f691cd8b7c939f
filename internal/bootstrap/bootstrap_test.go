package bootstrap_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-dashboard/internal/bootstrap"
	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
	"github.com/jhoicas/compras-dashboard/pkg/config"
	"github.com/jhoicas/compras-dashboard/pkg/logger"
)

func TestSchema_PresetYOverrides(t *testing.T) {
	s, err := bootstrap.Schema(config.DatasetConfig{
		Schema:  "gross",
		Columns: map[string]string{"supplier": "razao social"},
	})
	require.NoError(t, err)
	assert.Equal(t, purchasing.BasisGross, s.Basis)
	assert.Equal(t, "razao social", s.Column(purchasing.FieldSupplier))
	assert.Equal(t, "numeropedido", s.Column(purchasing.FieldOrderID))

	_, err = bootstrap.Schema(config.DatasetConfig{Schema: "otro"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLocation(t *testing.T) {
	loc, err := bootstrap.Location(config.DashboardConfig{})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = bootstrap.Location(config.DashboardConfig{Timezone: "Marte/Olympus"})
	assert.Error(t, err)
}

func TestLoadDataset_DesdeCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compras.csv")
	data := "numeropedido;ano;mes;fornecedor;descricao produto;status pedido;total itens;valor liquido total itens\n" +
		"1001;2024;1;Alfa;Luva;recebido;2;20\n" +
		"1002;2024;2;Beta;Gaze;entrega pendente;1;5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg := &config.Config{
		Dataset: config.DatasetConfig{
			Source: "csv", Path: path, Delimiter: ";", Encoding: "utf-8", Schema: "net",
		},
		Dashboard: config.DashboardConfig{TopN: 3, CurrencySymbol: "R$"},
	}

	ds, err := bootstrap.LoadDataset(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())

	uc, err := bootstrap.DashboardUseCase(ds, cfg.Dashboard, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, ds.ID(), uc.SnapshotID())
}

func TestLoadDataset_ArchivoInexistente(t *testing.T) {
	cfg := &config.Config{Dataset: config.DatasetConfig{
		Source: "csv", Path: filepath.Join(t.TempDir(), "nada.csv"), Delimiter: ",", Schema: "net",
	}}
	_, err := bootstrap.LoadDataset(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
