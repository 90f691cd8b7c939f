package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-dashboard/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Dataset.Source)
	assert.Equal(t, "df_compra.csv", cfg.Dataset.Path)
	assert.Equal(t, "net", cfg.Dataset.Schema)
	assert.Equal(t, 10, cfg.Dashboard.TopN)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.Dataset.Columns)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATASET_PATH", "/data/compras.csv")
	t.Setenv("DATASET_DELIMITER", ";")
	t.Setenv("DATASET_ENCODING", "LATIN1")
	t.Setenv("DATASET_SCHEMA", "gross")
	t.Setenv("DATASET_COLUMN_BUYER", "comprador")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DASHBOARD_TOP_N", "5")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/compras.csv", cfg.Dataset.Path)
	assert.Equal(t, ";", cfg.Dataset.Delimiter)
	assert.Equal(t, "latin1", cfg.Dataset.Encoding)
	assert.Equal(t, "gross", cfg.Dataset.Schema)
	assert.Equal(t, "comprador", cfg.Dataset.Columns["buyer"])
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5, cfg.Dashboard.TopN)
}

func TestLoad_OrigenInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATASET_SOURCE", "excel")

	_, err := config.Load()
	assert.ErrorContains(t, err, "DATASET_SOURCE")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "compras", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/compras?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
