package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	DB        DBConfig
	Dataset   DatasetConfig
	Dashboard DashboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración de PostgreSQL; solo se usa con DATASET_SOURCE=postgres.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve DATABASE_URL si está definido, si no el DSN construido.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// DatasetConfig origen del snapshot de líneas de pedido.
type DatasetConfig struct {
	Source    string            // csv | postgres
	Path      string            // ruta del CSV exportado
	Delimiter string            // "," o ";"
	Encoding  string            // utf-8 | latin1 | windows-1252
	Schema    string            // gross | net
	Table     string            // vista/tabla en PostgreSQL
	Columns   map[string]string // campo lógico -> nombre de columna (override del esquema)
}

// DashboardConfig parámetros de presentación de los resultados.
type DashboardConfig struct {
	TopN           int
	CurrencySymbol string
	Timezone       string // zona usada para calcular "hoy" en la clasificación de atrasos
}

// columnFields campos lógicos que admiten override vía DATASET_COLUMN_<CAMPO>.
var columnFields = []string{
	"order_id", "year", "month", "issue_date", "expected_delivery_date", "arrival_date",
	"supplier", "buyer", "product_description", "order_status", "situation",
	"item_quantity", "line_gross_value", "line_net_value", "unit_net_price",
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATASET_PATH, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "compras-dashboard"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "compras"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Dataset: DatasetConfig{
			Source:    strings.ToLower(getString(v, "DATASET_SOURCE", "csv")),
			Path:      getString(v, "DATASET_PATH", "df_compra.csv"),
			Delimiter: getString(v, "DATASET_DELIMITER", ","),
			Encoding:  strings.ToLower(getString(v, "DATASET_ENCODING", "utf-8")),
			Schema:    strings.ToLower(getString(v, "DATASET_SCHEMA", "net")),
			Table:     getString(v, "DATASET_TABLE", "purchase_order_lines"),
			Columns:   make(map[string]string),
		},
		Dashboard: DashboardConfig{
			TopN:           getInt(v, "DASHBOARD_TOP_N", 10),
			CurrencySymbol: getString(v, "DASHBOARD_CURRENCY_SYMBOL", "R$"),
			Timezone:       getString(v, "DASHBOARD_TIMEZONE", "America/Sao_Paulo"),
		},
	}

	for _, field := range columnFields {
		if name := getString(v, "DATASET_COLUMN_"+strings.ToUpper(field), ""); name != "" {
			cfg.Dataset.Columns[field] = name
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case "csv":
		if c.Dataset.Path == "" {
			return fmt.Errorf("config: DATASET_PATH es requerido con DATASET_SOURCE=csv")
		}
	case "postgres":
	default:
		return fmt.Errorf("config: DATASET_SOURCE %q no soportado (csv|postgres)", c.Dataset.Source)
	}
	if len([]rune(c.Dataset.Delimiter)) != 1 {
		return fmt.Errorf("config: DATASET_DELIMITER debe ser un único carácter")
	}
	if c.Dashboard.TopN <= 0 {
		return fmt.Errorf("config: DASHBOARD_TOP_N debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
