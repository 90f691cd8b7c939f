package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/compras-dashboard/internal/domain"
)

// Códigos SQLSTATE que el origen traduce a errores de dominio.
const (
	sqlStateUndefinedTable  = "42P01"
	sqlStateUndefinedColumn = "42703"
)

// classifyQueryError traduce tabla inexistente a domain.ErrNotFound y columna
// inexistente a domain.ErrMissingColumns; el resto se devuelve sin cambios.
func classifyQueryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case sqlStateUndefinedTable:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.Message)
	case sqlStateUndefinedColumn:
		return fmt.Errorf("%w: %s", domain.ErrMissingColumns, pgErr.Message)
	}
	return err
}
