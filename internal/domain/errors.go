package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrNoData         = errors.New("no hay datos para el análisis con los filtros aplicados")
	ErrMissingColumns = errors.New("columnas requeridas no encontradas en el conjunto de datos")
)
