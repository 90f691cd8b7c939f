package entity

import (
	"strings"
	"time"
)

// DateState estado de una celda de fecha tras el parseo tolerante.
type DateState int

const (
	DateAbsent  DateState = iota // celda vacía (ej: mercancía aún no recibida)
	DateValid                    // fecha parseada correctamente
	DateInvalid                  // contenido no reconocido como fecha
)

// dateLayouts formatos aceptados en los exportes del ERP, en orden de prueba.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
}

// Date fecha de calendario con marcador de ausencia/invalidez.
// Solo se conserva año-mes-día; la hora se descarta.
type Date struct {
	t     time.Time
	state DateState
}

// NewDate construye una fecha válida a partir de un time.Time (se trunca al día).
func NewDate(t time.Time) Date {
	return Date{t: civil(t), state: DateValid}
}

// InvalidDate marcador de fecha con contenido ilegible.
func InvalidDate() Date { return Date{state: DateInvalid} }

// ParseDate interpreta una celda de fecha sin fallar: vacía -> ausente, ilegible -> inválida.
func ParseDate(raw string) Date {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "nat") {
		return Date{state: DateAbsent}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t)
		}
	}
	return InvalidDate()
}

// State devuelve el estado de la fecha.
func (d Date) State() DateState { return d.state }

// Valid indica si la fecha puede compararse.
func (d Date) Valid() bool { return d.state == DateValid }

// Absent indica celda vacía.
func (d Date) Absent() bool { return d.state == DateAbsent }

// Time devuelve la fecha a medianoche UTC; cero si no es válida.
func (d Date) Time() time.Time {
	if d.state != DateValid {
		return time.Time{}
	}
	return d.t
}

// Before compara por día de calendario. Solo tiene sentido si d es válida.
func (d Date) Before(day time.Time) bool {
	return d.Valid() && d.t.Before(civil(day))
}

// String formatea como YYYY-MM-DD; "" si ausente, "inválida" si ilegible.
func (d Date) String() string {
	switch d.state {
	case DateValid:
		return d.t.Format("2006-01-02")
	case DateInvalid:
		return "inválida"
	default:
		return ""
	}
}

// civil normaliza un instante a su día de calendario local en UTC.
func civil(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
