package purchasing

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
)

// Dataset snapshot inmutable de líneas de pedido cargado una vez por sesión.
type Dataset struct {
	id      string
	schema  Schema
	lines   []entity.OrderLine
	present map[Field]bool
}

// NewDataset copia las líneas recibidas. present lista los campos que existían en
// el origen; nil significa que todos los campos están presentes.
func NewDataset(id string, schema Schema, lines []entity.OrderLine, present []Field) *Dataset {
	p := make(map[Field]bool, len(AllFields))
	if present == nil {
		present = AllFields
	}
	for _, f := range present {
		p[f] = true
	}
	return &Dataset{
		id:      id,
		schema:  schema,
		lines:   slices.Clone(lines),
		present: p,
	}
}

// ID identificador del snapshot.
func (d *Dataset) ID() string { return d.id }

// Schema variante con la que se cargó el snapshot.
func (d *Dataset) Schema() Schema { return d.schema }

// Len número de líneas.
func (d *Dataset) Len() int { return len(d.lines) }

// View vista sobre todo el snapshot.
func (d *Dataset) View() View { return View{ds: d, lines: d.lines} }

// MissingFields devuelve los campos pedidos que no existían en el origen.
func (d *Dataset) MissingFields(fields ...Field) []Field {
	var missing []Field
	for _, f := range fields {
		if !d.present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// View subconjunto filtrado de un Dataset. Es un valor: copiarla no copia líneas
// y ninguna operación del paquete escribe sobre sus líneas.
type View struct {
	ds    *Dataset
	lines []entity.OrderLine
}

// Len número de líneas de la vista.
func (v View) Len() int { return len(v.lines) }

// Empty indica vista sin líneas.
func (v View) Empty() bool { return len(v.lines) == 0 }

// Lines devuelve una copia de las líneas (seguro para mutar en capas de presentación).
func (v View) Lines() []entity.OrderLine { return slices.Clone(v.lines) }

// Dataset snapshot de origen de la vista.
func (v View) Dataset() *Dataset { return v.ds }

// Schema esquema del snapshot; vacío si la vista no tiene origen.
func (v View) Schema() Schema {
	if v.ds == nil {
		return Schema{}
	}
	return v.ds.schema
}

// MissingFields campos requeridos ausentes en el origen de la vista.
func (v View) MissingFields(fields ...Field) []Field {
	if v.ds == nil {
		return fields
	}
	return v.ds.MissingFields(fields...)
}

// Value valor de la línea según la base (bruto/líquido) del esquema.
func (v View) Value(l entity.OrderLine) decimal.Decimal {
	if v.Schema().Basis == BasisNet {
		return l.NetValue
	}
	return l.GrossValue
}

// where crea una vista nueva con las líneas que cumplen pred.
func (v View) where(pred func(entity.OrderLine) bool) View {
	out := make([]entity.OrderLine, 0, len(v.lines))
	for _, l := range v.lines {
		if pred(l) {
			out = append(out, l)
		}
	}
	return View{ds: v.ds, lines: out}
}
