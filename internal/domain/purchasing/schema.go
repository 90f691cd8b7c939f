// Package purchasing contiene el motor de analítica de compras: filtros, métricas,
// comparativo de períodos, clasificación de atrasos y ranking de proveedores.
//
// Todas las operaciones son funciones puras sobre un Dataset inmutable: cada etapa
// recibe una View y devuelve valores nuevos, nunca modifica la entrada.
package purchasing

import "maps"

// Field campo lógico de una línea de pedido, independiente del nombre de columna del archivo.
type Field string

const (
	FieldOrderID      Field = "order_id"
	FieldYear         Field = "year"
	FieldMonth        Field = "month"
	FieldIssueDate    Field = "issue_date"
	FieldExpectedDate Field = "expected_delivery_date"
	FieldArrivalDate  Field = "arrival_date"
	FieldSupplier     Field = "supplier"
	FieldBuyer        Field = "buyer"
	FieldProduct      Field = "product_description"
	FieldOrderStatus  Field = "order_status"
	FieldSituation    Field = "situation"
	FieldItemQuantity Field = "item_quantity"
	FieldGrossValue   Field = "line_gross_value"
	FieldNetValue     Field = "line_net_value"
	FieldUnitNetPrice Field = "unit_net_price"
)

// AllFields orden canónico de los campos conocidos.
var AllFields = []Field{
	FieldOrderID, FieldYear, FieldMonth, FieldIssueDate, FieldExpectedDate, FieldArrivalDate,
	FieldSupplier, FieldBuyer, FieldProduct, FieldOrderStatus, FieldSituation,
	FieldItemQuantity, FieldGrossValue, FieldNetValue, FieldUnitNetPrice,
}

// ValueBasis columna de valor usada para totales: bruto o líquido según la variante del exporte.
type ValueBasis string

const (
	BasisGross ValueBasis = "gross"
	BasisNet   ValueBasis = "net"
)

// Dimension dimensión de filtro expuesta al usuario.
type Dimension string

const (
	DimensionYear      Dimension = "year"
	DimensionMonth     Dimension = "month"
	DimensionBuyer     Dimension = "buyer"
	DimensionSituation Dimension = "situation"
)

// Schema describe una variante del exporte: nombres de columna, base de valor,
// etiquetas de estado y dimensiones de filtro disponibles.
type Schema struct {
	Name            string
	Columns         map[Field]string
	Basis           ValueBasis
	DeliveredStatus string
	PendingStatus   string
	Dimensions      []Dimension
}

// Etiquetas de estado tal como vienen en el ERP.
const (
	StatusReceived        = "recebido"
	StatusDeliveryPending = "entrega pendente"
)

func baseColumns() map[Field]string {
	return map[Field]string{
		FieldOrderID:      "numeropedido",
		FieldYear:         "ano",
		FieldMonth:        "mes",
		FieldIssueDate:    "data emissao",
		FieldExpectedDate: "data entrega prevista",
		FieldArrivalDate:  "data chegada",
		FieldSupplier:     "fornecedor",
		FieldBuyer:        "usuario",
		FieldProduct:      "descricao produto",
		FieldOrderStatus:  "status pedido",
		FieldSituation:    "situacao",
		FieldItemQuantity: "total itens",
		FieldGrossValue:   "valor bruto total itens",
		FieldNetValue:     "valor liquido total itens",
		FieldUnitNetPrice: "preco unitario liquido",
	}
}

// SchemaGross variante original: valor bruto y filtros solo por año y mes.
func SchemaGross() Schema {
	return Schema{
		Name:            "gross",
		Columns:         baseColumns(),
		Basis:           BasisGross,
		DeliveredStatus: StatusReceived,
		PendingStatus:   StatusDeliveryPending,
		Dimensions:      []Dimension{DimensionYear, DimensionMonth},
	}
}

// SchemaNet variante con valor líquido y filtros por comprador y situación.
func SchemaNet() Schema {
	return Schema{
		Name:            "net",
		Columns:         baseColumns(),
		Basis:           BasisNet,
		DeliveredStatus: StatusReceived,
		PendingStatus:   StatusDeliveryPending,
		Dimensions:      []Dimension{DimensionYear, DimensionMonth, DimensionBuyer, DimensionSituation},
	}
}

// SchemaByName resuelve un preset; ok=false si el nombre no existe.
func SchemaByName(name string) (Schema, bool) {
	switch name {
	case "gross":
		return SchemaGross(), true
	case "net", "", "default":
		return SchemaNet(), true
	}
	return Schema{}, false
}

// WithColumns devuelve una copia del esquema con nombres de columna reemplazados.
func (s Schema) WithColumns(overrides map[Field]string) Schema {
	cols := maps.Clone(s.Columns)
	if cols == nil {
		cols = make(map[Field]string, len(overrides))
	}
	for f, name := range overrides {
		if name != "" {
			cols[f] = name
		}
	}
	s.Columns = cols
	s.Dimensions = append([]Dimension(nil), s.Dimensions...)
	return s
}

// Column nombre de columna del campo en el archivo de origen.
func (s Schema) Column(f Field) string { return s.Columns[f] }

// ValueField campo de valor según la base del esquema.
func (s Schema) ValueField() Field {
	if s.Basis == BasisNet {
		return FieldNetValue
	}
	return FieldGrossValue
}

// HasDimension indica si la variante expone la dimensión de filtro.
func (s Schema) HasDimension(d Dimension) bool {
	for _, x := range s.Dimensions {
		if x == d {
			return true
		}
	}
	return false
}
