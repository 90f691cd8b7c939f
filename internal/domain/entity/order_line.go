package entity

import "github.com/shopspring/decimal"

// OrderLine representa una línea (ítem) de un pedido de compra.
// Un pedido (OrderID) tiene 1..N líneas; proveedor y comprador se asumen constantes dentro del pedido.
type OrderLine struct {
	OrderID              string
	Year                 int
	Month                int // 1..12
	IssueDate            Date
	ExpectedDeliveryDate Date
	ArrivalDate          Date // ausente hasta que la mercancía se recibe
	Supplier             string
	Buyer                string
	ProductDescription   string // texto libre; no es un código estable de producto
	OrderStatus          string // ej: "recebido", "entrega pendente"
	Situation            string
	ItemQuantity         decimal.Decimal
	GrossValue           decimal.Decimal
	NetValue             decimal.Decimal
	UnitNetPrice         decimal.NullDecimal // puede existir aunque NetValue sea cero
}
