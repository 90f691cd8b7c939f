package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// DashboardFilterRequest filtros comunes a todos los endpoints del dashboard.
// Vacío, "all" o "todos" = sin restricción en esa dimensión.
type DashboardFilterRequest struct {
	Year      string `query:"year"`
	Month     string `query:"month"`     // número (1..12) o abreviatura (jan, fev, ...)
	Buyer     string `query:"buyer"`     // usuario que emitió el pedido
	Situation string `query:"situation"` // situación del pedido
}

// FiltersDTO eco de los filtros aplicados.
type FiltersDTO struct {
	Year      string `json:"year"`
	Month     string `json:"month"`
	Buyer     string `json:"buyer"`
	Situation string `json:"situation"`
}

// SectionStatus indica si una sección pudo calcularse. Con Available=false, Message
// describe el motivo ("sin datos", "columnas faltantes").
type SectionStatus struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// ── Métricas ──────────────────────────────────────────────────────────────────

// MetricsDTO las cinco tarjetas del dashboard.
type MetricsDTO struct {
	OrderCount      int             `json:"order_count"`       // pedidos distintos
	TotalValue      decimal.Decimal `json:"total_value"`       // suma del valor (bruto o líquido según variante)
	TotalValueLabel string          `json:"total_value_label"` // ej: "R$ 1.234,56"
	TotalItems      decimal.Decimal `json:"total_items"`
	DeliveredCount  int             `json:"delivered_count"` // pedidos distintos con estado recibido
	PendingCount    int             `json:"pending_count"`   // pedidos distintos con entrega pendiente
}

// ── Tablas ────────────────────────────────────────────────────────────────────

// OrderLineDTO una línea de pedido para la tabla filtrada.
type OrderLineDTO struct {
	OrderID              string           `json:"order_id"`
	Year                 int              `json:"year"`
	Month                int              `json:"month"`
	MonthLabel           string           `json:"month_label"`
	IssueDate            string           `json:"issue_date"`
	ExpectedDeliveryDate string           `json:"expected_delivery_date"`
	ArrivalDate          string           `json:"arrival_date"`
	Supplier             string           `json:"supplier"`
	Buyer                string           `json:"buyer"`
	ProductDescription   string           `json:"product_description"`
	OrderStatus          string           `json:"order_status"`
	Situation            string           `json:"situation"`
	ItemQuantity         decimal.Decimal  `json:"item_quantity"`
	Value                decimal.Decimal  `json:"value"`
	ValueLabel           string           `json:"value_label"`
	UnitNetPrice         *decimal.Decimal `json:"unit_net_price"` // null si el exporte no lo trae
}

// OrderLinesDTO página de la tabla filtrada.
type OrderLinesDTO struct {
	Items []OrderLineDTO `json:"items"`
	Page  PageResponse   `json:"page"`
}

// PendingOrderDTO fila de la tabla de pedidos pendientes (subconjunto de columnas).
type PendingOrderDTO struct {
	OrderID              string          `json:"order_id"`
	IssueDate            string          `json:"issue_date"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date"`
	Supplier             string          `json:"supplier"`
	ItemQuantity         decimal.Decimal `json:"item_quantity"`
	Value                string          `json:"value"` // formateado en moneda
}

// PendingOrdersDTO sección de pedidos con entrega pendiente.
type PendingOrdersDTO struct {
	SectionStatus
	Items []PendingOrderDTO `json:"items"`
}

// SupplierRankDTO posición en el ranking de proveedores por valor.
type SupplierRankDTO struct {
	Rank            int             `json:"rank"`
	Supplier        string          `json:"supplier"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalValueLabel string          `json:"total_value_label"`
}

// TopSuppliersDTO top-N proveedores por valor total de pedidos.
type TopSuppliersDTO struct {
	SectionStatus
	N     int               `json:"n"`
	Items []SupplierRankDTO `json:"items"`
}

// ComparisonRowDTO producto con cantidades y precio promedio en ambos meses.
type ComparisonRowDTO struct {
	Product          string          `json:"product"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	CurrentQuantity  decimal.Decimal `json:"current_quantity"`
	PreviousPrice    decimal.Decimal `json:"previous_price"`
	CurrentPrice     decimal.Decimal `json:"current_price"`
	VariationPct     decimal.Decimal `json:"variation_pct"` // 0 si algún precio es cero
}

// ComparisonDTO comparativo mes actual vs mes anterior.
type ComparisonDTO struct {
	SectionStatus
	CurrentPeriod  string `json:"current_period"`  // ej: "1/2024"
	PreviousPeriod string `json:"previous_period"` // ej: "12/2023"
	// PricesAvailable false si el archivo no trae precio unitario; sólo cantidades.
	PricesAvailable bool               `json:"prices_available"`
	Rows            []ComparisonRowDTO `json:"rows"`
}

// OverdueDTO pedidos con entrega prevista vencida y sin llegada registrada.
type OverdueDTO struct {
	SectionStatus
	Today    string         `json:"today"`
	OrderIDs []string       `json:"order_ids"`
	Items    []OrderLineDTO `json:"items"`
}

// ── Resumen combinado ─────────────────────────────────────────────────────────

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	SnapshotID   string           `json:"snapshot_id"`
	Filters      FiltersDTO       `json:"filters"`
	Metrics      MetricsDTO       `json:"metrics"`
	Pending      PendingOrdersDTO `json:"pending"`
	TopSuppliers TopSuppliersDTO  `json:"top_suppliers"`
	Comparison   ComparisonDTO    `json:"comparison"`
	Overdue      OverdueDTO       `json:"overdue"`
}

// MonthOptionDTO opción del selector de mes.
type MonthOptionDTO struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FilterOptionsDTO valores disponibles para los selectores.
type FilterOptionsDTO struct {
	Years      []int            `json:"years"`
	Months     []MonthOptionDTO `json:"months"`
	Buyers     []string         `json:"buyers"`
	Situations []string         `json:"situations"`
}
