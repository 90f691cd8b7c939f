package analytics

import (
	"github.com/jhoicas/compras-dashboard/internal/application/dto"
	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
)

// lineDTO copia de presentación de una línea; el valor sigue la base del esquema.
func (uc *DashboardUseCase) lineDTO(v purchasing.View, l entity.OrderLine) dto.OrderLineDTO {
	out := dto.OrderLineDTO{
		OrderID:              l.OrderID,
		Year:                 l.Year,
		Month:                l.Month,
		MonthLabel:           purchasing.MonthLabel(l.Month),
		IssueDate:            l.IssueDate.String(),
		ExpectedDeliveryDate: l.ExpectedDeliveryDate.String(),
		ArrivalDate:          l.ArrivalDate.String(),
		Supplier:             l.Supplier,
		Buyer:                l.Buyer,
		ProductDescription:   l.ProductDescription,
		OrderStatus:          l.OrderStatus,
		Situation:            l.Situation,
		ItemQuantity:         l.ItemQuantity,
		Value:                v.Value(l),
		ValueLabel:           uc.formatter.FormatDecimal(v.Value(l)),
	}
	if l.UnitNetPrice.Valid {
		p := l.UnitNetPrice.Decimal
		out.UnitNetPrice = &p
	}
	return out
}
