// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the order row together with its lines.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and courier_id are indexed for the courier board reads.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	BuyerID       int64  `gorm:"index;not null"`
	CourierID     *int64 `gorm:"index"`
	Status        string `gorm:"size:20;not null;index"`
	Mode          string `gorm:"size:20;not null"`
	PaymentMethod string `gorm:"size:30;not null"`
	Total         float64
	CreatedAt     time.Time
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line. The unit price is the checkout
// snapshot, never the item's live price.
type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index;not null"`
	ItemID    int64 `gorm:"index;not null"`
	Quantity  int   `gorm:"not null"`
	UnitPrice float64
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   o.ID(),
			ItemID:    l.ItemID(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:            o.ID(),
		BuyerID:       o.BuyerID(),
		CourierID:     o.Courier(),
		Status:        o.Status().String(),
		Mode:          o.Mode().String(),
		PaymentMethod: o.PaymentMethod(),
		Total:         o.Total(),
		CreatedAt:     o.CreatedAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	mode, err := order.DeliveryModeFromString(dto.Mode)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := order.NewLine(l.ItemID, l.Quantity, l.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.BuyerID,
		dto.CourierID,
		status,
		mode,
		dto.PaymentMethod,
		dto.Total,
		dto.CreatedAt,
		lines,
	)
}
