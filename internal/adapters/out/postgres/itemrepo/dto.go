// Package itemrepo provides data transfer objects and mapping functions for
// item persistence. It implements the repository pattern for the item
// aggregate, converting between domain entities and database rows.
package itemrepo

import (
	"marketplace/internal/core/domain/model/item"
)

// ItemDTO represents the database structure for persisting item aggregates.
// store_id and category are indexed for the inventory and catalog reads.
type ItemDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	StoreID      int64   `gorm:"index;not null"`
	Name         string  `gorm:"size:150;not null"`
	Price        float64 `gorm:"not null"`
	Description  string  `gorm:"size:500"`
	Category     string  `gorm:"size:50;index;not null"`
	Image        string  `gorm:"size:200;not null"`
	Kind         string  `gorm:"size:20;not null"`
	StockActual  int     `gorm:"not null"`
	StockMinimum int     `gorm:"not null"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain aggregate to its database representation.
func fromDomain(it *item.Item) ItemDTO {
	return ItemDTO{
		ID:           it.ID(),
		StoreID:      it.StoreID(),
		Name:         it.Name(),
		Price:        it.Price(),
		Description:  it.Description(),
		Category:     it.Category(),
		Image:        it.Image(),
		Kind:         it.Kind().String(),
		StockActual:  it.StockActual(),
		StockMinimum: it.StockMinimum(),
	}
}

// toDomain converts a database DTO to an item domain aggregate.
func toDomain(dto ItemDTO) (*item.Item, error) {
	kind, err := item.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(
		dto.ID,
		dto.StoreID,
		dto.Name,
		dto.Price,
		dto.Description,
		dto.Category,
		dto.Image,
		kind,
		dto.StockActual,
		dto.StockMinimum,
	)
}
