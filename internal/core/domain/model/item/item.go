package item

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// DefaultCategory is assigned when a listing omits a category.
	DefaultCategory = "General"

	// DefaultImage is the placeholder reference used when no image was uploaded.
	DefaultImage = "default.jpg"

	// defaultStockMinimum is the low-stock threshold assigned to new items.
	defaultStockMinimum = 5
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrNameIsRequired is returned when attempting to create an item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Item is the aggregate root for a sellable unit owned by exactly one store.
//
// Invariants:
//   - Name is non-empty and price is positive
//   - Kind is valid; only products track stock
//   - Ownership never changes after creation
//   - Can only be created through NewItem or RestoreItem
type Item struct {
	id           int64
	storeID      int64
	name         string
	price        float64
	description  string
	category     string
	image        string
	kind         Kind
	stockActual  int
	stockMinimum int

	guard guard.ConstructorGuard
}

// NewItem creates a new listing owned by the given store.
// The identifier is assigned by the persistence layer on first save.
// Category falls back to DefaultCategory and image to DefaultImage when empty.
// Price must be positive and the initial stock non-negative.
func NewItem(
	storeID int64,
	name string,
	price float64,
	description, category, image string,
	kind Kind,
	stock int,
) (*Item, error) {
	it := &Item{
		stockMinimum: defaultStockMinimum,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setStoreID(storeID),
		it.setName(name),
		it.setPrice(price),
		it.setKind(kind),
		it.setStock(stock),
	); err != nil {
		return nil, err
	}

	it.description = description
	it.category = category
	if it.category == "" {
		it.category = DefaultCategory
	}
	it.image = image
	if it.image == "" {
		it.image = DefaultImage
	}

	return it, nil
}

// RestoreItem reconstructs an Item aggregate from persistent storage.
// Stored stock may be negative: checkout consumes stock without reserving it,
// so oversold products are a legal persisted state.
func RestoreItem(
	id, storeID int64,
	name string,
	price float64,
	description, category, image string,
	kind Kind,
	stockActual, stockMinimum int,
) (*Item, error) {
	it, err := NewItem(storeID, name, price, description, category, image, kind, 0)
	if err != nil {
		return nil, err
	}
	if stockActual > maxStock {
		return nil, errs.NewValueIsOutOfRangeError("stockActual", stockActual, 0, maxStock)
	}
	it.stockActual = stockActual

	if err = it.AssignID(id); err != nil {
		return nil, err
	}

	if stockMinimum < 0 {
		return nil, errs.NewValueIsOutOfRangeError("stockMinimum", stockMinimum, 0, maxStock)
	}
	it.stockMinimum = stockMinimum

	return it, nil
}

// maxStock bounds stock values accepted at the boundary. Generous on purpose;
// it only exists to reject garbage from unchecked numeric form input.
const maxStock = 1_000_000

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// AssignID attaches the identifier generated by the persistence layer.
// It may be called exactly once, with a positive value.
func (i *Item) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", id))
	}
	if i.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("id %d is already assigned", i.id))
	}
	i.id = id
	return nil
}

// IsEqual compares two items by their identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id != 0 && i.id == other.id
}

// ID returns the item's identifier, or 0 if not yet persisted.
func (i *Item) ID() int64 { return i.id }

// StoreID returns the identifier of the owning store account.
func (i *Item) StoreID() int64 { return i.storeID }

// Name returns the item's display name.
func (i *Item) Name() string { return i.name }

// Price returns the item's current price.
func (i *Item) Price() float64 { return i.price }

// Description returns the optional item description.
func (i *Item) Description() string { return i.description }

// Category returns the item's category.
func (i *Item) Category() string { return i.category }

// Image returns the stored image reference.
func (i *Item) Image() string { return i.image }

// Kind returns whether the item is a product or a service.
func (i *Item) Kind() Kind { return i.kind }

// StockActual returns the current stock count. Meaningless for services.
func (i *Item) StockActual() int { return i.stockActual }

// StockMinimum returns the low-stock alert threshold.
func (i *Item) StockMinimum() int { return i.stockMinimum }

// IsOwnedBy reports whether the given store account owns this item.
func (i *Item) IsOwnedBy(storeID int64) bool {
	return i.storeID == storeID
}

// IsVisible reports whether the item appears in the public catalog.
// Products need positive stock; services are always available.
func (i *Item) IsVisible() bool {
	return i.kind == KindService || i.stockActual > 0
}

// IsLowStock reports whether the item should count toward the owner's
// low-stock alerts. Only products alert; the threshold is inclusive.
func (i *Item) IsLowStock() bool {
	return i.kind == KindProduct && i.stockActual <= i.stockMinimum
}

// AdjustStock sets the stock to the given value.
//
// Services are silently ignored: their availability is unbounded, so the call
// is a no-op rather than an error. Negative values are rejected at this
// boundary instead of being stored.
func (i *Item) AdjustStock(newStock int) error {
	if i.kind == KindService {
		return nil
	}
	if newStock < 0 || newStock > maxStock {
		return errs.NewValueIsOutOfRangeError("stock", newStock, 0, maxStock)
	}
	i.stockActual = newStock
	return nil
}

// DecrementStock consumes one unit at checkout. Services are unaffected.
// Products may be sold down to zero or below; availability is only a catalog
// visibility rule, not a hard reservation.
func (i *Item) DecrementStock() {
	if i.kind != KindProduct {
		return
	}
	i.stockActual--
}

func (i *Item) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("storeID", fmt.Errorf("%d is not greater than 0", storeID))
	}
	i.storeID = storeID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 || stock > maxStock {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, maxStock)
	}
	i.stockActual = stock
	return nil
}
