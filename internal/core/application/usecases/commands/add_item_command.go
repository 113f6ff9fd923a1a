package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
)

// AddItemCommand represents a store's request to publish a new listing.
// ImageRef is the stored upload reference produced by the file store; the
// HTTP boundary saves the upload before building the command.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	storeID     int64
	name        string
	price       float64
	description string
	category    string
	imageRef    string
	kind        item.Kind
	stock       int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to publish a new item listing.
func NewAddItemCommand(
	storeID int64,
	name string,
	price float64,
	description, category, imageRef string,
	kind item.Kind,
	stock int,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setName(name),
		cmd.setKind(kind),
	); err != nil {
		return AddItemCommand{}, err
	}

	cmd.price = price
	cmd.description = description
	cmd.category = category
	cmd.imageRef = imageRef
	cmd.stock = stock
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// StoreID returns the acting store account's identifier.
func (c AddItemCommand) StoreID() int64 { return c.storeID }

// Name returns the listing name.
func (c AddItemCommand) Name() string { return c.name }

// Price returns the listing price. Range checks happen in the aggregate.
func (c AddItemCommand) Price() float64 { return c.price }

// Description returns the optional description.
func (c AddItemCommand) Description() string { return c.description }

// Category returns the optional category.
func (c AddItemCommand) Category() string { return c.category }

// ImageRef returns the stored upload reference, empty for no upload.
func (c AddItemCommand) ImageRef() string { return c.imageRef }

// Kind returns whether the listing is a product or a service.
func (c AddItemCommand) Kind() item.Kind { return c.kind }

// Stock returns the initial stock count.
func (c AddItemCommand) Stock() int { return c.stock }

func (c *AddItemCommand) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("storeID", fmt.Errorf("%d is not greater than 0", storeID))
	}
	c.storeID = storeID
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddItemCommand) setKind(kind item.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}
