// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// ItemUoW manages transactions for item-only operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AccountItemUoW manages transactions for operations that read the acting
	// account and modify items, such as listing and stock adjustments.
	AccountItemUoW interface {
		TxManager
		AccountRepoFactory
		ItemRepoFactory
	}

	// AccountItemUoWFactory creates new account-item unit of work instances.
	AccountItemUoWFactory interface {
		Create() AccountItemUoW
	}

	// AccountOrderUoW manages transactions for operations that read the acting
	// account and modify orders, such as courier claims.
	AccountOrderUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
	}

	// AccountOrderUoWFactory creates new account-order unit of work instances.
	AccountOrderUoWFactory interface {
		Create() AccountOrderUoW
	}

	// UoW manages transactions across account, item and order aggregates.
	// Used for commands that coordinate changes between multiple aggregate
	// types, most importantly the checkout transaction.
	UoW interface {
		TxManager
		AccountRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
