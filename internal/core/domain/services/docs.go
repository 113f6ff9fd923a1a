// Package services contains domain services that coordinate multiple
// aggregates. CheckoutService builds an order from a resolved cart and
// consumes stock from the purchased items.
package services
