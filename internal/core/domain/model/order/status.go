package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──[courier claims]──> EnRoute ──[courier completes]──> Delivered
//
// Delivered is terminal; no further transitions are defined.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when an order is checked out.
	// Ship-mode orders in this status are visible to couriers.
	Pending

	// EnRoute indicates a courier has claimed the order and is delivering it.
	EnRoute

	// Delivered indicates the order reached the buyer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		EnRoute:       "en_route",
		Delivered:     "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		EnRoute:   "en_route",
		Delivered: "delivered",
	}
}

// StatusFromString parses a status from its wire representation.
// Accepted values are "pending", "en_route" and "delivered".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, EnRoute, Delivered.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
//
// Returns "pending", "en_route" or "delivered" for valid statuses and
// "unknown" otherwise. Implements the fmt.Stringer interface and is safe
// to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAccept checks if the status allows a courier claim without
// performing the transition. Only Pending orders can be claimed.
func (s Status) ValidateAccept() error {
	if s != Pending {
		return errs.NewInvalidStateErrorWithCause(
			"accept order",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Pending orders must not have a courier assigned
//   - EnRoute and Delivered orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == EnRoute || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to EnRoute.
//
// Valid transitions:
//   - Pending -> EnRoute (courier claims the order)
//
// Returns:
//   - (EnRoute, nil) on valid transition
//   - (0, error) if the order is not Pending
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return 0, err
	}

	return EnRoute, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - EnRoute -> Delivered (order handed to the buyer)
//
// Delivered is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != EnRoute {
		return 0, errs.NewInvalidStateErrorWithCause(
			"complete order",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Delivered, nil
}
