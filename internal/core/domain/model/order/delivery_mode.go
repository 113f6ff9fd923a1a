package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// DeliveryMode says how an order reaches the buyer.
// Ship-mode orders are fulfilled by couriers; pickup-mode orders are
// collected by the buyer and never appear to couriers.
type DeliveryMode int

const (
	// ModeUnknown represents an invalid or undefined delivery mode.
	ModeUnknown DeliveryMode = iota

	// Ship means a courier delivers the order.
	Ship

	// Pickup means the buyer collects the order from the store.
	Pickup
)

// getDeliveryModeStrings returns a map of DeliveryMode values to their string representations.
func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		ModeUnknown: "unknown",
		Ship:        "ship",
		Pickup:      "pickup",
	}
}

// getValidDeliveryModeStrings returns a map of only valid DeliveryMode values.
func getValidDeliveryModeStrings() map[DeliveryMode]string {
	//nolint:exhaustive // ModeUnknown is intentionally excluded as it's invalid
	return map[DeliveryMode]string{
		Ship:   "ship",
		Pickup: "pickup",
	}
}

// DeliveryModeFromString parses a delivery mode from its wire representation.
// Accepted values are "ship" and "pickup".
func DeliveryModeFromString(s string) (DeliveryMode, error) {
	for mode, str := range getValidDeliveryModeStrings() {
		if str == s {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryMode", fmt.Errorf("%q is not a valid delivery mode", s))
}

// Validate checks if the DeliveryMode value is valid.
func (m DeliveryMode) Validate() error {
	if _, ok := getValidDeliveryModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryMode", fmt.Errorf("%d is not a valid delivery mode", m))
	}
	return nil
}

// String returns the wire representation of the delivery mode.
// Implements fmt.Stringer and is safe to call on any DeliveryMode value.
func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// RequiresCourier reports whether orders in this mode are fulfilled by couriers.
func (m DeliveryMode) RequiresCourier() bool {
	return m == Ship
}
