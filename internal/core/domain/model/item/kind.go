package item

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Kind distinguishes stock-tracked products from services with unbounded
// availability. Stock adjustment, checkout decrements and low-stock alerts
// apply only to KindProduct; a service's stock field is inert.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindProduct is a physical, stock-tracked item.
	KindProduct

	// KindService is a listed service with unlimited availability.
	KindService
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		KindProduct: "product",
		KindService: "service",
	}
}

// getValidKindStrings returns a map of only valid Kind values.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindProduct: "product",
		KindService: "service",
	}
}

// KindFromString parses a kind from its wire representation.
// Accepted values are "product" and "service".
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid kind", s))
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the wire representation of the kind.
// Implements fmt.Stringer and is safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
