package account

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role represents the capability class of an account.
// Every account holds exactly one role, fixed at registration time.
//
// Roles:
//
//	Customer — browses the catalog, keeps a cart, places orders
//	Store    — lists items, adjusts stock, never buys
//	Courier  — claims pending ship-mode orders and completes deliveries
//
// Role is a value object that validates itself and provides the wire
// representation used for persistence and forms.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// Customer accounts buy from the catalog.
	Customer

	// Store accounts own and manage items. Stores cannot buy.
	Store

	// Courier accounts deliver ship-mode orders.
	Courier
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		Customer:    "customer",
		Store:       "store",
		Courier:     "courier",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Store:    "store",
		Courier:  "courier",
	}
}

// RoleFromString parses a role from its wire representation.
// Accepted values are "customer", "store" and "courier".
// Returns an error for anything else, including the empty string.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
//
// Valid roles are: Customer, Store, Courier.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// CanBuy reports whether accounts with this role may add items to a cart
// and check out. Stores never buy; customers and couriers may.
func (r Role) CanBuy() bool {
	return r == Customer || r == Courier
}

// Decision is the typed result of an authorization check.
type Decision int

const (
	// DecisionUnknown represents an invalid or undefined decision.
	DecisionUnknown Decision = iota

	// Allowed means the account holds the required role.
	Allowed

	// Denied means the account is missing or holds a different role.
	Denied
)

// Authorize is the single authorization gate for role-scoped operations.
// It returns Allowed only when the account exists and holds exactly the
// required role. A nil account is always Denied.
//
// Callers act on the typed decision rather than comparing role strings:
//
//	if account.Authorize(acc, account.Courier) != account.Allowed {
//	    // redirect to the landing page with a notice
//	}
func Authorize(a *Account, required Role) Decision {
	if a == nil || required.Validate() != nil {
		return Denied
	}

	switch a.Role() {
	case Customer, Store, Courier:
		if a.Role() == required {
			return Allowed
		}
		return Denied
	default:
		return Denied
	}
}
