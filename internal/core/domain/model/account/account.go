package account

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// defaultRating is the rating assigned to every new account.
const defaultRating = 5.0

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not created
	// through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrEmailIsRequired is returned when attempting to create an account without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")

	// ErrNameIsRequired is returned when attempting to create an account without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPasswordHashIsRequired is returned when attempting to create an account without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// Account is the aggregate root for marketplace identities.
// An account holds a unique email, a display name, a hashed password and a role
// fixed at registration. Store accounts additionally carry an optional pickup
// address and a rating that starts at 5.0.
//
// Invariants:
//   - Email and name are non-empty
//   - Role is valid and immutable after construction
//   - Rating stays within [0, 5]
//   - Can only be created through NewAccount or RestoreAccount
type Account struct {
	id           int64
	email        string
	name         string
	passwordHash string
	role         Role
	phone        string
	storeAddress string
	rating       float64

	guard guard.ConstructorGuard
}

// NewAccount creates an Account ready for registration.
// The identifier is assigned by the persistence layer on first save.
// Email, name and password hash must be non-empty; the role must be valid.
// Phone is optional and may be empty.
func NewAccount(email, name, passwordHash string, role Role, phone string) (*Account, error) {
	a := &Account{
		rating: defaultRating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setEmail(email),
		a.setName(name),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	a.phone = phone
	return a, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
// Unlike NewAccount it requires an assigned identifier and accepts the stored
// store address and rating.
func RestoreAccount(
	id int64,
	email, name, passwordHash string,
	role Role,
	phone, storeAddress string,
	rating float64,
) (*Account, error) {
	a, err := NewAccount(email, name, passwordHash, role, phone)
	if err != nil {
		return nil, err
	}

	if err = a.AssignID(id); err != nil {
		return nil, err
	}

	a.storeAddress = storeAddress
	if err = a.setRating(rating); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// AssignID attaches the identifier generated by the persistence layer.
// It may be called exactly once, with a positive value.
func (a *Account) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("account id", fmt.Errorf("%d is not greater than 0", id))
	}
	if a.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("account id", fmt.Errorf("id %d is already assigned", a.id))
	}
	a.id = id
	return nil
}

// IsEqual compares two accounts by their identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id != 0 && a.id == other.id
}

// ID returns the account's identifier, or 0 if not yet persisted.
func (a *Account) ID() int64 { return a.id }

// Email returns the account's unique email.
func (a *Account) Email() string { return a.email }

// Name returns the account's display name.
func (a *Account) Name() string { return a.name }

// PasswordHash returns the stored password hash.
func (a *Account) PasswordHash() string { return a.passwordHash }

// Role returns the account's role.
func (a *Account) Role() Role { return a.role }

// Phone returns the optional contact phone.
func (a *Account) Phone() string { return a.phone }

// StoreAddress returns the optional pickup address for store accounts.
func (a *Account) StoreAddress() string { return a.storeAddress }

// Rating returns the account's rating. New accounts start at 5.0.
func (a *Account) Rating() float64 { return a.rating }

// SetStoreAddress records the pickup address for a store account.
// Rejected for non-store roles.
func (a *Account) SetStoreAddress(address string) error {
	if a.role != Store {
		return errs.NewPermissionDeniedErrorWithCause(
			"set store address",
			fmt.Errorf("role is %s", a.role),
		)
	}
	a.storeAddress = address
	return nil
}

func (a *Account) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}
	a.email = email
	return nil
}

func (a *Account) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	a.rating = rating
	return nil
}
