package account_test

import (
	"testing"

	"marketplace/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("should create valid account with all valid parameters", func(t *testing.T) {
		a, err := account.NewAccount("shop@example.com", "Shop", "$2a$10$hash", account.Store, "555-0101")

		require.NoError(t, err)
		assert.NotNil(t, a)
		require.NoError(t, a.Validate())
		assert.Equal(t, int64(0), a.ID())
		assert.Equal(t, "shop@example.com", a.Email())
		assert.Equal(t, "Shop", a.Name())
		assert.Equal(t, account.Store, a.Role())
		assert.Equal(t, "555-0101", a.Phone())
		assert.InDelta(t, 5.0, a.Rating(), 0.0001)
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		a, err := account.NewAccount("", "Shop", "hash", account.Store, "")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "value is required: email")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		a, err := account.NewAccount("shop@example.com", "  ", "hash", account.Store, "")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "value is required: name")
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		a, err := account.NewAccount("shop@example.com", "Shop", "hash", account.RoleUnknown, "")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		a, err := account.NewAccount("", "", "", account.RoleUnknown, "")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "passwordHash")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("should restore account with id, address and rating", func(t *testing.T) {
		a, err := account.RestoreAccount(7, "shop@example.com", "Shop", "hash", account.Store, "", "1 Market St", 4.5)

		require.NoError(t, err)
		assert.Equal(t, int64(7), a.ID())
		assert.Equal(t, "1 Market St", a.StoreAddress())
		assert.InDelta(t, 4.5, a.Rating(), 0.0001)
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		a, err := account.RestoreAccount(0, "shop@example.com", "Shop", "hash", account.Store, "", "", 5)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should fail with out-of-range rating", func(t *testing.T) {
		a, err := account.RestoreAccount(7, "shop@example.com", "Shop", "hash", account.Store, "", "", 5.5)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "rating")
	})
}

func TestAccount_AssignID(t *testing.T) {
	t.Run("assigns once", func(t *testing.T) {
		a, _ := account.NewAccount("c@example.com", "C", "hash", account.Customer, "")

		require.NoError(t, a.AssignID(3))
		assert.Equal(t, int64(3), a.ID())

		require.Error(t, a.AssignID(4))
		assert.Equal(t, int64(3), a.ID())
	})
}

func TestAccount_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var a account.Account
		require.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
	})

	t.Run("nil account fails validation", func(t *testing.T) {
		var a *account.Account
		require.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
	})
}

func TestAccount_SetStoreAddress(t *testing.T) {
	t.Run("store can set address", func(t *testing.T) {
		a, _ := account.NewAccount("shop@example.com", "Shop", "hash", account.Store, "")
		require.NoError(t, a.SetStoreAddress("2 Harbor Rd"))
		assert.Equal(t, "2 Harbor Rd", a.StoreAddress())
	})

	t.Run("customer cannot set address", func(t *testing.T) {
		a, _ := account.NewAccount("c@example.com", "C", "hash", account.Customer, "")
		require.Error(t, a.SetStoreAddress("2 Harbor Rd"))
	})
}

func TestRoleFromString(t *testing.T) {
	cases := map[string]account.Role{
		"customer": account.Customer,
		"store":    account.Store,
		"courier":  account.Courier,
	}
	for s, want := range cases {
		got, err := account.RoleFromString(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := account.RoleFromString("admin")
		require.Error(t, err)

		_, err = account.RoleFromString("")
		require.Error(t, err)
	})
}

func TestRole_CanBuy(t *testing.T) {
	assert.True(t, account.Customer.CanBuy())
	assert.True(t, account.Courier.CanBuy())
	assert.False(t, account.Store.CanBuy())
	assert.False(t, account.RoleUnknown.CanBuy())
}

func TestAuthorize(t *testing.T) {
	store, _ := account.NewAccount("shop@example.com", "Shop", "hash", account.Store, "")
	courier, _ := account.NewAccount("c@example.com", "C", "hash", account.Courier, "")

	t.Run("allows matching role", func(t *testing.T) {
		assert.Equal(t, account.Allowed, account.Authorize(store, account.Store))
		assert.Equal(t, account.Allowed, account.Authorize(courier, account.Courier))
	})

	t.Run("denies mismatched role", func(t *testing.T) {
		assert.Equal(t, account.Denied, account.Authorize(store, account.Courier))
		assert.Equal(t, account.Denied, account.Authorize(courier, account.Store))
	})

	t.Run("denies nil account", func(t *testing.T) {
		assert.Equal(t, account.Denied, account.Authorize(nil, account.Store))
	})

	t.Run("denies invalid required role", func(t *testing.T) {
		assert.Equal(t, account.Denied, account.Authorize(store, account.RoleUnknown))
	})
}
