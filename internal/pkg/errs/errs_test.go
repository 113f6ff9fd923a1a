package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", "123")

		assert.Equal(t, "productId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("productId", "123", cause)

		assert.Equal(t, "productId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("stock", -3, 0, 100000)

		assert.Equal(t, "stock", err.ParamName)
		assert.Equal(t, -3, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -3 is stock, min value is 0, max value is 100000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("price", -5, 0, 100, cause)

		assert.Equal(t, "price", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is price, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: email", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: email (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestPermissionDeniedError(t *testing.T) {
	t.Run("NewPermissionDeniedError", func(t *testing.T) {
		err := errs.NewPermissionDeniedError("stores cannot buy")

		assert.Equal(t, "stores cannot buy", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t, "permission denied: stores cannot buy", err.Error())
		assert.Equal(t, errs.ErrPermissionDenied, err.Unwrap())
	})

	t.Run("NewPermissionDeniedErrorWithCause", func(t *testing.T) {
		cause := errors.New("role is customer")
		err := errs.NewPermissionDeniedErrorWithCause("adjust stock", cause)

		assert.Equal(t, "adjust stock", err.Action)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "permission denied: adjust stock (cause: role is customer)", err.Error())
		assert.Equal(t, errs.ErrPermissionDenied, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("accept order")

		assert.Equal(t, "accept order", err.Transition)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: accept order", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is delivered")
		err := errs.NewInvalidStateErrorWithCause("accept order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid state: accept order (cause: order is delivered)", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrPermissionDenied)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrCartIsEmpty)
	})

	t.Run("typed errors match sentinels via errors.Is", func(t *testing.T) {
		assert.ErrorIs(t, errs.NewObjectNotFoundError("order", 1), errs.ErrObjectNotFound)
		assert.ErrorIs(t, errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		assert.ErrorIs(t, errs.NewPermissionDeniedError("x"), errs.ErrPermissionDenied)
		assert.ErrorIs(t, errs.NewInvalidStateError("x"), errs.ErrInvalidState)
	})
}
