package queries

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCourierBoardQueryIsNotConstructed = errors.New(
		"GetCourierBoardQuery must be created via NewGetCourierBoardQuery constructor",
	)
)

// GetCourierBoardQuery retrieves a courier's dashboard: unclaimed ship-mode
// orders anyone may take, plus the courier's own active deliveries.
// Pickup orders never appear on the board.
type GetCourierBoardQuery struct {
	courierID int64

	guard guard.ConstructorGuard
}

// NewGetCourierBoardQuery creates a query for the courier dashboard.
func NewGetCourierBoardQuery(courierID int64) (GetCourierBoardQuery, error) {
	if courierID <= 0 {
		return GetCourierBoardQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"courierID", fmt.Errorf("%d is not greater than 0", courierID))
	}

	return GetCourierBoardQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierBoardQueryIsNotConstructed)
}

// CourierID returns the courier viewing the board.
func (q GetCourierBoardQuery) CourierID() int64 { return q.courierID }

// GetCourierBoardQueryOrder is one deliverable order on the board.
type GetCourierBoardQueryOrder struct {
	ID            int64
	BuyerName     string
	PaymentMethod string
	Total         float64
	CreatedAt     time.Time
}

// GetCourierBoardQueryResponse groups the board into claimable work and
// the courier's own active deliveries.
type GetCourierBoardQueryResponse struct {
	Available []GetCourierBoardQueryOrder
	Mine      []GetCourierBoardQueryOrder
}
