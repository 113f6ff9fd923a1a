package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type deliveryOrderRequest struct {
	OrderID int64 `json:"order_id" form:"order_id"`
}

type courierBoardResponse struct {
	Available []queries.GetCourierBoardQueryOrder `json:"available"`
	Mine      []queries.GetCourierBoardQueryOrder `json:"mine"`
	Notices   []string                            `json:"notices,omitempty"`
}

// CourierBoard handles GET /delivery/dashboard: unclaimed ship-mode orders
// plus the courier's own active deliveries.
func (s *Server) CourierBoard(ctx echo.Context) error {
	query, err := queries.NewGetCourierBoardQuery(requestAccount(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	board, err := s.handlers.GetCourierBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	notices, _ := s.sessions.PopNotices(ctx.Request().Context(), requestSession(ctx))
	return ctx.JSON(http.StatusOK, courierBoardResponse{
		Available: board.Available,
		Mine:      board.Mine,
		Notices:   notices,
	})
}

// AcceptOrder handles POST /delivery/accept. Losing the claim race to
// another courier is an expected outcome and comes back as a notice, not
// an error page.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	var req deliveryOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewAcceptOrderCommand(req.OrderID, requestAccount(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return s.redirectWithNotice(ctx, requestSession(ctx), "Delivery accepted", "/delivery/dashboard")
}

// FinalizeOrder handles POST /delivery/finalize, marking an en-route order
// as delivered. Only the assigned courier may finalize.
func (s *Server) FinalizeOrder(ctx echo.Context) error {
	var req deliveryOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewFinalizeOrderCommand(req.OrderID, requestAccount(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.FinalizeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return s.redirectWithNotice(ctx, requestSession(ctx), "Delivery completed", "/delivery/dashboard")
}
