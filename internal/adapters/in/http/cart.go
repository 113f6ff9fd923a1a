package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type cartItemRequest struct {
	ItemID int64 `json:"item_id" form:"item_id"`
}

type checkoutRequest struct {
	Mode          string `json:"mode" form:"mode"`
	PaymentMethod string `json:"payment_method" form:"payment_method"`
}

// ViewCart handles GET /cart.
func (s *Server) ViewCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(requestSession(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	cart, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, cart)
}

// AddToCart handles POST /cart/add. Each call adds one unit.
func (s *Server) AddToCart(ctx echo.Context) error {
	var req cartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewAddToCartCommand(
		requestSession(ctx), req.ItemID, requestAccount(ctx).Role())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return s.redirectWithNotice(ctx, requestSession(ctx), "Added to cart", "/catalog")
}

// RemoveFromCart handles POST /cart/remove. One unit per call; removing an
// item that is not in the cart is a no-op.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	var req cartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRemoveFromCartCommand(requestSession(ctx), req.ItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RemoveFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Redirect(http.StatusSeeOther, "/cart")
}

// ClearCart handles POST /cart/clear.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(requestSession(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Redirect(http.StatusSeeOther, "/cart")
}

// Checkout handles POST /cart/checkout, turning the session cart into a
// pending order.
func (s *Server) Checkout(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	mode, err := order.DeliveryModeFromString(req.Mode)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(
		requestSession(ctx), requestAccount(ctx).ID(), mode, req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return s.redirectWithNotice(ctx, requestSession(ctx), "Order placed", "/orders")
}

type customerOrdersResponse struct {
	Orders  []queries.GetCustomerOrdersQueryResponse `json:"orders"`
	Notices []string                                 `json:"notices,omitempty"`
}

// CustomerOrders handles GET /orders, the buyer's order history.
func (s *Server) CustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(requestAccount(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	notices, _ := s.sessions.PopNotices(ctx.Request().Context(), requestSession(ctx))
	return ctx.JSON(http.StatusOK, customerOrdersResponse{Orders: orders, Notices: notices})
}
