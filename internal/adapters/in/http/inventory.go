package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type storeInventoryResponse struct {
	Items         []queries.GetStoreInventoryQueryItem `json:"items"`
	LowStockCount int                                  `json:"low_stock_count"`
	Notices       []string                             `json:"notices,omitempty"`
}

// StoreInventory handles GET /inventory/dashboard.
func (s *Server) StoreInventory(ctx echo.Context) error {
	query, err := queries.NewGetStoreInventoryQuery(requestAccount(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	inventory, err := s.handlers.GetStoreInventory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	notices, _ := s.sessions.PopNotices(ctx.Request().Context(), requestSession(ctx))
	return ctx.JSON(http.StatusOK, storeInventoryResponse{
		Items:         inventory.Items,
		LowStockCount: inventory.LowStockCount,
		Notices:       notices,
	})
}

// AddItem handles POST /inventory/add as a multipart form so the listing
// image can ride along. The upload is stored first; a listing whose
// validation then fails leaves an orphaned file behind, which is harmless.
func (s *Server) AddItem(ctx echo.Context) error {
	price, err := strconv.ParseFloat(ctx.FormValue("price"), 64)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("price", err))
	}

	stock := 0
	if raw := ctx.FormValue("stock"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("stock", err))
		}
	}

	kind, err := item.KindFromString(ctx.FormValue("kind"))
	if err != nil {
		return respondError(ctx, err)
	}

	imageRef := ""
	if upload, err := ctx.FormFile("image"); err == nil {
		src, err := upload.Open()
		if err != nil {
			return respondError(ctx, err)
		}
		defer src.Close()

		imageRef, err = s.files.Save(ctx.Request().Context(), upload.Filename, src)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	cmd, err := commands.NewAddItemCommand(
		requestAccount(ctx).ID(),
		ctx.FormValue("name"),
		price,
		ctx.FormValue("description"),
		ctx.FormValue("category"),
		imageRef,
		kind,
		stock,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return s.redirectWithNotice(ctx, requestSession(ctx), "Listing published", "/inventory/dashboard")
}

type adjustStockRequest struct {
	ItemID   int64 `json:"item_id" form:"item_id"`
	NewStock int   `json:"new_stock" form:"new_stock"`
}

// AdjustStock handles POST /inventory/adjust, setting an absolute stock
// level on one of the store's own listings.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var req adjustStockRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewAdjustStockCommand(req.ItemID, req.NewStock, requestAccount(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AdjustStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return s.redirectWithNotice(ctx, requestSession(ctx), "Stock updated", "/inventory/dashboard")
}

type salesHistoryResponse struct {
	Sales   []queries.GetSalesHistoryQuerySale `json:"sales"`
	Revenue float64                            `json:"revenue"`
}

// SalesHistory handles GET /inventory/sales.
func (s *Server) SalesHistory(ctx echo.Context) error {
	query, err := queries.NewGetSalesHistoryQuery(requestAccount(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	sales, err := s.handlers.GetSalesHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, salesHistoryResponse{
		Sales:   sales.Sales,
		Revenue: sales.Revenue,
	})
}
