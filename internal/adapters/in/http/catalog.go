package http

import (
	"fmt"
	"net/http"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type catalogResponse struct {
	Items      []queries.GetCatalogQueryResponse `json:"items"`
	Categories []string                          `json:"categories"`
	Notices    []string                          `json:"notices,omitempty"`
}

// Catalog handles GET /catalog with optional ?category= and ?q= filters.
// Visible entries are services plus products with stock on hand; the
// category list covers visible items only so the filter UI never offers
// an empty category.
func (s *Server) Catalog(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery(
		ctx.QueryParam("category"),
		ctx.QueryParam("q"),
	)

	items, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	categories, err := s.handlers.GetCategories.Handle(
		ctx.Request().Context(), queries.NewGetCategoriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	resp := catalogResponse{Items: items, Categories: categories}
	if _, sessionID, err := s.currentAccount(ctx); err == nil {
		resp.Notices, _ = s.sessions.PopNotices(ctx.Request().Context(), sessionID)
	}

	return ctx.JSON(http.StatusOK, resp)
}

type catalogFeedEntry struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	StoreName string  `json:"storeName"`
	Category  string  `json:"category"`
	ImageURL  string  `json:"imageUrl"`
}

type catalogFeedResponse struct {
	Status string             `json:"status"`
	Count  int                `json:"count"`
	Data   []catalogFeedEntry `json:"data"`
}

// CatalogFeed handles GET /api/catalog-feed, the public machine-readable
// catalog. Field names and types are a stable contract for external
// consumers; image URLs are absolute.
func (s *Server) CatalogFeed(ctx echo.Context) error {
	items, err := s.handlers.GetCatalog.Handle(
		ctx.Request().Context(), queries.NewGetCatalogQuery("", ""))
	if err != nil {
		return respondError(ctx, err)
	}

	data := make([]catalogFeedEntry, 0, len(items))
	for _, it := range items {
		data = append(data, catalogFeedEntry{
			ID:        it.ID,
			Name:      it.Name,
			Price:     it.Price,
			StoreName: it.StoreName,
			Category:  it.Category,
			ImageURL:  fmt.Sprintf("%s/uploads/%s", s.baseURL, it.Image),
		})
	}

	return ctx.JSON(http.StatusOK, catalogFeedResponse{
		Status: "ok",
		Count:  len(data),
		Data:   data,
	})
}
