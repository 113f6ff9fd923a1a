// Package http exposes the marketplace over echo: public catalog and auth
// routes plus the role-gated customer, courier and store surfaces. All
// responses are JSON; flows that the browser drives (auth, role mismatch)
// answer with a 303 redirect and a flash notice instead of a hard error.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const sessionCookieName = "session_token"

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	RegisterAccount commands.RegisterAccountCommandHandler
	AddItem         commands.AddItemCommandHandler
	AdjustStock     commands.AdjustStockCommandHandler
	AddToCart       commands.AddToCartCommandHandler
	RemoveFromCart  commands.RemoveFromCartCommandHandler
	ClearCart       commands.ClearCartCommandHandler
	Checkout        commands.CheckoutCommandHandler
	AcceptOrder     commands.AcceptOrderCommandHandler
	FinalizeOrder   commands.FinalizeOrderCommandHandler

	GetCatalog        queries.GetCatalogQueryHandler
	GetCategories     queries.GetCategoriesQueryHandler
	GetCart           queries.GetCartQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetCourierBoard   queries.GetCourierBoardQueryHandler
	GetStoreInventory queries.GetStoreInventoryQueryHandler
	GetSalesHistory   queries.GetSalesHistoryQueryHandler
}

// Server coordinates between HTTP requests and the application use cases.
type Server struct {
	handlers   Handlers
	sessions   ports.SessionStore
	files      ports.FileStore
	uowFactory ports.UnitOfWorkFactory
	baseURL    string
}

// NewServer creates the HTTP server. baseURL is the externally visible
// origin used to build absolute image URLs in the catalog feed.
func NewServer(
	handlers Handlers,
	sessions ports.SessionStore,
	files ports.FileStore,
	uowFactory ports.UnitOfWorkFactory,
	baseURL string,
) *Server {
	return &Server{
		handlers:   handlers,
		sessions:   sessions,
		files:      files,
		uowFactory: uowFactory,
		baseURL:    baseURL,
	}
}

// RegisterRoutes wires every route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(MetricsMiddleware())

	e.GET("/", s.Landing)
	e.GET("/health", s.Health)
	e.GET("/metrics", MetricsHandler())

	e.POST("/auth/register", s.RegisterAccount)
	e.POST("/auth/login", s.Login)
	e.POST("/auth/logout", s.Logout)

	e.GET("/catalog", s.Catalog)
	e.GET("/api/catalog-feed", s.CatalogFeed)

	e.GET("/cart", s.ViewCart, s.RequireBuyer)
	e.POST("/cart/add", s.AddToCart, s.RequireBuyer)
	e.POST("/cart/remove", s.RemoveFromCart, s.RequireBuyer)
	e.POST("/cart/clear", s.ClearCart, s.RequireBuyer)
	e.POST("/cart/checkout", s.Checkout, s.RequireBuyer)
	e.GET("/orders", s.CustomerOrders, s.RequireBuyer)

	e.GET("/delivery/dashboard", s.CourierBoard, s.RequireRole(account.Courier))
	e.POST("/delivery/accept", s.AcceptOrder, s.RequireRole(account.Courier))
	e.POST("/delivery/finalize", s.FinalizeOrder, s.RequireRole(account.Courier))

	e.GET("/inventory/dashboard", s.StoreInventory, s.RequireRole(account.Store))
	e.POST("/inventory/add", s.AddItem, s.RequireRole(account.Store))
	e.POST("/inventory/adjust", s.AdjustStock, s.RequireRole(account.Store))
	e.GET("/inventory/sales", s.SalesHistory, s.RequireRole(account.Store))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Landing handles GET / and routes each role to its home surface.
// Anonymous visitors land on the public catalog.
func (s *Server) Landing(ctx echo.Context) error {
	acc, _, err := s.currentAccount(ctx)
	if err != nil {
		return ctx.Redirect(http.StatusSeeOther, "/catalog")
	}

	switch acc.Role() {
	case account.Store:
		return ctx.Redirect(http.StatusSeeOther, "/inventory/dashboard")
	case account.Courier:
		return ctx.Redirect(http.StatusSeeOther, "/delivery/dashboard")
	default:
		return ctx.Redirect(http.StatusSeeOther, "/catalog")
	}
}

// currentAccount resolves the session cookie to the logged-in account.
// Returns an object-not-found error when there is no valid session.
func (s *Server) currentAccount(ctx echo.Context) (*account.Account, string, error) {
	cookie, err := ctx.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, "", errs.NewObjectNotFoundError("session", "")
	}

	accountID, err := s.sessions.AccountID(ctx.Request().Context(), cookie.Value)
	if err != nil {
		return nil, "", err
	}

	acc, err := s.uowFactory.Create().AccountRepository().Get(ctx.Request().Context(), accountID)
	if err != nil {
		return nil, "", err
	}
	return acc, cookie.Value, nil
}

// redirectWithNotice queues a flash notice for the session and answers with
// a 303 redirect. Role mismatches always go this way, never a hard 5xx.
func (s *Server) redirectWithNotice(ctx echo.Context, sessionID, notice, target string) error {
	if sessionID != "" {
		_ = s.sessions.PushNotice(ctx.Request().Context(), sessionID, notice)
	}
	return ctx.Redirect(http.StatusSeeOther, target)
}

// RequireRole gates a route on the session holding exactly the given role.
func (s *Server) RequireRole(required account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			acc, sessionID, err := s.currentAccount(ctx)
			if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
				return respondError(ctx, err)
			}

			if account.Authorize(acc, required) != account.Allowed {
				return s.redirectWithNotice(ctx, sessionID,
					"You do not have access to that page", "/")
			}

			ctx.Set(contextKeyAccount, acc)
			ctx.Set(contextKeySession, sessionID)
			return next(ctx)
		}
	}
}

// RequireBuyer gates cart and order routes on a logged-in buying role
// (customer or courier; stores never buy).
func (s *Server) RequireBuyer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		acc, sessionID, err := s.currentAccount(ctx)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return respondError(ctx, err)
		}

		if acc == nil || !acc.Role().CanBuy() {
			return s.redirectWithNotice(ctx, sessionID,
				"Log in with a customer account to shop", "/")
		}

		ctx.Set(contextKeyAccount, acc)
		ctx.Set(contextKeySession, sessionID)
		return next(ctx)
	}
}

const (
	contextKeyAccount = "current_account"
	contextKeySession = "current_session"
)

func requestAccount(ctx echo.Context) *account.Account {
	acc, _ := ctx.Get(contextKeyAccount).(*account.Account)
	return acc
}

func requestSession(ctx echo.Context) string {
	sessionID, _ := ctx.Get(contextKeySession).(string)
	return sessionID
}
