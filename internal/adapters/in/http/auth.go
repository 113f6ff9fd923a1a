package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email    string `json:"email" form:"email"`
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
	Phone    string `json:"phone" form:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterAccount handles POST /auth/register. The plaintext password is
// hashed here; the application layer only ever sees the hash. A successful
// registration logs the account in immediately.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	if req.Password == "" {
		return respondError(ctx, errs.NewValueIsRequiredError("password"))
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterAccountCommand(req.Email, req.Name, string(hash), role, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RegisterAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrEmailAlreadyRegistered) {
			return ctx.JSON(http.StatusConflict, errorResponse{
				Code:    http.StatusConflict,
				Message: "email is already registered",
			})
		}
		return respondError(ctx, err)
	}

	return s.startSession(ctx, req.Email)
}

// Login handles POST /auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	acc, err := s.uowFactory.Create().AccountRepository().GetByEmail(ctx.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.invalidCredentials(ctx)
		}
		return respondError(ctx, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash()), []byte(req.Password)) != nil {
		return s.invalidCredentials(ctx)
	}

	return s.beginSessionFor(ctx, acc.ID())
}

// Logout handles POST /auth/logout. The session, its cart and pending
// notices are all dropped.
func (s *Server) Logout(ctx echo.Context) error {
	cookie, err := ctx.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := s.sessions.Destroy(ctx.Request().Context(), cookie.Value); err != nil {
			return respondError(ctx, err)
		}
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return ctx.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) invalidCredentials(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Message: "invalid email or password",
	})
}

// startSession resolves the freshly registered account and logs it in.
func (s *Server) startSession(ctx echo.Context, email string) error {
	acc, err := s.uowFactory.Create().AccountRepository().GetByEmail(ctx.Request().Context(), email)
	if err != nil {
		return respondError(ctx, err)
	}
	return s.beginSessionFor(ctx, acc.ID())
}

func (s *Server) beginSessionFor(ctx echo.Context, accountID int64) error {
	token, err := s.sessions.Start(ctx.Request().Context(), accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ctx.Redirect(http.StatusSeeOther, "/")
}
