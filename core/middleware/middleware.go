package middleware

import (
	"context"
	"net/http"
	"strings"

	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/controller"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/utils"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middlewares.
const (
	ContextKeyAuthID   = "authID"
	ContextKeyEmail    = "authEmail"
	ContextKeyAuthType = "authType"
	ContextKeyToken    = "authToken"
)

// TokenVerifier is implemented by the auth service; the middleware only
// needs parse-and-check semantics.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string, wantType string) (*utils.TokenClaims, *errors.AppError)
}

type Middleware struct {
	verifier TokenVerifier
}

func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{verifier: verifier}
}

// AuthMiddleware accepts any valid token (user or club). Event creation
// takes either organizer kind.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return m.require("")
}

// UserAuthMiddleware accepts user tokens only.
func (m *Middleware) UserAuthMiddleware() echo.MiddlewareFunc {
	return m.require(constants.TokenTypeUser)
}

// ClubAuthMiddleware accepts club tokens only.
func (m *Middleware) ClubAuthMiddleware() echo.MiddlewareFunc {
	return m.require(constants.TokenTypeClub)
}

func (m *Middleware) require(wantType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, appErr := extractBearerToken(c)
			if appErr != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, appErr.Code, appErr.Message)
			}

			claims, appErr := m.verifier.VerifyToken(c.Request().Context(), token, wantType)
			if appErr != nil {
				status := http.StatusUnauthorized
				if appErr.Code == errors.ErrForbidden {
					status = http.StatusForbidden
				}
				return controller.NewErrorResponse(status, appErr.Code, appErr.Message)
			}

			c.Set(ContextKeyAuthID, claims.UserID)
			c.Set(ContextKeyEmail, claims.Email)
			c.Set(ContextKeyAuthType, claims.Type)
			c.Set(ContextKeyToken, token)
			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) (string, *errors.AppError) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.NewAppError(errors.ErrMissingAuthorizationHeader, "missing authorization header", nil)
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.NewAppError(errors.ErrInvalidTokenFormat, "authorization header must be a bearer token", nil)
	}
	return parts[1], nil
}
