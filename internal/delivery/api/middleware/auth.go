package middleware

import (
	"net/http"
	"strings"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"

	"github.com/labstack/echo/v4"
)

var (
	errMissingToken = domainerrors.NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header is missing", "")
	errBadScheme    = domainerrors.NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token format, must be Bearer token", "")
	errBadToken     = domainerrors.NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", "")
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errMissingToken
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			return errBadScheme
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return errBadToken
		}

		userID, err := claims.UserID()
		if err != nil {
			return errBadToken
		}

		deliverycontext.SetPrincipal(c, userID, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequirePermission rejects callers whose roles do not grant permission.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(permission entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.GetRoles(c).Can(permission) {
				return domainerrors.ErrForbidden.WithDetails("requires " + string(permission))
			}

			return next(c)
		}
	}
}
