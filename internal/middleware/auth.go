package middleware

import (
	"strings"

	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// JWT authenticates requests with a Bearer token and stores the caller's
// identity on the request context.
func JWT(authService services.AuthServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return common.SendUnauthorizedError(c)
			}

			userID, role, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return common.SendUnauthorizedError(c)
			}

			ctx := common.WithIdentity(c.Request().Context(), userID, role)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireStudent allows only SISWA accounts through.
func RequireStudent() echo.MiddlewareFunc {
	return requireRole(models.RoleStudent)
}

// RequireVendor allows only ADMIN_STAN accounts through.
func RequireVendor() echo.MiddlewareFunc {
	return requireRole(models.RoleVendor)
}

func requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actual, ok := common.GetRoleFromContext(c.Request().Context())
			if !ok {
				return common.SendUnauthorizedError(c)
			}
			if actual != role {
				return common.SendForbiddenError(c, "This operation is not available for your account type")
			}
			return next(c)
		}
	}
}
