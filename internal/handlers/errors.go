package handlers

import (
	"errors"

	"kantinku/internal/common"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// sendServiceError maps a service-layer error onto the HTTP error envelope.
func sendServiceError(c echo.Context, err error, resource string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return common.SendNotFoundError(c, resource)
	case errors.Is(err, services.ErrForbidden):
		return common.SendForbiddenError(c, "You do not own this "+resource)
	case errors.Is(err, services.ErrInvalidInput):
		return common.SendClientError(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		return common.SendConflictError(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		return common.SendConflictError(c, err.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		return common.SendUnauthorizedError(c)
	default:
		return common.SendServerError(c, "Internal server error")
	}
}
