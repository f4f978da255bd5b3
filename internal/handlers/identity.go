package handlers

import (
	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// vendorFromContext resolves the stall profile of the authenticated user.
// The bool result reports whether a response was already written.
func vendorFromContext(c echo.Context, vendorService services.VendorServiceInterface) (*models.Vendor, bool) {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return nil, false
	}
	vendor, err := vendorService.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return nil, false
	}
	return vendor, true
}

// studentFromContext resolves the student profile of the authenticated user.
func studentFromContext(c echo.Context, studentService services.StudentServiceInterface) (*models.Student, bool) {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return nil, false
	}
	student, err := studentService.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return nil, false
	}
	return student, true
}
