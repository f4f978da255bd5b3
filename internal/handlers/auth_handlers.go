package handlers

import (
	"net/http"

	"kantinku/internal/common"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles registration and login.
type AuthHandlers struct {
	authService services.AuthServiceInterface
}

func NewAuthHandlers(authService services.AuthServiceInterface) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// RegisterStudent handles POST /auth/register/student
func (h *AuthHandlers) RegisterStudent(c echo.Context) error {
	var req services.RegisterStudentInput
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Username, "username"); err != nil {
		return common.SendValidationError(c, "username", err.Error())
	}
	if len(req.Password) < 8 {
		return common.SendValidationError(c, "password", "password must be at least 8 characters")
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	student, err := h.authService.RegisterStudent(c.Request().Context(), &req)
	if err != nil {
		return sendServiceError(c, err, "student")
	}
	return c.JSON(http.StatusCreated, student)
}

// RegisterVendor handles POST /auth/register/vendor
func (h *AuthHandlers) RegisterVendor(c echo.Context) error {
	var req services.RegisterVendorInput
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Username, "username"); err != nil {
		return common.SendValidationError(c, "username", err.Error())
	}
	if len(req.Password) < 8 {
		return common.SendValidationError(c, "password", "password must be at least 8 characters")
	}
	if err := common.ValidateRequiredString(req.StallName, "stall_name"); err != nil {
		return common.SendValidationError(c, "stall_name", err.Error())
	}
	if err := common.ValidateRequiredString(req.OwnerName, "owner_name"); err != nil {
		return common.SendValidationError(c, "owner_name", err.Error())
	}

	vendor, err := h.authService.RegisterVendor(c.Request().Context(), &req)
	if err != nil {
		return sendServiceError(c, err, "vendor")
	}
	return c.JSON(http.StatusCreated, vendor)
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return sendServiceError(c, err, "user")
	}
	return c.JSON(http.StatusOK, token)
}
