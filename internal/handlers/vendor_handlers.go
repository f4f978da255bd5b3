package handlers

import (
	"net/http"

	"kantinku/internal/common"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// VendorHandlers covers the stall's own profile and the public stall listing.
type VendorHandlers struct {
	vendorService services.VendorServiceInterface
}

func NewVendorHandlers(vendorService services.VendorServiceInterface) *VendorHandlers {
	return &VendorHandlers{vendorService: vendorService}
}

// ListVendors handles GET /vendors
func (h *VendorHandlers) ListVendors(c echo.Context) error {
	vendors, err := h.vendorService.List(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err, "vendor")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"vendors": vendors,
		"count":   len(vendors),
	})
}

// GetProfile handles GET /vendor/profile
func (h *VendorHandlers) GetProfile(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	return c.JSON(http.StatusOK, vendor)
}

// UpdateProfile handles PUT /vendor/profile
func (h *VendorHandlers) UpdateProfile(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		StallName string  `json:"stall_name"`
		OwnerName string  `json:"owner_name"`
		Phone     *string `json:"phone"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	vendor.StallName = req.StallName
	vendor.OwnerName = req.OwnerName
	if req.Phone != nil {
		vendor.Phone = req.Phone
	}
	if err := h.vendorService.Update(c.Request().Context(), vendor); err != nil {
		return sendServiceError(c, err, "vendor")
	}
	return c.JSON(http.StatusOK, vendor)
}
