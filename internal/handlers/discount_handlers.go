package handlers

import (
	"net/http"
	"time"

	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// DiscountHandlers handles vendor discount management and menu linking.
type DiscountHandlers struct {
	discountService services.DiscountServiceInterface
	vendorService   services.VendorServiceInterface
}

func NewDiscountHandlers(discountService services.DiscountServiceInterface, vendorService services.VendorServiceInterface) *DiscountHandlers {
	return &DiscountHandlers{
		discountService: discountService,
		vendorService:   vendorService,
	}
}

type discountRequest struct {
	Name     string    `json:"name"`
	Percent  int       `json:"percent"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// ListDiscounts handles GET /vendor/discounts
func (h *DiscountHandlers) ListDiscounts(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	discounts, err := h.discountService.ListDiscounts(c.Request().Context(), vendor.ID)
	if err != nil {
		return sendServiceError(c, err, "discount")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"discounts": discounts,
		"count":     len(discounts),
	})
}

// GetDiscount handles GET /vendor/discounts/:id
func (h *DiscountHandlers) GetDiscount(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	discountID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	discount, err := h.discountService.GetDiscount(c.Request().Context(), vendor.ID, discountID)
	if err != nil {
		return sendServiceError(c, err, "discount")
	}
	return c.JSON(http.StatusOK, discount)
}

// CreateDiscount handles POST /vendor/discounts
func (h *DiscountHandlers) CreateDiscount(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req discountRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	discount := &models.Discount{
		Name:     req.Name,
		Percent:  req.Percent,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if err := h.discountService.CreateDiscount(c.Request().Context(), vendor.ID, discount); err != nil {
		return sendServiceError(c, err, "discount")
	}
	return c.JSON(http.StatusCreated, discount)
}

// UpdateDiscount handles PUT /vendor/discounts/:id
func (h *DiscountHandlers) UpdateDiscount(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	discountID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req discountRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	discount := &models.Discount{
		ID:       discountID,
		Name:     req.Name,
		Percent:  req.Percent,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if err := h.discountService.UpdateDiscount(c.Request().Context(), vendor.ID, discount); err != nil {
		return sendServiceError(c, err, "discount")
	}
	return c.JSON(http.StatusOK, discount)
}

// DeleteDiscount handles DELETE /vendor/discounts/:id
func (h *DiscountHandlers) DeleteDiscount(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	discountID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.discountService.DeleteDiscount(c.Request().Context(), vendor.ID, discountID); err != nil {
		return sendServiceError(c, err, "discount")
	}
	return c.NoContent(http.StatusNoContent)
}

// LinkMenu handles POST /vendor/discounts/:id/menus/:menuID
func (h *DiscountHandlers) LinkMenu(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	discountID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	menuID, err := common.ValidateUUID(c.Param("menuID"), "menuID")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.discountService.LinkMenu(c.Request().Context(), vendor.ID, discountID, menuID); err != nil {
		return sendServiceError(c, err, "discount")
	}
	return c.NoContent(http.StatusCreated)
}

// UnlinkMenu handles DELETE /vendor/discounts/:id/menus/:menuID
func (h *DiscountHandlers) UnlinkMenu(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	discountID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	menuID, err := common.ValidateUUID(c.Param("menuID"), "menuID")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.discountService.UnlinkMenu(c.Request().Context(), vendor.ID, discountID, menuID); err != nil {
		return sendServiceError(c, err, "discount")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMenuDiscounts handles GET /menus/:id/discounts
func (h *DiscountHandlers) ListMenuDiscounts(c echo.Context) error {
	menuID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	discounts, err := h.discountService.ListMenuDiscounts(c.Request().Context(), menuID)
	if err != nil {
		return sendServiceError(c, err, "discount")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"discounts": discounts,
		"count":     len(discounts),
	})
}
