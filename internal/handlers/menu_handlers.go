package handlers

import (
	"net/http"
	"strconv"

	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// MenuHandlers handles the public menu browsing endpoints and the vendor's
// own catalog management.
type MenuHandlers struct {
	menuService   services.MenuServiceInterface
	vendorService services.VendorServiceInterface
}

func NewMenuHandlers(menuService services.MenuServiceInterface, vendorService services.VendorServiceInterface) *MenuHandlers {
	return &MenuHandlers{
		menuService:   menuService,
		vendorService: vendorService,
	}
}

type menuRequest struct {
	Name        string  `json:"name"`
	UnitPrice   int64   `json:"unit_price"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

// BrowseMenus handles GET /menus
func (h *MenuHandlers) BrowseMenus(c echo.Context) error {
	filter := &models.MenuSearchFilter{
		Query: c.QueryParam("q"),
	}
	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}
	if c.QueryParam("discounted") == "true" {
		filter.DiscountedOnly = true
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		filter.Offset = offset
	}

	menus, err := h.menuService.BrowseMenus(c.Request().Context(), filter)
	if err != nil {
		return sendServiceError(c, err, "menu")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"menus": menus,
		"count": len(menus),
	})
}

// GetMenu handles GET /menus/:id
func (h *MenuHandlers) GetMenu(c echo.Context) error {
	menuID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	menu, err := h.menuService.GetMenu(c.Request().Context(), menuID)
	if err != nil {
		return sendServiceError(c, err, "menu")
	}
	return c.JSON(http.StatusOK, menu)
}

// ListVendorMenus handles GET /vendor/menus
func (h *MenuHandlers) ListVendorMenus(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	menus, err := h.menuService.ListVendorMenus(c.Request().Context(), vendor.ID)
	if err != nil {
		return sendServiceError(c, err, "menu")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"menus": menus,
		"count": len(menus),
	})
}

// CreateMenu handles POST /vendor/menus
func (h *MenuHandlers) CreateMenu(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item := &models.MenuItem{
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := h.menuService.CreateMenu(c.Request().Context(), vendor.ID, item); err != nil {
		return sendServiceError(c, err, "menu")
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateMenu handles PUT /vendor/menus/:id
func (h *MenuHandlers) UpdateMenu(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	menuID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item := &models.MenuItem{
		ID:          menuID,
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := h.menuService.UpdateMenu(c.Request().Context(), vendor.ID, item); err != nil {
		return sendServiceError(c, err, "menu")
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteMenu handles DELETE /vendor/menus/:id
func (h *MenuHandlers) DeleteMenu(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	menuID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.menuService.DeleteMenu(c.Request().Context(), vendor.ID, menuID); err != nil {
		return sendServiceError(c, err, "menu")
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadMenuPhoto handles POST /vendor/menus/:id/photo
func (h *MenuHandlers) UploadMenuPhoto(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	menuID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return common.SendValidationError(c, "photo", "photo file is required")
	}
	src, err := file.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	url, err := h.menuService.UploadPhoto(c.Request().Context(), vendor.ID, menuID, file.Filename, contentType, src, file.Size)
	if err != nil {
		return sendServiceError(c, err, "menu")
	}
	return c.JSON(http.StatusOK, map[string]string{"photo_url": url})
}
