package handlers

import (
	"net/http"

	"kantinku/internal/analytics"
	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandlers handles order placement, listings, status updates, and
// monthly reporting.
type OrderHandlers struct {
	orderService     services.OrderServiceInterface
	studentService   services.StudentServiceInterface
	vendorService    services.VendorServiceInterface
	analyticsService analytics.Service
}

func NewOrderHandlers(orderService services.OrderServiceInterface, studentService services.StudentServiceInterface, vendorService services.VendorServiceInterface, analyticsService analytics.Service) *OrderHandlers {
	return &OrderHandlers{
		orderService:     orderService,
		studentService:   studentService,
		vendorService:    vendorService,
		analyticsService: analyticsService,
	}
}

func statusFilter(c echo.Context) *models.OrderStatus {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil
	}
	status := models.OrderStatus(raw)
	return &status
}

// PlaceOrder handles POST /orders
func (h *OrderHandlers) PlaceOrder(c echo.Context) error {
	student, ok := studentFromContext(c, h.studentService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		VendorID string               `json:"vendor_id"`
		Items    []services.OrderLine `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	vendorID, err := common.ValidateUUID(req.VendorID, "vendor_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), student.ID, vendorID, req.Items)
	if err != nil {
		return sendServiceError(c, err, "menu")
	}
	return c.JSON(http.StatusCreated, order)
}

// ListStudentOrders handles GET /orders
func (h *OrderHandlers) ListStudentOrders(c echo.Context) error {
	student, ok := studentFromContext(c, h.studentService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	orders, err := h.orderService.ListStudentOrders(c.Request().Context(), student.ID, statusFilter(c))
	if err != nil {
		return sendServiceError(c, err, "order")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetStudentOrder handles GET /orders/:id
func (h *OrderHandlers) GetStudentOrder(c echo.Context) error {
	student, ok := studentFromContext(c, h.studentService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	orderID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	order, err := h.orderService.GetStudentOrder(c.Request().Context(), student.ID, orderID)
	if err != nil {
		return sendServiceError(c, err, "order")
	}
	return c.JSON(http.StatusOK, order)
}

// StudentMonthlyHistory handles GET /orders/history/:month (MM-YYYY)
func (h *OrderHandlers) StudentMonthlyHistory(c echo.Context) error {
	student, ok := studentFromContext(c, h.studentService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	start, end, err := common.ParseMonthParam(c.Param("month"))
	if err != nil {
		return common.SendValidationError(c, "month", err.Error())
	}

	orders, err := h.orderService.StudentMonthlyHistory(c.Request().Context(), student.ID, start, end)
	if err != nil {
		return sendServiceError(c, err, "order")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// ListVendorOrders handles GET /vendor/orders
func (h *OrderHandlers) ListVendorOrders(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	orders, err := h.orderService.ListVendorOrders(c.Request().Context(), vendor.ID, statusFilter(c))
	if err != nil {
		return sendServiceError(c, err, "order")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetVendorOrder handles GET /vendor/orders/:id
func (h *OrderHandlers) GetVendorOrder(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	orderID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	order, err := h.orderService.GetVendorOrder(c.Request().Context(), vendor.ID, orderID)
	if err != nil {
		return sendServiceError(c, err, "order")
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus handles PATCH /vendor/orders/:id/status
func (h *OrderHandlers) UpdateOrderStatus(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	orderID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), vendor.ID, orderID, models.OrderStatus(req.Status))
	if err != nil {
		return sendServiceError(c, err, "order")
	}
	return c.JSON(http.StatusOK, order)
}

// VendorMonthlyHistory handles GET /vendor/orders/history/:month (MM-YYYY)
func (h *OrderHandlers) VendorMonthlyHistory(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	start, end, err := common.ParseMonthParam(c.Param("month"))
	if err != nil {
		return common.SendValidationError(c, "month", err.Error())
	}

	orders, err := h.orderService.VendorMonthlyHistory(c.Request().Context(), vendor.ID, start, end)
	if err != nil {
		return sendServiceError(c, err, "order")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// VendorMonthlyReport handles GET /vendor/reports/:month (MM-YYYY)
func (h *OrderHandlers) VendorMonthlyReport(c echo.Context) error {
	vendor, ok := vendorFromContext(c, h.vendorService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	start, _, err := common.ParseMonthParam(c.Param("month"))
	if err != nil {
		return common.SendValidationError(c, "month", err.Error())
	}

	report, err := h.analyticsService.VendorMonthlyReport(c.Request().Context(), vendor.ID, int(start.Month()), start.Year())
	if err != nil {
		return sendServiceError(c, err, "report")
	}
	return c.JSON(http.StatusOK, report)
}
