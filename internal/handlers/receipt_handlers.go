package handlers

import (
	"net/http"

	"kantinku/internal/common"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// ReceiptHandlers serves order receipts as JSON, HTML, and PDF.
type ReceiptHandlers struct {
	orderService   services.OrderServiceInterface
	receiptService services.ReceiptServiceInterface
	studentService services.StudentServiceInterface
}

func NewReceiptHandlers(orderService services.OrderServiceInterface, receiptService services.ReceiptServiceInterface, studentService services.StudentServiceInterface) *ReceiptHandlers {
	return &ReceiptHandlers{
		orderService:   orderService,
		receiptService: receiptService,
		studentService: studentService,
	}
}

func (h *ReceiptHandlers) buildReceipt(c echo.Context) (*services.Receipt, error) {
	student, ok := studentFromContext(c, h.studentService)
	if !ok {
		return nil, echo.ErrUnauthorized
	}
	orderID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return nil, services.ErrInvalidInput
	}
	return h.orderService.BuildReceipt(c.Request().Context(), student.ID, orderID)
}

// GetReceipt handles GET /orders/:id/receipt
func (h *ReceiptHandlers) GetReceipt(c echo.Context) error {
	receipt, err := h.buildReceipt(c)
	if err != nil {
		if err == echo.ErrUnauthorized {
			return common.SendUnauthorizedError(c)
		}
		return sendServiceError(c, err, "order")
	}
	return c.JSON(http.StatusOK, receipt)
}

// GetReceiptHTML handles GET /orders/:id/receipt/html
func (h *ReceiptHandlers) GetReceiptHTML(c echo.Context) error {
	receipt, err := h.buildReceipt(c)
	if err != nil {
		if err == echo.ErrUnauthorized {
			return common.SendUnauthorizedError(c)
		}
		return sendServiceError(c, err, "order")
	}

	html, err := h.receiptService.RenderHTML(receipt)
	if err != nil {
		return common.SendServerError(c, "Failed to render receipt")
	}
	return c.HTML(http.StatusOK, html)
}

// GetReceiptPDF handles GET /orders/:id/receipt/pdf
// The PDF is stored in object storage; the response carries a presigned
// download URL rather than the document itself.
func (h *ReceiptHandlers) GetReceiptPDF(c echo.Context) error {
	receipt, err := h.buildReceipt(c)
	if err != nil {
		if err == echo.ErrUnauthorized {
			return common.SendUnauthorizedError(c)
		}
		return sendServiceError(c, err, "order")
	}

	url, err := h.receiptService.StorePDF(c.Request().Context(), receipt)
	if err != nil {
		return common.SendServerError(c, "Failed to generate receipt PDF")
	}
	return c.JSON(http.StatusOK, map[string]string{"pdf_url": url})
}
