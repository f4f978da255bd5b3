package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptServiceInterface renders receipts as PDF and HTML documents. PDFs
// are stored in object storage and served through presigned URLs.
type ReceiptServiceInterface interface {
	RenderPDF(receipt *Receipt) ([]byte, error)
	RenderHTML(receipt *Receipt) (string, error)
	StorePDF(ctx context.Context, receipt *Receipt) (string, error)
}

type receiptService struct {
	storage MinioService
}

func NewReceiptService(storage MinioService) ReceiptServiceInterface {
	return &receiptService{storage: storage}
}

// formatRupiah renders a whole-rupiah amount with thousands separators,
// e.g. 1500000 -> "Rp 1.500.000".
func formatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return "Rp " + string(out)
}

func (s *receiptService) RenderPDF(receipt *Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.SetXY(marginX, marginY)
	pdf.Cell(0, 10, "KANTINKU RECEIPT")
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order ID: %s", receipt.OrderID.String()))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", receipt.PlacedAt.Format("02-Jan-2006 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Stall: %s", receipt.StallName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Student: %s", receipt.StudentName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", receipt.Status))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	headers := []string{"Item", "Qty", "Unit Price", "Subtotal"}
	colWidths := []float64{80, 20, 35, 35}
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(255, 255, 255)
	for _, line := range receipt.Items {
		pdf.CellFormat(colWidths[0], 8, line.MenuName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, formatRupiah(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, formatRupiah(line.Subtotal), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 8, "TOTAL", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, formatRupiah(receipt.Total), "1", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"rupiah": formatRupiah,
}).Parse(`<!DOCTYPE html>
<html>
<head><title>Receipt {{.OrderID}}</title></head>
<body>
<h1>Kantinku Receipt</h1>
<p>Order: {{.OrderID}}<br>
Date: {{.PlacedAt.Format "02-Jan-2006 15:04"}}<br>
Stall: {{.StallName}}<br>
Student: {{.StudentName}}<br>
Status: {{.Status}}</p>
<table border="1" cellpadding="4">
<tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Subtotal</th></tr>
{{range .Items}}<tr><td>{{.MenuName}}</td><td>{{.Quantity}}</td><td>{{rupiah .UnitPrice}}</td><td>{{rupiah .Subtotal}}</td></tr>
{{end}}<tr><td colspan="3"><b>TOTAL</b></td><td><b>{{rupiah .Total}}</b></td></tr>
</table>
</body>
</html>`))

func (s *receiptService) RenderHTML(receipt *Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, receipt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// StorePDF renders the receipt, uploads it, and returns a presigned download
// URL valid for 24 hours.
func (s *receiptService) StorePDF(ctx context.Context, receipt *Receipt) (string, error) {
	data, err := s.RenderPDF(receipt)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("receipt-%s.pdf", receipt.OrderID.String())
	if err := s.storage.Upload(ctx, BucketReceipts, objectName, "application/pdf", bytes.NewReader(data), int64(len(data))); err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, BucketReceipts, objectName, 24*time.Hour)
}
