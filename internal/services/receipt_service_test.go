package services

import (
	"testing"
	"time"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1500, "Rp 1.500"},
		{1500000, "Rp 1.500.000"},
		{123456789, "Rp 123.456.789"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRupiah(tt.amount))
	}
}

func sampleReceipt() *Receipt {
	return &Receipt{
		OrderID:     uuid.New(),
		StallName:   "Stan Bu Yati",
		StudentName: "Budi",
		Status:      models.StatusArrived,
		PlacedAt:    time.Date(2026, 3, 15, 12, 30, 0, 0, time.Local),
		Items: []*ReceiptLine{
			{MenuName: "Nasi Goreng", Quantity: 2, UnitPrice: 13500, Subtotal: 27000},
			{MenuName: "Es Teh", Quantity: 3, UnitPrice: 4250, Subtotal: 12750},
		},
		Total: 39750,
	}
}

func TestRenderHTML(t *testing.T) {
	svc := NewReceiptService(nil)

	html, err := svc.RenderHTML(sampleReceipt())
	assert.NoError(t, err)
	assert.Contains(t, html, "Stan Bu Yati")
	assert.Contains(t, html, "Budi")
	assert.Contains(t, html, "Nasi Goreng")
	assert.Contains(t, html, "Rp 39.750")
}

func TestRenderPDF(t *testing.T) {
	svc := NewReceiptService(nil)

	data, err := svc.RenderPDF(sampleReceipt())
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	// A PDF document starts with the %PDF magic.
	assert.Equal(t, "%PDF", string(data[:4]))
}
