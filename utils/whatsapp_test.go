package utils

import (
	"strings"
	"testing"

	"verduleria/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatFraction(t *testing.T) {
	cases := map[string]string{
		"3":    "3",
		"0.5":  "1/2",
		"2.5":  "5/2",
		"0.75": "3/4",
		"1.25": "5/4",
		"0.1":  "0.1", // no denominator up to 4 fits
	}
	for in, want := range cases {
		got := FormatFraction(decimal.RequireFromString(in))
		assert.Equal(t, want, got, "qty %s", in)
	}
}

func strPtr(s string) *string { return &s }

func sampleOrder() *models.Order {
	return &models.Order{
		DailyNumber:   7,
		OrderDate:     "2025-11-03",
		CustomerName:  "Marta",
		Phone:         "1155550000",
		Place:         models.PlacePickup,
		PickupTime:    strPtr("18:00"),
		PaymentMethod: "Efectivo",
		Total:         decimal.RequireFromString("2200"),
		Items: []models.OrderItem{
			{ProductName: "Manzanas", Quantity: decimal.RequireFromString("3"), Unit: models.UnitKg,
				UnitPrice: decimal.RequireFromString("800"), LineTotal: decimal.RequireFromString("2200")},
		},
	}
}

func TestBuildOrderSummary(t *testing.T) {
	summary := BuildOrderSummary(sampleOrder())

	assert.Contains(t, summary, "Pedido #7")
	assert.Contains(t, summary, "Marta")
	assert.Contains(t, summary, "Retiro en el local: 18:00")
	assert.Contains(t, summary, "- 3 Kg de Manzanas = $2200.00")
	assert.Contains(t, summary, "*Total:* $2200.00")
	assert.Contains(t, summary, "Sin notas")
}

func TestBuildOrderSummary_Delivery(t *testing.T) {
	order := sampleOrder()
	order.Place = models.PlaceDelivery
	order.PickupTime = nil
	order.DeliveryAddress = strPtr("Av. Rivadavia 1234")

	summary := BuildOrderSummary(order)
	assert.Contains(t, summary, "Delivery a: Av. Rivadavia 1234")
	assert.NotContains(t, summary, "Retiro en el local")
}

func TestBuildWhatsAppURL(t *testing.T) {
	url := BuildWhatsAppURL("5491126586256", sampleOrder())

	assert.True(t, strings.HasPrefix(url, "https://wa.me/5491126586256?text="))
	// Payload is query-escaped; the raw summary must not leak through.
	assert.NotContains(t, url, " ")
	assert.NotContains(t, url, "\n")
	assert.Contains(t, url, "Pedido")
}
