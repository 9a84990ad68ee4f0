package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
)

const (
	PlacePickup   = "pickup"
	PlaceDelivery = "delivery"
)

// Order is a confirmed customer order. DailyNumber restarts every calendar
// day; (OrderDate, DailyNumber) is unique across all orders.
type Order struct {
	ID              int             `json:"id"`
	DailyNumber     int             `json:"daily_number"`
	OrderDate       string          `json:"order_date"`
	CustomerName    string          `json:"customer_name"`
	Phone           string          `json:"phone"`
	Place           string          `json:"place"`
	PickupTime      *string         `json:"pickup_time,omitempty"`
	DeliveryAddress *string         `json:"delivery_address,omitempty"`
	PaymentMethod   string          `json:"payment_method"`
	Note            *string         `json:"note,omitempty"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	Items           []OrderItem     `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem is written together with its order and never mutated afterwards.
type OrderItem struct {
	ID          int             `json:"id"`
	OrderID     int             `json:"order_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}
