package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product seeds cart lines. PromoQty/PromoPrice describe a "buy N for a fixed
// bundle price" tier: both set or neither.
type Product struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Category   string           `json:"category"`
	Unit       string           `json:"unit"`
	Price      decimal.Decimal  `json:"price"`
	PromoQty   *decimal.Decimal `json:"promo_qty,omitempty"`
	PromoPrice *decimal.Decimal `json:"promo_price,omitempty"`
	Image      string           `json:"image"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
