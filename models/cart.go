package models

import "github.com/shopspring/decimal"

// Unit values accepted for a cart line.
const (
	UnitKg   = "kg"
	UnitEach = "unit"
)

// CartLine is one entry in a session cart. Totals are always derived from the
// price fields, never stored here.
type CartLine struct {
	Name       string           `json:"name"`
	Unit       string           `json:"unit"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	PromoQty   *decimal.Decimal `json:"promo_qty,omitempty"`
	PromoPrice *decimal.Decimal `json:"promo_price,omitempty"`
}

// Cart is the ordered set of lines for one customer session. It is a plain
// value: the web layer loads it from the session store, hands it to the cart
// service and stores the result back.
type Cart struct {
	Lines []CartLine `json:"lines"`
}
