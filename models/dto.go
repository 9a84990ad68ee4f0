package models

import "github.com/shopspring/decimal"

type LoginRequest struct {
	PIN string `json:"pin" form:"pin" binding:"required"`
}

type AddCartItemRequest struct {
	Name       string           `json:"name" binding:"required"`
	Unit       string           `json:"unit" binding:"required,oneof=kg unit"`
	Quantity   decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	PromoQty   *decimal.Decimal `json:"promo_qty"`
	PromoPrice *decimal.Decimal `json:"promo_price"`
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" form:"customer_name" binding:"required"`
	Phone           string `json:"phone" form:"phone" binding:"required"`
	Place           string `json:"place" form:"place" binding:"required,oneof=pickup delivery"`
	PickupTime      string `json:"pickup_time" form:"pickup_time"`
	DeliveryAddress string `json:"delivery_address" form:"delivery_address"`
	PaymentMethod   string `json:"payment_method" form:"payment_method"`
	Note            string `json:"note" form:"note"`
}

type CreateProductRequest struct {
	Name       string           `json:"name" form:"name" binding:"required"`
	Category   string           `json:"category" form:"category" binding:"required"`
	Unit       string           `json:"unit" form:"unit" binding:"required,oneof=kg unit"`
	Price      decimal.Decimal  `json:"price" form:"price" binding:"required"`
	PromoQty   *decimal.Decimal `json:"promo_qty" form:"promo_qty"`
	PromoPrice *decimal.Decimal `json:"promo_price" form:"promo_price"`
	Image      string           `json:"image" form:"image"`
}

type UpdateProductRequest struct {
	Name       string           `json:"name" form:"name"`
	Category   string           `json:"category" form:"category"`
	Unit       string           `json:"unit" form:"unit" binding:"omitempty,oneof=kg unit"`
	Price      *decimal.Decimal `json:"price" form:"price"`
	PromoQty   *decimal.Decimal `json:"promo_qty" form:"promo_qty"`
	PromoPrice *decimal.Decimal `json:"promo_price" form:"promo_price"`
	Image      string           `json:"image" form:"image"`
}

type CreateReviewRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Rating  int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" form:"comment" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required,oneof=fulfilled"`
}
