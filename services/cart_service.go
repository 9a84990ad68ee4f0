package services

import (
	"verduleria/models"

	"github.com/shopspring/decimal"
)

type CartService struct{}

func NewCartService() *CartService {
	return &CartService{}
}

// Add appends a line to the cart, or, when a line with the same (name, unit)
// already exists, accumulates its quantity. Price and promo fields are
// last-write. Returns the updated cart, its line count and recomputed total.
func (s *CartService) Add(cart models.Cart, line models.CartLine) (models.Cart, int, decimal.Decimal, error) {
	if line.Quantity.Sign() <= 0 {
		return cart, 0, decimal.Zero, models.ErrInvalidQuantity
	}
	if line.UnitPrice.Sign() < 0 {
		return cart, 0, decimal.Zero, models.ErrInvalidQuantity
	}
	if (line.PromoQty == nil) != (line.PromoPrice == nil) {
		return cart, 0, decimal.Zero, models.ErrInvalidQuantity
	}
	if line.PromoQty != nil && line.PromoQty.Sign() <= 0 {
		return cart, 0, decimal.Zero, models.ErrInvalidQuantity
	}

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].Name == line.Name && cart.Lines[i].Unit == line.Unit {
			cart.Lines[i].Quantity = cart.Lines[i].Quantity.Add(line.Quantity)
			cart.Lines[i].UnitPrice = line.UnitPrice
			cart.Lines[i].PromoQty = line.PromoQty
			cart.Lines[i].PromoPrice = line.PromoPrice
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, line)
	}

	total, err := s.Total(cart)
	if err != nil {
		return cart, 0, decimal.Zero, err
	}
	return cart, len(cart.Lines), total, nil
}

// Remove deletes the line at index. An invalid index is an error rather than
// a no-op so a stale client view surfaces instead of silently diverging.
func (s *CartService) Remove(cart models.Cart, index int) (models.Cart, error) {
	if index < 0 || index >= len(cart.Lines) {
		return cart, models.ErrIndexOutOfRange
	}
	cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)
	return cart, nil
}

// Total sums the exact (unrounded) line totals and rounds once at the end.
func (s *CartService) Total(cart models.Cart) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, line := range cart.Lines {
		lineTotal, err := priceLineExact(line.Quantity, line.UnitPrice, line.PromoQty, line.PromoPrice)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(lineTotal)
	}
	return sum.Round(2), nil
}
