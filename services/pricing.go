package services

import (
	"verduleria/models"

	"github.com/shopspring/decimal"
)

// PriceLine computes the monetary total of one cart line.
//
// Without a promo tier, or below its threshold, the total is qty * unitPrice.
// At or above the threshold, every full bundle of promoQty is charged
// promoPrice and the exact remainder is charged at the regular unit price.
// Results are rounded half-up to 2 decimals; rounding is idempotent.
func PriceLine(qty, unitPrice decimal.Decimal, promoQty, promoPrice *decimal.Decimal) (decimal.Decimal, error) {
	total, err := priceLineExact(qty, unitPrice, promoQty, promoPrice)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Round(2), nil
}

// priceLineExact returns the unrounded total so cart aggregation can round
// once after summation instead of accumulating per-line rounding error.
func priceLineExact(qty, unitPrice decimal.Decimal, promoQty, promoPrice *decimal.Decimal) (decimal.Decimal, error) {
	if qty.Sign() <= 0 {
		return decimal.Zero, models.ErrInvalidQuantity
	}

	if promoQty == nil || promoPrice == nil || promoQty.Sign() <= 0 || qty.LessThan(*promoQty) {
		return qty.Mul(unitPrice), nil
	}

	// QuoRem gives the exact integer quotient and exact remainder; Div would
	// round the quotient and can manufacture a bundle for a quantity sitting
	// just below a multiple of the threshold.
	bundles, remainder := qty.QuoRem(*promoQty, 0)

	return bundles.Mul(*promoPrice).Add(remainder.Mul(unitPrice)), nil
}
