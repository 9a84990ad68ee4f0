package services

import (
	"testing"

	"verduleria/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd_AppendsNewLine(t *testing.T) {
	svc := NewCartService()

	cart, count, total, err := svc.Add(models.Cart{}, models.CartLine{
		Name: "Manzanas", Unit: models.UnitKg, Quantity: d("3"), UnitPrice: d("800"),
		PromoQty: dp("2"), PromoPrice: dp("1400"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, total.Equal(d("2200")), "got %s", total)
	assert.Len(t, cart.Lines, 1)
}

func TestCartAdd_MergesOnNameAndUnit(t *testing.T) {
	svc := NewCartService()

	cart, _, _, err := svc.Add(models.Cart{}, models.CartLine{
		Name: "Bananas", Unit: models.UnitKg, Quantity: d("1"), UnitPrice: d("500"),
	})
	require.NoError(t, err)

	cart, count, _, err := svc.Add(cart, models.CartLine{
		Name: "Bananas", Unit: models.UnitKg, Quantity: d("1.5"), UnitPrice: d("550"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.True(t, cart.Lines[0].Quantity.Equal(d("2.5")))
	// Price fields are last-write.
	assert.True(t, cart.Lines[0].UnitPrice.Equal(d("550")))
}

func TestCartAdd_SameNameDifferentUnitIsSeparate(t *testing.T) {
	svc := NewCartService()

	cart, _, _, err := svc.Add(models.Cart{}, models.CartLine{
		Name: "Frutillas", Unit: models.UnitKg, Quantity: d("0.5"), UnitPrice: d("3000"),
	})
	require.NoError(t, err)

	cart, count, _, err := svc.Add(cart, models.CartLine{
		Name: "Frutillas", Unit: models.UnitEach, Quantity: d("1"), UnitPrice: d("1500"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Len(t, cart.Lines, 2)
}

func TestCartAdd_Validation(t *testing.T) {
	svc := NewCartService()

	cases := []models.CartLine{
		{Name: "a", Unit: models.UnitKg, Quantity: d("0"), UnitPrice: d("100")},
		{Name: "a", Unit: models.UnitKg, Quantity: d("-1"), UnitPrice: d("100")},
		{Name: "a", Unit: models.UnitKg, Quantity: d("1"), UnitPrice: d("-100")},
		// Promo fields must come in pairs.
		{Name: "a", Unit: models.UnitKg, Quantity: d("1"), UnitPrice: d("100"), PromoQty: dp("2")},
		{Name: "a", Unit: models.UnitKg, Quantity: d("1"), UnitPrice: d("100"), PromoPrice: dp("150")},
		{Name: "a", Unit: models.UnitKg, Quantity: d("1"), UnitPrice: d("100"), PromoQty: dp("0"), PromoPrice: dp("150")},
	}

	for i, line := range cases {
		_, _, _, err := svc.Add(models.Cart{}, line)
		assert.ErrorIs(t, err, models.ErrInvalidQuantity, "case %d", i)
	}
}

func TestCartRemove(t *testing.T) {
	svc := NewCartService()

	cart, _, _, err := svc.Add(models.Cart{}, models.CartLine{
		Name: "Papas", Unit: models.UnitKg, Quantity: d("2"), UnitPrice: d("400"),
	})
	require.NoError(t, err)

	cart, err = svc.Remove(cart, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCartRemove_IndexOutOfRange(t *testing.T) {
	svc := NewCartService()

	cart, _, _, err := svc.Add(models.Cart{}, models.CartLine{
		Name: "Papas", Unit: models.UnitKg, Quantity: d("2"), UnitPrice: d("400"),
	})
	require.NoError(t, err)

	for _, idx := range []int{-1, 1, 99} {
		_, err := svc.Remove(cart, idx)
		assert.ErrorIs(t, err, models.ErrIndexOutOfRange, "index %d", idx)
	}
}

func TestCartTotal_RoundsOnceAfterSummation(t *testing.T) {
	svc := NewCartService()

	// Each line is exactly 1.005; rounding per line would give 1.01 + 1.01 =
	// 2.02, but the cart rounds the exact sum 2.010 once.
	cart := models.Cart{Lines: []models.CartLine{
		{Name: "a", Unit: models.UnitKg, Quantity: d("1.5"), UnitPrice: d("0.67")},
		{Name: "b", Unit: models.UnitKg, Quantity: d("1.5"), UnitPrice: d("0.67")},
	}}

	total, err := svc.Total(cart)
	require.NoError(t, err)
	assert.True(t, total.Equal(d("2.01")), "got %s", total)
}

func TestCartTotal_EmptyCartIsZero(t *testing.T) {
	svc := NewCartService()

	total, err := svc.Total(models.Cart{})
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
