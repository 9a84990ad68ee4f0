package repositories

import (
	"context"
	"testing"

	"verduleria/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the in-process fallback; the Redis path uses the same
// JSON encoding and is covered by deployment smoke testing.

func TestCartStore_GetUnknownTokenIsEmptyCart(t *testing.T) {
	store := NewCartStore()

	cart, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCartStore_SaveAndGet(t *testing.T) {
	store := NewCartStore()
	ctx := context.Background()

	cart := models.Cart{Lines: []models.CartLine{
		{Name: "Manzanas", Unit: models.UnitKg, Quantity: decimal.RequireFromString("3"), UnitPrice: decimal.RequireFromString("800")},
	}}

	require.NoError(t, store.Save(ctx, "tok", cart))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "Manzanas", got.Lines[0].Name)
	assert.True(t, got.Lines[0].Quantity.Equal(decimal.RequireFromString("3")))
}

func TestCartStore_TokensAreIsolated(t *testing.T) {
	store := NewCartStore()
	ctx := context.Background()

	cart := models.Cart{Lines: []models.CartLine{
		{Name: "Peras", Unit: models.UnitKg, Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("900")},
	}}
	require.NoError(t, store.Save(ctx, "a", cart))

	other, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
}

func TestCartStore_Clear(t *testing.T) {
	store := NewCartStore()
	ctx := context.Background()

	cart := models.Cart{Lines: []models.CartLine{
		{Name: "Peras", Unit: models.UnitKg, Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("900")},
	}}
	require.NoError(t, store.Save(ctx, "tok", cart))
	require.NoError(t, store.Clear(ctx, "tok"))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}
