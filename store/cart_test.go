package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripleAay/FarmApp-backend/models"
)

func TestAddLineMergesRepeatedAdds(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", "Yam Tubers", 100, "f1")
	carts := NewCartStore(db)

	var cart *models.Cart
	var err error
	for i := 0; i < 3; i++ {
		cart, err = carts.AddLine("buyer-1", "p1")
		require.NoError(t, err)
	}

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 300.0, cart.Total)
}

func TestAddLineUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	_, err := carts.AddLine("buyer-1", "nope")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddLineSnapshotsPriceAtAddTime(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", "Yam Tubers", 100, "f1")
	carts := NewCartStore(db)

	_, err := carts.AddLine("buyer-1", "p1")
	require.NoError(t, err)

	// Catalog price changes must not reprice the existing line.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", "p1").Update("price", 250).Error)

	cart, err := carts.AddLine("buyer-1", "p1")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 100.0, cart.Lines[0].UnitPrice)
	assert.Equal(t, 200.0, cart.Total)
}

func TestAddLineKeepsInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", "Yam Tubers", 100, "f1")
	seedProduct(t, db, "p2", "Fresh Maize", 50, "f2")
	carts := NewCartStore(db)

	_, err := carts.AddLine("buyer-1", "p1")
	require.NoError(t, err)
	cart, err := carts.AddLine("buyer-1", "p2")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "p1", cart.Lines[0].ProductID)
	assert.Equal(t, "p2", cart.Lines[1].ProductID)
}

func TestAdjustLineAddCreatesCart(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", "Yam Tubers", 100, "f1")
	carts := NewCartStore(db)

	cart, err := carts.AdjustLine("buyer-1", "p1", "add")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestAdjustLineRemoveDeletesAtZero(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", "Yam Tubers", 100, "f1")
	carts := NewCartStore(db)

	_, err := carts.AddLine("buyer-1", "p1")
	require.NoError(t, err)

	cart, err := carts.AdjustLine("buyer-1", "p1", "remove")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0.0, cart.Total)

	// The cart document itself survives being emptied.
	var stored models.Cart
	require.NoError(t, db.Where("buyer_id = ?", "buyer-1").First(&stored).Error)
}

func TestAdjustLineRemoveRequiresCartAndLine(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", "Yam Tubers", 100, "f1")
	seedProduct(t, db, "p2", "Fresh Maize", 50, "f2")
	carts := NewCartStore(db)

	_, err := carts.AdjustLine("buyer-1", "p1", "remove")
	require.ErrorIs(t, err, ErrCartNotFound)

	_, err = carts.AddLine("buyer-1", "p1")
	require.NoError(t, err)

	_, err = carts.AdjustLine("buyer-1", "p2", "remove")
	require.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemoveLineDecrements(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", "Yam Tubers", 100, "f1")
	carts := NewCartStore(db)

	_, err := carts.AddLine("buyer-1", "p1")
	require.NoError(t, err)
	_, err = carts.AddLine("buyer-1", "p1")
	require.NoError(t, err)

	cart, err := carts.RemoveLine("buyer-1", "p1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 100.0, cart.Total)
}

func TestGetCartWithoutCartIsEmptyNotError(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartStore(db)

	lines, err := carts.GetCart("buyer-1")
	require.NoError(t, err)
	require.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestContainsProduct(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", "Yam Tubers", 100, "f1")
	carts := NewCartStore(db)

	inCart, err := carts.ContainsProduct("buyer-1", "p1")
	require.NoError(t, err)
	assert.False(t, inCart)

	_, err = carts.AddLine("buyer-1", "p1")
	require.NoError(t, err)

	inCart, err = carts.ContainsProduct("buyer-1", "p1")
	require.NoError(t, err)
	assert.True(t, inCart)

	inCart, err = carts.ContainsProduct("buyer-1", "p2")
	require.NoError(t, err)
	assert.False(t, inCart)
}
