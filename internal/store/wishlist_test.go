package store_test

import (
	"testing"

	"github.com/MdAkhlaq657/shophub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist_AddIsIdempotent(t *testing.T) {
	wishlist := store.NewWishlist()
	product := randomProduct()

	wishlist.Add(product)
	wishlist.Add(product)

	assert.Len(t, wishlist.Products(), 1)
	assert.True(t, wishlist.Contains(product.ID))
}

func TestWishlist_Remove(t *testing.T) {
	wishlist := store.NewWishlist()
	product := randomProduct()
	wishlist.Add(product)

	assert.True(t, wishlist.Remove(product.ID))
	assert.False(t, wishlist.Contains(product.ID))

	assert.False(t, wishlist.Remove(product.ID))
}

func TestWishlist_KeepsAdditionOrder(t *testing.T) {
	wishlist := store.NewWishlist()
	for i := int64(1); i <= 3; i++ {
		wishlist.Add(productWithID(i))
	}
	wishlist.Remove(2)

	products := wishlist.Products()
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(3), products[1].ID)
}

func TestWishlist_Clear(t *testing.T) {
	wishlist := store.NewWishlist()
	wishlist.Add(randomProduct())

	wishlist.Clear()

	assert.Empty(t, wishlist.Products())
}
