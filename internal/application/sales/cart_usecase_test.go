package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/infrastructure/memory"
)

type cartEnv struct {
	store *fakeStore
	carts *memory.CartStore
	cart  *sales.CartUseCase
}

func newCartEnv() *cartEnv {
	store := newFakeStore()
	carts := memory.NewCartStore()
	return &cartEnv{
		store: store,
		carts: carts,
		cart:  sales.NewCartUseCase(carts, &fakeProductRepo{s: store}),
	}
}

func (e *cartEnv) addProduct(id, name, cost, price, qty, discount string) {
	e.store.addProduct(id, name, cost, price, qty, discount)
}

func TestCart_AddItem(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Murukku 200g", "28", "45", "50", "0")

	out, err := env.cart.AddItem(context.Background(), testUser, dto.CartItemRequest{
		ProductID: "p1", Quantity: d("2"),
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2", out.Items[0].Quantity.String())
	assert.Equal(t, "45", out.Items[0].UnitPrice.String())
	assert.Equal(t, "90", out.Subtotal.String())
	assert.Equal(t, "48", out.Items[0].Available.String())
	assert.False(t, out.Adjusted)
}

func TestCart_AddItemAccumulates(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Murukku 200g", "28", "45", "50", "0")
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("2")})
	require.NoError(t, err)
	out, err := env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("3")})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "5", out.Items[0].Quantity.String())
}

func TestCart_AddItemAboveStock(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Soda 750ml", "12", "20", "3", "0")

	_, err := env.cart.AddItem(context.Background(), testUser, dto.CartItemRequest{
		ProductID: "p1", Quantity: d("4"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCart_AddUnknownProduct(t *testing.T) {
	env := newCartEnv()
	_, err := env.cart.AddItem(context.Background(), testUser, dto.CartItemRequest{
		ProductID: "ghost", Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_AddInactiveProduct(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Old Stock", "10", "15", "5", "0")
	env.store.products["p1"].IsActive = false

	_, err := env.cart.AddItem(context.Background(), testUser, dto.CartItemRequest{
		ProductID: "p1", Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrProductInactive)
}

func TestCart_DiscountedPriceInCart(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Sunflower Oil 1l", "130", "165", "25", "20")

	out, err := env.cart.AddItem(context.Background(), testUser, dto.CartItemRequest{
		ProductID: "p1", Quantity: d("1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "132", out.Items[0].UnitPrice.String())
}

func TestCart_UpdateItemSetsAbsoluteQuantity(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Mixture 250g", "35", "55", "45", "0")
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("2")})
	require.NoError(t, err)

	out, err := env.cart.UpdateItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("7")})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "7", out.Items[0].Quantity.String())
}

func TestCart_UpdateItemZeroRemoves(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Mixture 250g", "35", "55", "45", "0")
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("2")})
	require.NoError(t, err)

	out, err := env.cart.UpdateItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("0")})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestCart_RemoveItem(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Milk 500ml", "22", "27", "30", "0")
	env.addProduct("p2", "Curd 500g", "30", "40", "25", "0")
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("1")})
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p2", Quantity: d("1")})
	require.NoError(t, err)

	out, err := env.cart.RemoveItem(ctx, testUser, "p1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p2", out.Items[0].ProductID)
}

func TestCart_GetReconcilesDeactivatedProduct(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Milk 500ml", "22", "27", "30", "0")
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("2")})
	require.NoError(t, err)

	// product deactivated after it entered the cart
	env.store.products["p1"].IsActive = false

	out, err := env.cart.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Adjusted)

	// the reconciled cart was saved back
	saved, err := env.carts.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestCart_GetClampsToStock(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Milk 500ml", "22", "27", "30", "0")
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("10")})
	require.NoError(t, err)

	// stock dropped behind the cart's back
	env.store.products["p1"].Quantity = d("4")

	out, err := env.cart.Get(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "4", out.Items[0].Quantity.String())
	assert.True(t, out.Adjusted)
	assert.True(t, out.Items[0].Available.IsZero())
}

func TestCart_Clear(t *testing.T) {
	env := newCartEnv()
	env.addProduct("p1", "Milk 500ml", "22", "27", "30", "0")
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testUser, dto.CartItemRequest{ProductID: "p1", Quantity: d("1")})
	require.NoError(t, err)
	require.NoError(t, env.cart.Clear(ctx, testUser))

	out, err := env.cart.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Subtotal.IsZero())
}
