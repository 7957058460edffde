package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/infrastructure/memory"
)

const testUser = "user-1"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type checkoutEnv struct {
	store    *fakeStore
	carts    *memory.CartStore
	checkout *sales.CheckoutUseCase
}

func newCheckoutEnv(taxRate string) *checkoutEnv {
	store := newFakeStore()
	carts := memory.NewCartStore()
	uc := sales.NewCheckoutUseCase(
		&fakeTxRunner{s: store},
		carts,
		&fakeSettings{taxRate: d(taxRate)},
		&fakeProductRepo{s: store},
		&fakeCustomerRepo{s: store},
		&fakeSaleRepo{s: store},
	)
	return &checkoutEnv{store: store, carts: carts, checkout: uc}
}

func (e *checkoutEnv) addProduct(id, name, cost, price, qty, discount string) {
	e.store.addProduct(id, name, cost, price, qty, discount)
}

func (e *checkoutEnv) addCustomer(id, name, creditLimit string) {
	e.store.addCustomer(id, name, creditLimit)
}

func TestCheckout_CashWithExplicitItems(t *testing.T) {
	env := newCheckoutEnv("5")
	env.addProduct("p1", "Rice 5kg", "60", "100", "10", "0")
	env.addProduct("p2", "Tea Powder", "120", "200", "5", "10")

	out, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Items: []dto.CheckoutItemRequest{
			{ProductID: "p1", Quantity: d("2")},
			{ProductID: "p2", Quantity: d("1")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCompleted, out.Status)
	assert.Equal(t, "380", out.Subtotal.String())
	assert.Equal(t, "20", out.DiscountTotal.String())
	assert.Equal(t, "19", out.TaxTotal.String())
	assert.Equal(t, "399", out.TotalAmount.String())
	assert.Equal(t, "140", out.TotalProfit.String())
	assert.Len(t, out.Items, 2)

	// stock decremented
	assert.Equal(t, "8", env.store.products["p1"].Quantity.String())
	assert.Equal(t, "4", env.store.products["p2"].Quantity.String())

	// sale and items persisted
	require.Contains(t, env.store.sales, out.ID)
	assert.Len(t, env.store.saleItems[out.ID], 2)
}

func TestCheckout_FromCartClearsCart(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Milk 500ml", "22", "27", "30", "0")
	ctx := context.Background()
	require.NoError(t, env.carts.Save(ctx, testUser, []entity.CartItem{
		{ProductID: "p1", Quantity: d("3")},
	}))

	out, err := env.checkout.Checkout(ctx, testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentUPI,
	})
	require.NoError(t, err)
	assert.Equal(t, "81", out.TotalAmount.String())

	cart, err := env.carts.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newCheckoutEnv("0")

	_, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_InvalidPaymentType(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Soda", "12", "20", "10", "0")

	_, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		PaymentType: "cheque",
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_CreditRequiresCustomer(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Soda", "12", "20", "10", "0")

	_, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentCredit,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_InsufficientStockRollsBack(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Curd 500g", "30", "40", "20", "0")
	env.addProduct("p2", "Soda", "12", "20", "2", "0")

	_, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Items: []dto.CheckoutItemRequest{
			{ProductID: "p1", Quantity: d("5")}, // decremented first, then rolled back
			{ProductID: "p2", Quantity: d("3")}, // exceeds stock
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, "20", env.store.products["p1"].Quantity.String())
	assert.Equal(t, "2", env.store.products["p2"].Quantity.String())
	assert.Empty(t, env.store.sales)
}

func TestCheckout_InactiveProduct(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Old Stock", "10", "15", "5", "0")
	env.store.products["p1"].IsActive = false

	_, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrProductInactive)
}

func TestCheckout_MergesDuplicateLines(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Matchbox", "8", "12", "10", "0")

	out, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Items: []dto.CheckoutItemRequest{
			{ProductID: "p1", Quantity: d("2")},
			{ProductID: "p1", Quantity: d("3")},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "5", out.Items[0].Quantity.String())
	assert.Equal(t, "5", env.store.products["p1"].Quantity.String())
}

func TestCheckout_CreditSaleUpdatesCustomer(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Rice 5kg", "280", "340", "10", "0")
	env.addCustomer("c1", "Lakshmi Amma", "2000")

	out, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		CustomerID:  "c1",
		PaymentType: entity.PaymentCredit,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("1")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Lakshmi Amma", out.CustomerName)

	customer := env.store.customers["c1"]
	assert.Equal(t, "340", customer.OutstandingBalance.String())
	assert.Equal(t, "340", customer.TotalPurchases.String())
	assert.Equal(t, int64(3), customer.LoyaltyPoints)
}

func TestCheckout_CreditLimitExceededRollsBack(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Rice 5kg", "280", "340", "10", "0")
	env.addCustomer("c1", "Lakshmi Amma", "300")

	_, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		CustomerID:  "c1",
		PaymentType: entity.PaymentCredit,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrCreditLimitExceeded)

	// the whole transaction unwound: stock back, no sale, balance untouched
	assert.Equal(t, "10", env.store.products["p1"].Quantity.String())
	assert.Empty(t, env.store.sales)
	assert.True(t, env.store.customers["c1"].OutstandingBalance.IsZero())
}

func TestCheckout_CashSaleWithCustomerEarnsLoyalty(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Tea Powder", "160", "210", "20", "0")
	env.addCustomer("c1", "Murugan Stores", "5000")

	_, err := env.checkout.Checkout(context.Background(), testUser, dto.CheckoutRequest{
		CustomerID:  "c1",
		PaymentType: entity.PaymentCash,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("1")}},
	})
	require.NoError(t, err)

	customer := env.store.customers["c1"]
	assert.True(t, customer.OutstandingBalance.IsZero(), "cash sales never touch the balance")
	assert.Equal(t, int64(2), customer.LoyaltyPoints)
	assert.Equal(t, "210", customer.TotalPurchases.String())
}

func TestCancelSale_RestocksAndReverses(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Rice 5kg", "280", "340", "10", "0")
	env.addCustomer("c1", "Lakshmi Amma", "2000")
	ctx := context.Background()

	out, err := env.checkout.Checkout(ctx, testUser, dto.CheckoutRequest{
		CustomerID:  "c1",
		PaymentType: entity.PaymentCredit,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("2")}},
	})
	require.NoError(t, err)
	require.Equal(t, "8", env.store.products["p1"].Quantity.String())

	cancelled, err := env.checkout.CancelSale(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, cancelled.Status)

	assert.Equal(t, "10", env.store.products["p1"].Quantity.String())
	customer := env.store.customers["c1"]
	assert.True(t, customer.OutstandingBalance.IsZero())
	assert.True(t, customer.TotalPurchases.IsZero())
	assert.Equal(t, int64(0), customer.LoyaltyPoints)
}

func TestCancelSale_Twice(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Soda", "12", "20", "10", "0")
	ctx := context.Background()

	out, err := env.checkout.Checkout(ctx, testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("1")}},
	})
	require.NoError(t, err)

	_, err = env.checkout.CancelSale(ctx, out.ID)
	require.NoError(t, err)

	_, err = env.checkout.CancelSale(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCancelSale_NotFound(t *testing.T) {
	env := newCheckoutEnv("0")
	_, err := env.checkout.CancelSale(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetSale_WithItems(t *testing.T) {
	env := newCheckoutEnv("0")
	env.addProduct("p1", "Soda", "12", "20", "10", "0")
	ctx := context.Background()

	out, err := env.checkout.Checkout(ctx, testUser, dto.CheckoutRequest{
		PaymentType: entity.PaymentCard,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: d("2")}},
	})
	require.NoError(t, err)

	got, err := env.checkout.GetSale(out.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, out.ID, got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Soda", got.Items[0].ProductName)
}

func TestGetSale_Missing(t *testing.T) {
	env := newCheckoutEnv("0")
	got, err := env.checkout.GetSale("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
