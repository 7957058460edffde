package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
	domsales "github.com/skumaran/petti-kadai-api/internal/domain/sales"
)

// CartUseCase manages the per-user session cart and keeps it reconciled
// against the live catalog. The stock ceiling is read at call time, not
// locked; checkout re-validates under a row lock.
type CartUseCase struct {
	store       CartStore
	productRepo repository.ProductRepository
}

// NewCartUseCase builds the use case.
func NewCartUseCase(store CartStore, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{store: store, productRepo: productRepo}
}

// Get loads the cart and reconciles it: lines whose product disappeared or
// went inactive are dropped, quantities above current stock are clamped.
// When anything changed the adjusted cart is saved back and flagged.
func (uc *CartUseCase) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	items, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CartResponse{Items: []dto.CartLineResponse{}}
	kept := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			resp.Adjusted = true
			continue
		}
		qty := item.Quantity
		if qty.GreaterThan(product.Quantity) {
			qty = product.Quantity
			resp.Adjusted = true
		}
		if !qty.GreaterThan(decimal.Zero) {
			resp.Adjusted = true
			continue
		}
		kept = append(kept, entity.CartItem{ProductID: item.ProductID, Quantity: qty})

		unit := domsales.EffectiveUnitPrice(product.SellingPrice, product.Discount)
		subtotal := unit.Mul(qty)
		resp.Items = append(resp.Items, dto.CartLineResponse{
			ProductID:   product.ID,
			ProductName: product.Name,
			Unit:        product.Unit,
			Quantity:    qty,
			UnitPrice:   unit,
			Subtotal:    subtotal,
			Available:   product.Quantity.Sub(qty),
		})
		resp.Subtotal = resp.Subtotal.Add(subtotal)
	}

	if resp.Adjusted {
		if err := uc.store.Save(ctx, userID, kept); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// AddItem adds quantity to an existing line or creates a new one. The
// resulting line quantity must not exceed the product's current stock.
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, in dto.CartItemRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.activeProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	items, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == in.ProductID {
			items[i].Quantity = items[i].Quantity.Add(in.Quantity)
			if items[i].Quantity.GreaterThan(product.Quantity) {
				return nil, domain.ErrInsufficientStock
			}
			found = true
			break
		}
	}
	if !found {
		if in.Quantity.GreaterThan(product.Quantity) {
			return nil, domain.ErrInsufficientStock
		}
		items = append(items, entity.CartItem{ProductID: in.ProductID, Quantity: in.Quantity})
	}

	if err := uc.store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID)
}

// UpdateItem sets a line to an absolute quantity. Zero removes the line.
func (uc *CartUseCase) UpdateItem(ctx context.Context, userID string, in dto.CartItemRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsZero() {
		return uc.RemoveItem(ctx, userID, in.ProductID)
	}
	product, err := uc.activeProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	if in.Quantity.GreaterThan(product.Quantity) {
		return nil, domain.ErrInsufficientStock
	}

	items, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range items {
		if items[i].ProductID == in.ProductID {
			items[i].Quantity = in.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, entity.CartItem{ProductID: in.ProductID, Quantity: in.Quantity})
	}
	if err := uc.store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID)
}

// RemoveItem drops a line from the cart. Removing an absent line is a no-op.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*dto.CartResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if err := uc.store.Save(ctx, userID, kept); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID)
}

// Clear empties the cart.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.store.Clear(ctx, userID)
}

func (uc *CartUseCase) activeProduct(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsActive {
		return nil, domain.ErrProductInactive
	}
	return product, nil
}
