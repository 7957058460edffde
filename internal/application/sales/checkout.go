package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
	domsales "github.com/skumaran/petti-kadai-api/internal/domain/sales"
)

// CheckoutUseCase commits a sale in one database transaction: stock
// decrements under row locks, the sale header, its items and the customer
// balance/loyalty updates. A failure anywhere rolls the whole sale back.
type CheckoutUseCase struct {
	txRunner     SaleTxRunner
	cartStore    CartStore
	settings     SettingsProvider
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewCheckoutUseCase builds the use case.
func NewCheckoutUseCase(
	txRunner SaleTxRunner,
	cartStore CartStore,
	settings SettingsProvider,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:     txRunner,
		cartStore:    cartStore,
		settings:     settings,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// Checkout commits the sale. With an empty Items list the caller's session
// cart is used and cleared after a successful commit.
//
// Stock is re-validated under SELECT FOR UPDATE inside the transaction, so
// the cart's ceiling check going stale between add-to-cart and checkout can
// reject the sale but never oversell.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if !entity.ValidPaymentType(in.PaymentType) {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentType == entity.PaymentCredit && in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}

	lines, fromCart, err := uc.resolveLines(ctx, userID, in.Items)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var customerName string
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil || customer == nil {
			return nil, domain.ErrNotFound
		}
		customerName = customer.Name
	}

	settings, err := uc.settings.GetOrDefault(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		UserID:      userID,
		CustomerID:  in.CustomerID,
		SoldAt:      now,
		PaymentType: in.PaymentType,
		Status:      entity.SaleStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	var items []*entity.SaleItem

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
	) error {
		// 1) Lock each product row, re-validate, decrement stock.
		lineTotals := make([]domsales.LineTotals, 0, len(lines))
		items = items[:0]
		for _, line := range lines {
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if !product.IsActive {
				return domain.ErrProductInactive
			}
			if product.Quantity.LessThan(line.Quantity) {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateQuantity(product.ID, product.Quantity.Sub(line.Quantity)); err != nil {
				return err
			}

			lt := domsales.ComputeLine(product.SellingPrice, product.CostPrice, product.Discount, line.Quantity)
			lineTotals = append(lineTotals, lt)
			items = append(items, &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   lt.UnitPrice,
				CostPrice:   product.CostPrice,
				Discount:    product.Discount,
				Subtotal:    lt.Subtotal,
				Profit:      lt.Profit,
			})
		}

		// 2) Totals with the seller's tax rate.
		totals := domsales.ComputeSale(lineTotals, settings.TaxRate)
		sale.Subtotal = totals.Subtotal
		sale.DiscountTotal = totals.DiscountTotal
		sale.TaxTotal = totals.TaxTotal
		sale.TotalAmount = totals.TotalAmount
		sale.TotalProfit = totals.TotalProfit

		// 3) Persist header and items.
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}

		// 4) Customer balance and loyalty, under the same transaction.
		if sale.CustomerID != "" {
			customer, err := customerRepo.GetForUpdate(sale.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return domain.ErrNotFound
			}
			if sale.PaymentType == entity.PaymentCredit {
				newBalance := customer.OutstandingBalance.Add(sale.TotalAmount)
				if newBalance.GreaterThan(customer.CreditLimit) {
					return domain.ErrCreditLimitExceeded
				}
				customer.OutstandingBalance = newBalance
			}
			customer.LoyaltyPoints += domsales.LoyaltyPoints(sale.TotalAmount)
			customer.TotalPurchases = customer.TotalPurchases.Add(sale.TotalAmount)
			customer.UpdatedAt = now
			if err := customerRepo.Update(customer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The cart is session state, not part of the transaction.
	if fromCart {
		_ = uc.cartStore.Clear(ctx, userID)
	}

	return toSaleResponse(sale, customerName, items), nil
}

// GetSale returns a sale with its items, nil when missing.
func (uc *CheckoutUseCase) GetSale(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if sale.CustomerID != "" {
		if customer, err := uc.customerRepo.GetByID(sale.CustomerID); err == nil && customer != nil {
			customerName = customer.Name
		}
	}
	return toSaleResponse(sale, customerName, items), nil
}

// ListSales lists sale headers in a period, newest first.
func (uc *CheckoutUseCase) ListSales(from, to time.Time, limit, offset int) (*dto.SaleListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.saleRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, "", nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// CancelSale reverses a completed sale in one transaction: restocks every
// item and unwinds the customer's balance and loyalty. Cancelling an
// already-cancelled sale returns ErrConflict.
func (uc *CheckoutUseCase) CancelSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	var sale *entity.Sale
	var items []*entity.SaleItem

	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
	) error {
		var err error
		sale, err = saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status == entity.SaleStatusCancelled {
			return domain.ErrConflict
		}
		items, err = saleRepo.GetItemsBySaleID(id)
		if err != nil {
			return err
		}

		now := time.Now()
		// Restock, including products deactivated since the sale.
		for _, item := range items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				continue // product hard-removed; nothing to restock
			}
			if err := productRepo.UpdateQuantity(product.ID, product.Quantity.Add(item.Quantity)); err != nil {
				return err
			}
		}

		if sale.CustomerID != "" {
			customer, err := customerRepo.GetForUpdate(sale.CustomerID)
			if err != nil {
				return err
			}
			if customer != nil {
				if sale.PaymentType == entity.PaymentCredit {
					customer.OutstandingBalance = customer.OutstandingBalance.Sub(sale.TotalAmount)
					if customer.OutstandingBalance.IsNegative() {
						customer.OutstandingBalance = decimal.Zero
					}
				}
				customer.LoyaltyPoints -= domsales.LoyaltyPoints(sale.TotalAmount)
				if customer.LoyaltyPoints < 0 {
					customer.LoyaltyPoints = 0
				}
				customer.TotalPurchases = customer.TotalPurchases.Sub(sale.TotalAmount)
				if customer.TotalPurchases.IsNegative() {
					customer.TotalPurchases = decimal.Zero
				}
				customer.UpdatedAt = now
				if err := customerRepo.Update(customer); err != nil {
					return err
				}
			}
		}

		sale.Status = entity.SaleStatusCancelled
		sale.UpdatedAt = now
		return saleRepo.UpdateStatus(sale.ID, entity.SaleStatusCancelled, now)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, "", items), nil
}

// checkoutLine is a resolved, merged request line.
type checkoutLine struct {
	ProductID string
	Quantity  decimal.Decimal
}

// resolveLines takes explicit request items or falls back to the session
// cart. Duplicate product ids are merged.
func (uc *CheckoutUseCase) resolveLines(ctx context.Context, userID string, reqItems []dto.CheckoutItemRequest) ([]checkoutLine, bool, error) {
	var raw []entity.CartItem
	fromCart := len(reqItems) == 0
	if fromCart {
		items, err := uc.cartStore.Get(ctx, userID)
		if err != nil {
			return nil, false, err
		}
		raw = items
	} else {
		for _, it := range reqItems {
			raw = append(raw, entity.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
		}
	}

	index := make(map[string]int)
	var lines []checkoutLine
	for _, item := range raw {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, false, domain.ErrInvalidInput
		}
		if i, ok := index[item.ProductID]; ok {
			lines[i].Quantity = lines[i].Quantity.Add(item.Quantity)
			continue
		}
		index[item.ProductID] = len(lines)
		lines = append(lines, checkoutLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines, fromCart, nil
}

func toSaleResponse(s *entity.Sale, customerName string, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		CustomerID:    s.CustomerID,
		CustomerName:  customerName,
		SoldAt:        s.SoldAt,
		Subtotal:      s.Subtotal,
		DiscountTotal: s.DiscountTotal,
		TaxTotal:      s.TaxTotal,
		TotalAmount:   s.TotalAmount,
		TotalProfit:   s.TotalProfit,
		PaymentType:   s.PaymentType,
		Status:        s.Status,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			Profit:      item.Profit,
		})
	}
	return resp
}
