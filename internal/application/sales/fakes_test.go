package sales_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

// In-memory fakes backing the checkout and cart tests. The tx runner
// snapshots the stores before running the callback and restores them on
// error, mirroring a database rollback.

type fakeStore struct {
	products  map[string]*entity.Product
	customers map[string]*entity.Customer
	sales     map[string]*entity.Sale
	saleItems map[string][]*entity.SaleItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  map[string]*entity.Product{},
		customers: map[string]*entity.Customer{},
		sales:     map[string]*entity.Sale{},
		saleItems: map[string][]*entity.SaleItem{},
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	c := newFakeStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, cu := range s.customers {
		cp := *cu
		c.customers[id] = &cp
	}
	for id, sa := range s.sales {
		cp := *sa
		c.sales[id] = &cp
	}
	for id, items := range s.saleItems {
		cp := make([]*entity.SaleItem, len(items))
		for i, it := range items {
			v := *it
			cp[i] = &v
		}
		c.saleItems[id] = cp
	}
	return c
}

func (s *fakeStore) addProduct(id, name, cost, price, qty, discount string) {
	s.products[id] = &entity.Product{
		ID:           id,
		Name:         name,
		CostPrice:    decimal.RequireFromString(cost),
		SellingPrice: decimal.RequireFromString(price),
		Quantity:     decimal.RequireFromString(qty),
		Unit:         "pcs",
		IsActive:     true,
		Discount:     decimal.RequireFromString(discount),
	}
}

func (s *fakeStore) addCustomer(id, name, creditLimit string) {
	s.customers[id] = &entity.Customer{
		ID:             id,
		Name:           name,
		Phone:          "98400" + id,
		CreditLimit:    decimal.RequireFromString(creditLimit),
		TotalPurchases: decimal.Zero,
	}
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.customers = from.customers
	s.sales = from.sales
	s.saleItems = from.saleItems
}

// ── ProductRepository ────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetActiveByName(name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if !filter.IncludeInactive && !p.IsActive {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) ListLowStock(threshold decimal.Decimal) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.IsActive && p.Quantity.LessThanOrEqual(threshold) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SetActive(id string, active bool) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsActive = active
	return nil
}

// ── CustomerRepository ───────────────────────────────────────────────

type fakeCustomerRepo struct{ s *fakeStore }

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	for _, c := range r.s.customers {
		if c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetForUpdate(id string) (*entity.Customer, error) {
	return r.GetByID(id)
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) SettleCredit(id string, amount decimal.Decimal) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok || c.OutstandingBalance.LessThan(amount) {
		return nil, nil
	}
	c.OutstandingBalance = c.OutstandingBalance.Sub(amount)
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List(search string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// ── SaleRepository ───────────────────────────────────────────────────

type fakeSaleRepo struct{ s *fakeStore }

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	cp := *item
	r.s.saleItems[item.SaleID] = append(r.s.saleItems[item.SaleID], &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	items := r.s.saleItems[saleID]
	out := make([]*entity.SaleItem, len(items))
	for i, it := range items {
		cp := *it
		out[i] = &cp
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	sale, ok := r.s.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	sale.Status = status
	sale.UpdatedAt = updatedAt
	return nil
}

func (r *fakeSaleRepo) List(from, to time.Time, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		if sale.SoldAt.Before(from) || !sale.SoldAt.Before(to) {
			continue
		}
		cp := *sale
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SoldAt.After(out[j].SoldAt) })
	return out, nil
}

// ── SaleTxRunner ─────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

var _ sales.SaleTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeProductRepo{s: r.s}, &fakeCustomerRepo{s: r.s}, &fakeSaleRepo{s: r.s})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// ── SettingsProvider ─────────────────────────────────────────────────

type fakeSettings struct{ taxRate decimal.Decimal }

var _ sales.SettingsProvider = (*fakeSettings)(nil)

func (f *fakeSettings) GetOrDefault(userID string) (*entity.Settings, error) {
	s := entity.DefaultSettings(userID)
	s.TaxRate = f.taxRate
	return s, nil
}
