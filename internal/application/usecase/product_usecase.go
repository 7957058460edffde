package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// ProductUseCase CRUD use cases for the product catalog. Stock mutations at
// sale time go through the checkout transaction, not through Update.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create creates a new product. Name must be unique among active products.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SellingPrice.IsNegative() || in.CostPrice.IsNegative() || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() || in.Discount.GreaterThan(hundred) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetActiveByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil || cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		Quantity:     in.Quantity,
		Unit:         unit,
		ImageURI:     in.ImageURI,
		IsActive:     true,
		Discount:     in.Discount,
		Rating:       decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns a product by ID, nil when missing.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update patches a product. Quantity here is restock/correction; sale-time
// decrements happen inside the checkout transaction.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != product.Name {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetActiveByName(*in.Name)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil || cat == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.ImageURI != nil {
		product.ImageURI = *in.ImageURI
	}
	if in.Discount != nil {
		if in.Discount.IsNegative() || in.Discount.GreaterThan(hundred) {
			return nil, domain.ErrInvalidInput
		}
		product.Discount = *in.Discount
	}
	if in.Rating != nil {
		if in.Rating.IsNegative() || in.Rating.GreaterThan(decimal.NewFromInt(5)) {
			return nil, domain.ErrInvalidInput
		}
		product.Rating = *in.Rating
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lists products with filtering and pagination.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ListLowStock lists active products at or below the threshold.
func (uc *ProductUseCase) ListLowStock(threshold decimal.Decimal) ([]dto.ProductResponse, error) {
	if threshold.LessThanOrEqual(decimal.Zero) {
		threshold = decimal.NewFromInt(5)
	}
	list, err := uc.repo.ListLowStock(threshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Deactivate soft-deletes a product. Sale history keeps its reference.
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetActive(id, false)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		ImageURI:     p.ImageURI,
		IsActive:     p.IsActive,
		Discount:     p.Discount,
		Rating:       p.Rating,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
