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

// CustomerUseCase CRUD use cases for customers plus credit settlements.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create creates a customer. Phone is the unique lookup key at the till.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CreditLimit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByPhone(in.Phone)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Phone:              in.Phone,
		Email:              in.Email,
		CreditLimit:        in.CreditLimit,
		OutstandingBalance: decimal.Zero,
		TotalPurchases:     decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID returns a customer by ID, nil when missing.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// Update patches a customer. Balance and loyalty fields are owned by the
// checkout/cancel transactions and RecordPayment, never by Update.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Phone != nil && *in.Phone != customer.Phone {
		if *in.Phone == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByPhone(*in.Phone)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.CreditLimit != nil {
		if in.CreditLimit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		customer.CreditLimit = *in.CreditLimit
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List searches customers by name or phone substring, paginated.
func (uc *CustomerUseCase) List(search string, limit, offset int) ([]dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// RecordPayment settles part of a customer's outstanding credit.
// Payments above the outstanding balance are rejected. The deduction is a
// single atomic statement so concurrent payments or a checkout on the same
// customer cannot lose an update.
func (uc *CustomerUseCase) RecordPayment(id string, amount decimal.Decimal) (*dto.CustomerResponse, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.SettleCredit(id, amount)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		existing, err := uc.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInvalidInput
	}
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Phone:              c.Phone,
		Email:              c.Email,
		CreditLimit:        c.CreditLimit,
		OutstandingBalance: c.OutstandingBalance,
		LoyaltyPoints:      c.LoyaltyPoints,
		TotalPurchases:     c.TotalPurchases,
	}
}
