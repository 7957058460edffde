package repository

import (
	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
)

// CustomerRepository defines the persistence port for Customer.
// GetForUpdate locks the row for balance/loyalty updates inside the
// checkout transaction.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	GetForUpdate(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(search string, limit, offset int) ([]*entity.Customer, error)
	// SettleCredit atomically deducts amount from outstanding_balance,
	// guarding against the balance dropping below zero. Returns the updated
	// customer, or nil when the customer is missing or the balance is
	// smaller than amount.
	SettleCredit(id string, amount decimal.Decimal) (*entity.Customer, error)
}
