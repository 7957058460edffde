package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit,omitempty"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Email       *string          `json:"email,omitempty"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
}

// RecordPaymentRequest body for POST /api/customers/:id/payments: a credit
// settlement reducing the outstanding balance.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email,omitempty"`
	CreditLimit        decimal.Decimal `json:"credit_limit"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	LoyaltyPoints      int64           `json:"loyalty_points"`
	TotalPurchases     decimal.Decimal `json:"total_purchases"`
}
