package entity

import "time"

// User roles. Owners manage the catalog and see reports; cashiers run sales.
const (
	RoleOwner   = "owner"
	RoleCashier = "cashier"
)

// User represents a store user able to log in and record sales.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "owner" | "cashier"
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
