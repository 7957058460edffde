package entity

import "time"

// Category groups products for catalog filtering. Name is unique.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
