package repository

import "github.com/skumaran/petti-kadai-api/internal/domain/entity"

// UserRepository defines the persistence port for User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Count() (int, error)
}
