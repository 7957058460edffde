package repository

import "github.com/skumaran/petti-kadai-api/internal/domain/entity"

// CategoryRepository defines the persistence port for Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
	// CountProducts returns how many active products reference the category.
	CountProducts(categoryID string) (int, error)
}
