package repository

import "github.com/Carolinyr9/estocai/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category (DIP).
// Ausência é sinalizada com (nil, nil); o caso de uso traduz em ErrNotFound.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}
