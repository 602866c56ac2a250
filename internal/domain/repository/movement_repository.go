package repository

import "github.com/Carolinyr9/estocai/internal/domain/entity"

// MovementRepository define o porto de persistência para o log de movimentações.
// É append-only: não existe Update nem Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(limit, offset int) ([]*entity.Movement, error)
	ListByType(movementType string, limit, offset int) ([]*entity.Movement, error)
	ListByDescription(description string, limit, offset int) ([]*entity.Movement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
}
