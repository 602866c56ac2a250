package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Carolinyr9/estocai/internal/application/dto"
	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/internal/domain/repository"
)

// MovementUseCase é o gravador/leitor do log de auditoria de produtos.
// Cada chamada a Record produz exatamente uma linha nova: não há checagem
// de idempotência nem compensação — o log é append-only.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase constrói o caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// buildMovement monta a movimentação com timestamp corrente. ErrInvalidInput
// se product é nil ou movType é vazio.
func buildMovement(product *entity.Product, movType, description, userID string) (*entity.Movement, error) {
	if product == nil || movType == "" {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Date:        time.Now(),
		Type:        movType,
		Description: description,
		UserID:      userID,
	}, nil
}

// Record grava uma movimentação para product com o tipo/descrição dados e o
// usuário opcional que causou o evento.
func (uc *MovementUseCase) Record(product *entity.Product, movType, description, userID string) error {
	movement, err := buildMovement(product, movType, description, userID)
	if err != nil {
		return err
	}
	return uc.repo.Create(movement)
}

// List lista todas as movimentações com paginação.
func (uc *MovementUseCase) List(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementListResponse(list, limit, offset), nil
}

// ListByType lista movimentações de um tipo (entry, exit, edited, none).
func (uc *MovementUseCase) ListByType(movementType string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.repo.ListByType(movementType, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementListResponse(list, limit, offset), nil
}

// ListByDescription lista movimentações por descrição (added, removed, ...).
func (uc *MovementUseCase) ListByDescription(description string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.repo.ListByDescription(description, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementListResponse(list, limit, offset), nil
}

// ListByProduct lista o histórico de um produto.
func (uc *MovementUseCase) ListByProduct(productID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.repo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementListResponse(list, limit, offset), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Date:        m.Date,
		Type:        m.Type,
		Description: m.Description,
		UserID:      m.UserID,
	}
}

func toMovementListResponse(list []*entity.Movement, limit, offset int) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
