package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Carolinyr9/estocai/internal/application/dto"
	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorias, com unicidade de nome.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create cria uma categoria. Devolve ErrDuplicate se o nome já existe.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtém uma categoria por ID. ErrNotFound se ausente.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByName obtém uma categoria pelo nome único. ErrNotFound se ausente.
func (uc *CategoryUseCase) GetByName(name string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List lista todas as categorias com paginação, sem filtro.
func (uc *CategoryUseCase) List(limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update sobrescreve nome e descrição. ErrDuplicate se outra categoria já
// possui o novo nome.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkNameConflict(in.Name, category.ID); err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// UpdatePartial aplica apenas os campos presentes no patch; os ausentes
// ficam intocados. O check de conflito só se aplica quando o novo nome
// vem no patch e difere do atual.
func (uc *CategoryUseCase) UpdatePartial(id string, in dto.PatchCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != category.Name {
		if err := uc.checkNameConflict(*in.Name, category.ID); err != nil {
			return nil, err
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete remove uma categoria por ID. Produtos ligados a ela ficam sem
// categoria (FK anulada no banco); nenhuma realocação acontece aqui.
func (uc *CategoryUseCase) Delete(id string) error {
	if _, err := uc.findExisting(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *CategoryUseCase) findExisting(id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// checkNameConflict devolve ErrDuplicate se outra categoria (id diferente)
// já possui name.
func (uc *CategoryUseCase) checkNameConflict(name, selfID string) error {
	other, err := uc.repo.GetByName(name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.ErrDuplicate
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
