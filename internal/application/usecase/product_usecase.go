package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Carolinyr9/estocai/internal/application/dto"
	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD e ajuste de quantidade para produtos.
// Toda operação que toca (ou apenas lê) um produto grava uma movimentação de
// auditoria depois do efeito principal; uma falha ao gravar a movimentação
// não desfaz a escrita do produto. A exceção é Delete, onde a movimentação
// REMOVED e o DELETE rodam na mesma transação.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories *CategoryUseCase
	recorder   *MovementUseCase
	tx         TxRunner
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories *CategoryUseCase, recorder *MovementUseCase, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, recorder: recorder, tx: tx}
}

// Create cria um produto, resolve a categoria (ErrNotFound propaga se ela não
// existe) e grava a movimentação entry/added. ErrDuplicate se o nome já existe.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, actorID string) (*dto.ProductResponse, error) {
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	if err := uc.checkNameConflict(in.Name, ""); err != nil {
		return nil, err
	}
	if err := uc.resolveCategory(in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(product, entity.MovementTypeEntry, entity.MovementAdded, actorID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update sobrescreve todos os campos, re-resolvendo a categoria, e grava a
// movimentação edited/edited.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest, actorID string) (*dto.ProductResponse, error) {
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	product, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkNameConflict(in.Name, product.ID); err != nil {
		return nil, err
	}
	if err := uc.resolveCategory(in.CategoryID); err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Quantity = in.Quantity
	product.CategoryID = in.CategoryID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(product, entity.MovementTypeEdited, entity.MovementEdited, actorID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdatePartial aplica apenas os campos presentes no patch; CategoryID
// presente dispara nova resolução da categoria. Mesmo um patch vazio grava
// uma movimentação edited/edited.
func (uc *ProductUseCase) UpdatePartial(id string, in dto.PatchProductRequest, actorID string) (*dto.ProductResponse, error) {
	product, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != product.Name {
		if err := uc.checkNameConflict(*in.Name, product.ID); err != nil {
			return nil, err
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.CategoryID != nil {
		if err := uc.resolveCategory(*in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(product, entity.MovementTypeEdited, entity.MovementEdited, actorID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID e grava a movimentação none/consult.
func (uc *ProductUseCase) GetByID(id string, actorID string) (*dto.ProductResponse, error) {
	product, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(product, entity.MovementTypeNone, entity.MovementConsult, actorID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByName obtém um produto pelo nome único e grava none/consult.
func (uc *ProductUseCase) GetByName(name string, actorID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.recorder.Record(product, entity.MovementTypeNone, entity.MovementConsult, actorID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação e grava uma movimentação none/consult
// por produto retornado: cada exposição dos dados entra na auditoria,
// inclusive via listagem.
func (uc *ProductUseCase) List(limit, offset int, actorID string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if err := uc.recorder.Record(p, entity.MovementTypeNone, entity.MovementConsult, actorID); err != nil {
			return nil, err
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete grava a movimentação exit/removed e remove o produto na mesma
// transação. A movimentação é gravada antes do DELETE; depois dele a FK da
// movimentação é anulada pelo banco.
func (uc *ProductUseCase) Delete(ctx context.Context, id string, actorID string) error {
	product, err := uc.findExisting(id)
	if err != nil {
		return err
	}
	movement, err := buildMovement(product, entity.MovementTypeExit, entity.MovementRemoved, actorID)
	if err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

// IncreaseQuantity soma delta à quantidade. ErrInvalidInput se delta <= 0.
func (uc *ProductUseCase) IncreaseQuantity(id string, delta int, actorID string) (*dto.ProductResponse, error) {
	if delta <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	product.Quantity += delta
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(product, entity.MovementTypeEntry, entity.MovementQuantityIncreased, actorID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DecreaseQuantity subtrai delta da quantidade. ErrInvalidInput se delta <= 0
// ou se o resultado ficaria negativo; nesse caso nada é gravado.
func (uc *ProductUseCase) DecreaseQuantity(id string, delta int, actorID string) (*dto.ProductResponse, error) {
	if delta <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	if delta > product.Quantity {
		return nil, domain.ErrInvalidInput
	}
	product.Quantity -= delta
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(product, entity.MovementTypeExit, entity.MovementQuantityDecreased, actorID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetQuantity sobrescreve a quantidade com um valor absoluto não negativo.
// Grava entry/quantity increased quando o novo valor é maior que o anterior;
// caso contrário exit/quantity decreased (valores iguais caem no ramo de
// redução — desempate: não-maior conta como redução).
func (uc *ProductUseCase) SetQuantity(id string, quantity int, actorID string) (*dto.ProductResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	before := product.Quantity
	product.Quantity = quantity
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	movType, description := entity.MovementTypeExit, entity.MovementQuantityDecreased
	if quantity > before {
		movType, description = entity.MovementTypeEntry, entity.MovementQuantityIncreased
	}
	if err := uc.recorder.Record(product, movType, description, actorID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (uc *ProductUseCase) findExisting(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// resolveCategory garante que a categoria referenciada existe. CategoryID
// vazio é permitido: o produto fica sem categoria.
func (uc *ProductUseCase) resolveCategory(categoryID string) error {
	if categoryID == "" {
		return nil
	}
	_, err := uc.categories.GetByID(categoryID)
	return err
}

// validatePrice exige preço estritamente positivo.
func validatePrice(price decimal.Decimal) error {
	if price.Sign() <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *ProductUseCase) checkNameConflict(name, selfID string) error {
	other, err := uc.repo.GetByName(name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.ErrDuplicate
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
