package usecase

import (
	"context"

	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/internal/domain/repository"
)

// movimentações carregadas por página ao montar o relatório.
const reportPageSize = 500

// MovementReportUseCase gera o relatório em PDF do histórico de
// movimentações de um produto.
type MovementReportUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	generator MovementReportGenerator
}

// NewMovementReportUseCase constrói o caso de uso.
func NewMovementReportUseCase(products repository.ProductRepository, movements repository.MovementRepository, generator MovementReportGenerator) *MovementReportUseCase {
	return &MovementReportUseCase{products: products, movements: movements, generator: generator}
}

// Generate devolve os bytes do PDF com o histórico completo do produto.
// ErrNotFound se o produto não existe.
func (uc *MovementReportUseCase) Generate(ctx context.Context, productID string) ([]byte, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	var history []*entity.Movement
	for offset := 0; ; offset += reportPageSize {
		page, err := uc.movements.ListByProduct(productID, reportPageSize, offset)
		if err != nil {
			return nil, err
		}
		history = append(history, page...)
		if len(page) < reportPageSize {
			break
		}
	}
	return uc.generator.GenerateMovementReport(ctx, product, history)
}
