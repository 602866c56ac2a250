package usecase

import (
	"context"

	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de banco, passando
// repositórios atados a essa transação. Usado na remoção de produto, onde a
// movimentação REMOVED e o DELETE precisam ser atômicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// MovementReportGenerator gera a representação em PDF do histórico de
// movimentações de um produto.
type MovementReportGenerator interface {
	GenerateMovementReport(ctx context.Context, product *entity.Product, movements []*entity.Movement) ([]byte, error)
}
