// Package pdf implementa a geração do relatório em PDF do histórico de
// movimentações de um produto (uma linha por movimentação do log de
// auditoria, mais antigas primeiro).
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Carolinyr9/estocai/internal/application/usecase"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.MovementReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.MovementReportGenerator usando
// Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(_ context.Context, product *entity.Product, movements []*entity.Movement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Histórico de movimentações", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product, len(movements)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range movementRows(movements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome e quantidade atual do produto + total de eventos.
func headerRow(product *entity.Product, total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Quantidade atual: %d   |   Preço: %s", product.Quantity, product.Price.StringFixed(2)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("HISTÓRICO DE MOVIMENTAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d eventos", total), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de movimentações.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Data", 3, align.Left),
		h("Tipo", 2, align.Center),
		h("Descrição", 4, align.Left),
		h("Usuário", 3, align.Left),
	)
}

// movementRows: uma linha por movimentação.
func movementRows(movements []*entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		user := mv.UserID
		if user == "" {
			user = "—"
		}
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(mv.Date.Format("02/01/2006 15:04"), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(mv.Type, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(mv.Description, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(user, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return result
}
