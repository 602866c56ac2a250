package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carolinyr9/estocai/internal/application/usecase"
	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
)

func TestMovementRecordValidation(t *testing.T) {
	repo := newFakeMovementRepo()
	uc := usecase.NewMovementUseCase(repo)

	t.Run("produto nil é rejeitado", func(t *testing.T) {
		err := uc.Record(nil, entity.MovementTypeEntry, entity.MovementAdded, "user-1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, repo.rows)
	})

	t.Run("tipo vazio é rejeitado", func(t *testing.T) {
		err := uc.Record(&entity.Product{ID: "p1"}, "", entity.MovementAdded, "user-1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, repo.rows)
	})

	t.Run("gravação válida preenche id e data", func(t *testing.T) {
		err := uc.Record(&entity.Product{ID: "p1"}, entity.MovementTypeEntry, entity.MovementAdded, "user-1")
		require.NoError(t, err)
		mv := repo.last()
		assert.NotEmpty(t, mv.ID)
		assert.False(t, mv.Date.IsZero())
		assert.Equal(t, "p1", mv.ProductID)
	})
}

func TestMovementListFilters(t *testing.T) {
	repo := newFakeMovementRepo()
	uc := usecase.NewMovementUseCase(repo)

	record := func(productID, movType, description string) {
		require.NoError(t, uc.Record(&entity.Product{ID: productID}, movType, description, "user-1"))
	}
	record("p1", entity.MovementTypeEntry, entity.MovementAdded)
	record("p1", entity.MovementTypeExit, entity.MovementQuantityDecreased)
	record("p2", entity.MovementTypeEntry, entity.MovementQuantityIncreased)
	record("p2", entity.MovementTypeNone, entity.MovementConsult)

	t.Run("lista tudo", func(t *testing.T) {
		out, err := uc.List(10, 0)
		require.NoError(t, err)
		assert.Len(t, out.Items, 4)
	})

	t.Run("filtra por tipo", func(t *testing.T) {
		out, err := uc.ListByType(entity.MovementTypeEntry, 10, 0)
		require.NoError(t, err)
		assert.Len(t, out.Items, 2)
		for _, mv := range out.Items {
			assert.Equal(t, entity.MovementTypeEntry, mv.Type)
		}
	})

	t.Run("filtra por descrição", func(t *testing.T) {
		out, err := uc.ListByDescription(entity.MovementConsult, 10, 0)
		require.NoError(t, err)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "p2", out.Items[0].ProductID)
	})

	t.Run("filtra por produto", func(t *testing.T) {
		out, err := uc.ListByProduct("p1", 10, 0)
		require.NoError(t, err)
		assert.Len(t, out.Items, 2)
	})

	t.Run("filtro sem resultado devolve lista vazia", func(t *testing.T) {
		out, err := uc.ListByType(entity.MovementTypeEdited, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, out.Items)
	})

	t.Run("paginação respeita limit e offset", func(t *testing.T) {
		out, err := uc.List(2, 2)
		require.NoError(t, err)
		assert.Len(t, out.Items, 2)
		assert.Equal(t, 2, out.Page.Offset)
	})
}
