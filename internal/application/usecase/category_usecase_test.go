package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carolinyr9/estocai/internal/application/dto"
	"github.com/Carolinyr9/estocai/internal/application/usecase"
	"github.com/Carolinyr9/estocai/internal/domain"
)

func setupCategory(t *testing.T) (*usecase.CategoryUseCase, *fakeCategoryRepo) {
	t.Helper()
	repo := newFakeCategoryRepo()
	return usecase.NewCategoryUseCase(repo), repo
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCategoryCreate(t *testing.T) {
	uc, repo := setupCategory(t)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Tools", Description: "hand tools"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Tools", out.Name)
	assert.Equal(t, "hand tools", out.Description)

	t.Run("nome duplicado falha e não cria segunda linha", func(t *testing.T) {
		_, err := uc.Create(dto.CreateCategoryRequest{Name: "Tools", Description: "outra"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.Len(t, repo.store, 1)
	})
}

func TestCategoryRoundTrip(t *testing.T) {
	uc, _ := setupCategory(t)

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Eletrônicos", Description: "placas e cabos"})
	require.NoError(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
}

func TestCategoryGetNotFound(t *testing.T) {
	uc, _ := setupCategory(t)

	_, err := uc.GetByID("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByName("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate(t *testing.T) {
	uc, _ := setupCategory(t)
	a, _ := uc.Create(dto.CreateCategoryRequest{Name: "A", Description: "a"})
	_, err := uc.Create(dto.CreateCategoryRequest{Name: "B", Description: "b"})
	require.NoError(t, err)

	t.Run("sobrescreve os dois campos", func(t *testing.T) {
		out, err := uc.Update(a.ID, dto.UpdateCategoryRequest{Name: "A2", Description: "a2"})
		require.NoError(t, err)
		assert.Equal(t, "A2", out.Name)
		assert.Equal(t, "a2", out.Description)
	})

	t.Run("novo nome de outra categoria conflita", func(t *testing.T) {
		_, err := uc.Update(a.ID, dto.UpdateCategoryRequest{Name: "B", Description: "x"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("manter o próprio nome não conflita", func(t *testing.T) {
		_, err := uc.Update(a.ID, dto.UpdateCategoryRequest{Name: "A2", Description: "a3"})
		assert.NoError(t, err)
	})

	t.Run("id ausente devolve NotFound", func(t *testing.T) {
		_, err := uc.Update("nope", dto.UpdateCategoryRequest{Name: "C", Description: "c"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCategoryUpdatePartial(t *testing.T) {
	uc, _ := setupCategory(t)
	a, _ := uc.Create(dto.CreateCategoryRequest{Name: "Ferramentas", Description: "manuais"})

	t.Run("só o campo presente é aplicado", func(t *testing.T) {
		out, err := uc.UpdatePartial(a.ID, dto.PatchCategoryRequest{Description: strPtr("elétricas")})
		require.NoError(t, err)
		assert.Equal(t, "Ferramentas", out.Name)
		assert.Equal(t, "elétricas", out.Description)
	})

	t.Run("patch vazio deixa tudo intocado", func(t *testing.T) {
		out, err := uc.UpdatePartial(a.ID, dto.PatchCategoryRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Ferramentas", out.Name)
		assert.Equal(t, "elétricas", out.Description)
	})

	t.Run("mesmo nome no patch não conflita", func(t *testing.T) {
		_, err := uc.UpdatePartial(a.ID, dto.PatchCategoryRequest{Name: strPtr("Ferramentas")})
		assert.NoError(t, err)
	})
}

func TestCategoryDelete(t *testing.T) {
	uc, repo := setupCategory(t)
	a, _ := uc.Create(dto.CreateCategoryRequest{Name: "Temp", Description: "t"})

	require.NoError(t, uc.Delete(a.ID))
	assert.Empty(t, repo.store)

	assert.ErrorIs(t, uc.Delete(a.ID), domain.ErrNotFound)
}

func TestCategoryList(t *testing.T) {
	uc, _ := setupCategory(t)
	for _, name := range []string{"A", "B", "C"} {
		_, err := uc.Create(dto.CreateCategoryRequest{Name: name, Description: name})
		require.NoError(t, err)
	}

	out, err := uc.List(2, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Limit)
}
