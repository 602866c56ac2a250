package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Carolinyr9/estocai/internal/application/dto"
	"github.com/Carolinyr9/estocai/internal/application/usecase"
	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
)

func setupUser(t *testing.T) (*usecase.UserUseCase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return usecase.NewUserUseCase(repo), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestUserGetByID(t *testing.T) {
	uc, repo := setupUser(t)
	u := seedUser(t, repo, "carol", "carol@estocai.dev", "secret", entity.RoleUser)

	out, err := uc.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", out.Username)
	assert.Equal(t, entity.RoleUser, out.Role)

	_, err = uc.GetByID("ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUpdatePartial(t *testing.T) {
	uc, repo := setupUser(t)
	u := seedUser(t, repo, "carol", "carol@estocai.dev", "secret", entity.RoleUser)
	seedUser(t, repo, "joao", "joao@estocai.dev", "secret", entity.RoleUser)

	t.Run("aplica só os campos presentes", func(t *testing.T) {
		out, err := uc.UpdatePartial(u.ID, dto.PatchUserRequest{Email: strPtr("nova@estocai.dev")})
		require.NoError(t, err)
		assert.Equal(t, "carol", out.Username)
		assert.Equal(t, "nova@estocai.dev", out.Email)
	})

	t.Run("senha presente é re-hasheada", func(t *testing.T) {
		oldHash := mustGetUser(t, repo, u.ID).PasswordHash
		_, err := uc.UpdatePartial(u.ID, dto.PatchUserRequest{Password: strPtr("outra")})
		require.NoError(t, err)

		stored := mustGetUser(t, repo, u.ID)
		assert.NotEqual(t, oldHash, stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("outra")))
	})

	t.Run("username de outro usuário conflita", func(t *testing.T) {
		_, err := uc.UpdatePartial(u.ID, dto.PatchUserRequest{Username: strPtr("joao")})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("email de outro usuário conflita", func(t *testing.T) {
		_, err := uc.UpdatePartial(u.ID, dto.PatchUserRequest{Email: strPtr("joao@estocai.dev")})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("manter o próprio username não conflita", func(t *testing.T) {
		_, err := uc.UpdatePartial(u.ID, dto.PatchUserRequest{Username: strPtr("carol")})
		assert.NoError(t, err)
	})

	t.Run("ausente devolve NotFound", func(t *testing.T) {
		_, err := uc.UpdatePartial("ghost", dto.PatchUserRequest{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserUpdateRole(t *testing.T) {
	uc, repo := setupUser(t)
	u := seedUser(t, repo, "carol", "carol@estocai.dev", "secret", entity.RoleUser)

	out, err := uc.UpdateRole(u.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	t.Run("papel desconhecido é rejeitado", func(t *testing.T) {
		_, err := uc.UpdateRole(u.ID, "ROOT")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("ausente devolve NotFound", func(t *testing.T) {
		_, err := uc.UpdateRole("ghost", entity.RoleUser)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserDelete(t *testing.T) {
	uc, repo := setupUser(t)
	u := seedUser(t, repo, "carol", "carol@estocai.dev", "secret", entity.RoleUser)

	require.NoError(t, uc.Delete(u.ID))
	stored, _ := repo.GetByID(u.ID)
	assert.Nil(t, stored)

	assert.ErrorIs(t, uc.Delete(u.ID), domain.ErrNotFound)
}

func mustGetUser(t *testing.T, repo *fakeUserRepo, id string) *entity.User {
	t.Helper()
	u, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}
