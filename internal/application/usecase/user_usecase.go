package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Carolinyr9/estocai/internal/application/dto"
	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/internal/domain/repository"
)

// UserUseCase casos de uso de manutenção de usuários: patch, troca de papel
// e remoção. Senhas presentes num patch são re-hasheadas com bcrypt.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtém um usuário por ID. ErrNotFound se ausente.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdatePartial aplica username/email/password presentes no patch; campos
// ausentes ficam intocados. ErrDuplicate se o novo username ou email já
// pertence a outro usuário.
func (uc *UserUseCase) UpdatePartial(id string, in dto.PatchUserRequest) (*dto.UserResponse, error) {
	user, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil && *in.Username != user.Username {
		other, err := uc.repo.GetByUsername(*in.Username)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.ErrDuplicate
		}
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.ErrDuplicate
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateRole sobrescreve o papel do usuário incondicionalmente.
func (uc *UserUseCase) UpdateRole(id string, role string) (*dto.UserResponse, error) {
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete remove um usuário por ID. ErrNotFound se ausente.
func (uc *UserUseCase) Delete(id string) error {
	if _, err := uc.findExisting(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *UserUseCase) findExisting(id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
