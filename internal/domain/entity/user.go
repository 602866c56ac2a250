package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Authorities devolve o conjunto de papéis implicados por role:
// ADMIN implica ADMIN e USER; USER implica apenas USER.
func Authorities(role string) []string {
	if role == RoleAdmin {
		return []string{RoleAdmin, RoleUser}
	}
	return []string{RoleUser}
}

// User representa um usuário do sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca em claro depois de persistir
	Role         string // ADMIN, USER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
