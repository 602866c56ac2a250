package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do estoque. Name é único; Quantity nunca fica
// negativa (os casos de uso rejeitam qualquer operação que a tornaria negativa).
// CategoryID vazio significa produto sem categoria.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
