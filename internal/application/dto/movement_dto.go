package dto

import "time"

// MovementResponse saída de uma movimentação do log de auditoria.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id,omitempty"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	UserID      string    `json:"user_id,omitempty"`
}

// MovementListResponse lista paginada de movimentações.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
