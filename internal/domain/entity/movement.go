package entity

import "time"

// Tipos de movimentação (value object conceitual).
const (
	MovementTypeEntry  = "entry"
	MovementTypeExit   = "exit"
	MovementTypeEdited = "edited"
	MovementTypeNone   = "none" // consultas não alteram estoque
)

// Descrições de movimentação.
const (
	MovementAdded             = "added"
	MovementQuantityDecreased = "quantity decreased"
	MovementQuantityIncreased = "quantity increased"
	MovementEdited            = "edited"
	MovementRemoved           = "removed"
	MovementConsult           = "consult"
)

// Movement é o registro imutável de auditoria de um evento sobre um produto
// (criação, edição, ajuste de quantidade, remoção ou simples consulta).
// Nunca é atualizado nem removido pela camada de serviço.
// ProductID fica vazio quando o produto já foi removido (FK anulada).
type Movement struct {
	ID          string
	ProductID   string
	Date        time.Time
	Type        string // entry, exit, edited, none
	Description string // added, quantity decreased, quantity increased, edited, removed, consult
	UserID      string // usuário que causou o evento; vazio se anônimo
}
