package postgres

import (
	"context"
	"fmt"

	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação do porto MovementRepository sobre PostgreSQL.
// O log é append-only: só INSERT e SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador de persistência para o log de
// movimentações. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma nova movimentação. product_id/user_id vazios viram NULL.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_id, date, type, description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, nullIfEmpty(movement.ProductID), movement.Date,
		movement.Type, movement.Description, nullIfEmpty(movement.UserID),
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const movementColumns = `id, COALESCE(product_id::text, ''), date, type, description, COALESCE(user_id::text, '')`

// List lista movimentações com paginação, mais recentes primeiro.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// ListByType lista movimentações de um tipo (entry, exit, edited, none).
func (r *MovementRepo) ListByType(movementType string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE type = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	return r.queryList(query, movementType, limit, offset)
}

// ListByDescription lista movimentações por descrição.
func (r *MovementRepo) ListByDescription(description string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE description = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	return r.queryList(query, description, limit, offset)
}

// ListByProduct lista o histórico de um produto, mais antigos primeiro.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE product_id = $1 ORDER BY date ASC LIMIT $2 OFFSET $3`
	return r.queryList(query, productID, limit, offset)
}

func (r *MovementRepo) queryList(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Date, &m.Type, &m.Description, &m.UserID); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return list, nil
}
