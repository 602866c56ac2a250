package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Carolinyr9/estocai/internal/domain"
)

// errQuerier devolve sempre o mesmo erro, simulando o banco rejeitando a
// consulta (ex.: uuid malformado no parâmetro).
type errQuerier struct {
	err error
}

func (q errQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.err
}

func (q errQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func (q errQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{err: q.err}
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

func invalidUUIDErr() error {
	return &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}
}

func TestIsInvalidUUID(t *testing.T) {
	assert.True(t, isInvalidUUID(invalidUUIDErr()))
	assert.True(t, isInvalidUUID(fmt.Errorf("get product: %w", invalidUUIDErr())))
	assert.False(t, isInvalidUUID(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isInvalidUUID(pgx.ErrNoRows))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(invalidUUIDErr()))
}

// Um id que não é um uuid válido vira ErrInvalidInput tipado em vez de um
// erro genérico de banco.
func TestGetByIDMalformedUUID(t *testing.T) {
	q := errQuerier{err: invalidUUIDErr()}

	_, err := NewProductRepository(q).GetByID("ghost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewCategoryRepository(q).GetByID("ghost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewUserRepository(q).GetByID("ghost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewMovementRepository(q).ListByProduct("ghost", 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
