package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica se um erro é violação de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isInvalidUUID verifica se um erro é 22P02 (invalid_text_representation),
// o que acontece quando um id malformado chega a uma coluna uuid.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02"
	}
	return strings.Contains(err.Error(), "22P02")
}

// nullIfEmpty converte string vazia em NULL para colunas uuid anuláveis.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
