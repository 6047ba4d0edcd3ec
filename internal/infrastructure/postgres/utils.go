package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que el dominio traduce.
const (
	sqlStateUniqueViolation = "23505"
	sqlStateCheckViolation  = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation codigo o email repetido.
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == sqlStateUniqueViolation
}

// isCheckViolation un CHECK de la tabla rechazó la fila (stock negativo, más de 3 imágenes).
func isCheckViolation(err error) bool {
	return pgErrorCode(err) == sqlStateCheckViolation
}
