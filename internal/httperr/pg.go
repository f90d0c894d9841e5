package httperr

import (
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
	pgSerialization      = "40001"
	pgDeadlock           = "40P01"
	pgLockNotAvailable   = "55P03"
	pgConnectionClass    = "08"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsExclusionConflict indica violação da constraint de sobreposição de horários
func IsExclusionConflict(err error) bool {
	return pgCode(err) == pgExclusionViolation
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsTransient cobre falhas de persistência que valem uma nova tentativa.
// Erros de negócio nunca são transitórios.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := KindOf(err); ok {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	code := pgCode(err)
	switch code {
	case pgSerialization, pgDeadlock, pgLockNotAvailable:
		return true
	}
	return strings.HasPrefix(code, pgConnectionClass)
}
