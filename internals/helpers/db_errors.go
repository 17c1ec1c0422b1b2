package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kode error Postgres yang dipetakan ke response klien.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// IsUniqueViolation: duplikat unique key (email, nama group/room, dst).
func IsUniqueViolation(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgUniqueViolation
	}
	// fallback substring untuk driver lain / error terbungkus
	s := strings.ToLower(errMsg(err))
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// IsForeignKeyViolation: referensi group/subject/teacher/room tidak ada.
func IsForeignKeyViolation(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgForeignKeyViolation
	}
	s := strings.ToLower(errMsg(err))
	return strings.Contains(s, "foreign key")
}

// IsCheckViolation: constraint CHECK (mis. grade_score di luar 1..5).
func IsCheckViolation(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgCheckViolation
	}
	s := strings.ToLower(errMsg(err))
	return strings.Contains(s, "check constraint")
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

func errMsg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
