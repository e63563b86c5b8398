package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, которые репозитории переводят в доменные ошибки
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
)

// Code возвращает SQLSTATE ошибки PostgreSQL или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Constraint имя нарушенного ограничения, если есть
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return Code(err) == UniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}
