package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	UniqueViolation      = "23505"
	SerializationFailure = "40001"
)

// IsUniqueViolation ошибка нарушения уникального ограничения
func IsUniqueViolation(err error) bool {
	return hasCode(err, UniqueViolation)
}

// IsSerializationFailure конфликт сериализуемой транзакции
func IsSerializationFailure(err error) bool {
	return hasCode(err, SerializationFailure)
}

// Constraint имя нарушенного ограничения (пусто, если ошибка не от PostgreSQL)
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}
