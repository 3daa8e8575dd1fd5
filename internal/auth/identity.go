package auth

import (
	"context"
	"errors"
)

// UserType роль пользователя
type UserType string

const (
	UserTypeAdmin   UserType = "admin"
	UserTypeDoctor  UserType = "doctor"
	UserTypePatient UserType = "patient"
)

// IsValid проверяет, что роль известна
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeAdmin, UserTypeDoctor, UserTypePatient:
		return true
	}
	return false
}

// Identity аутентифицированный пользователь запроса
type Identity struct {
	ID       int64
	Email    string
	UserType UserType
}

func (i Identity) IsDoctor() bool {
	return i.UserType == UserTypeDoctor
}

func (i Identity) IsPatient() bool {
	return i.UserType == UserTypePatient
}

// ErrNoIdentity возвращается, если в контексте нет пользователя
var ErrNoIdentity = errors.New("auth: no identity in context")

type identityKey struct{}

// WithIdentity кладет пользователя в контекст запроса
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext достает пользователя из контекста запроса
func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
