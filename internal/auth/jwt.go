package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается для непроходящего проверку токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInvalidClaims возвращается, если в токене нет id или роли
	ErrInvalidClaims = errors.New("auth: invalid token claims")
)

// Claims полезная нагрузка токена, выпускаемого сервисом идентификации
type Claims struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	UserType UserType `json:"userType"`
	jwt.RegisteredClaims
}

// TokenManager проверяет и выпускает HS256 токены
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Parse проверяет подпись и срок действия, возвращает Identity
func (m *TokenManager) Parse(tokenStr string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.ID <= 0 || !claims.UserType.IsValid() {
		return Identity{}, ErrInvalidClaims
	}

	return Identity{ID: claims.ID, Email: claims.Email, UserType: claims.UserType}, nil
}

// Issue выпускает токен (используется командой seed и в тестах)
func (m *TokenManager) Issue(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:       id.ID,
		Email:    id.Email,
		UserType: id.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}
