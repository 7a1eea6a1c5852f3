package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenManager подписывает и проверяет токены доступа (HS256).
// Issue не проверяет подлинность identity: аутентификация происходит до вызова
type TokenManager struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

func NewTokenManager(secretKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secretKey: secretKey,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Issue подписывает identity как claims и добавляет iat/exp.
// Ключи iat и exp из identity перезаписываются
func (m *TokenManager) Issue(identity map[string]interface{}) (string, error) {
	now := m.now()

	claims := make(jwt.MapClaims, len(identity)+2)
	for k, v := range identity {
		claims[k] = v
	}
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(m.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия, возвращает исходные claims
func (m *TokenManager) Verify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(m.secretKey), nil
		},
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	parsed, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return parsed, nil
}

// EmailFromClaims достает claim email; пустая строка, если его нет
func EmailFromClaims(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}
