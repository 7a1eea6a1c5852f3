package handler

import (
	"errors"
	"net/http"
	"strings"

	"servicereviews/pkg/logger"
	"servicereviews/pkg/metrics"
	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Ключи контекста Gin, которые выставляет AuthMiddleware
const (
	ContextKeyClaims = "claims"
	ContextKeyEmail  = "email"
)

const (
	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
)

// TokenVerifier - проверка токена, которую использует gate
type TokenVerifier interface {
	Verify(tokenString string) (jwt.MapClaims, error)
}

// AuthMiddleware - gate для маршрутов /my-review* и /my-reviews
type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate проверяет Bearer-токен до вызова обработчика.
// Нет заголовка - 401, любой другой отказ - 403
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reject(c, http.StatusUnauthorized, "missing_header", msgUnauthorized)
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			reject(c, http.StatusForbidden, "invalid_token", msgForbidden)
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			reason := "invalid_token"
			if errors.Is(err, util.ErrExpiredToken) {
				reason = "expired_token"
			}
			reject(c, http.StatusForbidden, reason, msgForbidden)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyEmail, util.EmailFromClaims(claims))

		c.Next()
	}
}

// RequireMatchingEmail сравнивает ?email= с email из токена.
// Несовпадение останавливает запрос с 403; пустой ?email= заменяется email из токена
func (m *AuthMiddleware) RequireMatchingEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		queryEmail := c.Query("email")
		if queryEmail == "" {
			c.Next()
			return
		}

		if queryEmail != verifiedEmail(c) {
			reject(c, http.StatusForbidden, "email_mismatch", msgForbidden)
			return
		}

		c.Next()
	}
}

func reject(c *gin.Context, status int, reason string, message string) {
	metrics.AuthGateRejections.WithLabelValues(reason).Inc()
	logger.Debug().
		Str("path", c.Request.URL.Path).
		Str("reason", reason).
		Msg("Request rejected by authorization gate")
	c.AbortWithStatusJSON(status, entity.NewErrorResponse(message))
}

// verifiedEmail возвращает email, выставленный Authenticate
func verifiedEmail(c *gin.Context) string {
	return c.GetString(ContextKeyEmail)
}
