package handler

import (
	"net/http"

	"servicereviews/pkg/metrics"
	"servicereviews/reviews-service/internal/app/reviews/entity"

	"github.com/gin-gonic/gin"
)

// TokenIssuer выдает подписанный токен для произвольной identity
type TokenIssuer interface {
	Issue(identity map[string]interface{}) (string, error)
}

type AuthHandler struct {
	issuer TokenIssuer
}

func NewAuthHandler(issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{
		issuer: issuer,
	}
}

// IssueToken обрабатывает POST /jwt.
// Подлинность identity не проверяется: это подпись claims, а не вход в систему
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var identity entity.IdentityRequest
	if err := c.ShouldBindJSON(&identity); err != nil {
		respondError(c, "Invalid request body")
		return
	}

	token, err := h.issuer.Issue(identity)
	if err != nil {
		logFailure(c, err, "Failed to issue token")
		respondError(c, err.Error())
		return
	}

	metrics.AuthTokensIssued.Inc()
	c.JSON(http.StatusOK, entity.TokenResponse{Token: token})
}
