package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken_ReturnsVerifiableToken(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(http.MethodPost, "/jwt", map[string]interface{}{"email": "a@x.com", "name": "Ann"}, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok)

	claims, err := s.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "Ann", claims["name"])
}

func TestIssueToken_InvalidBody(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(http.MethodPost, "/jwt", "not json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid request body", body["error"])
}
