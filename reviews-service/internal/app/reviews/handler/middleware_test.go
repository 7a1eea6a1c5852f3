package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicereviews/reviews-service/internal/app/reviews/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var gatedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/my-reviews?email=a@x.com"},
	{http.MethodGet, "/my-review/64b7f0c2a1b2c3d4e5f60718"},
	{http.MethodPut, "/my-review/64b7f0c2a1b2c3d4e5f60718"},
	{http.MethodDelete, "/my-review/64b7f0c2a1b2c3d4e5f60718"},
}

// Gate отрабатывает до сервиса: мок без ожиданий упадет при любом вызове
func TestGate_MissingHeaderIsUnauthorized(t *testing.T) {
	reviews := new(MockReviewService)
	router := newRouter(reviews, util.NewTokenManager(testSecret, time.Hour))

	for _, route := range gatedRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := serve(router, route.method, route.path, map[string]interface{}{"message": "x"}, "")

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "unauthorized access", body["error"])
		})
	}

	reviews.AssertNotCalled(t, "GetUserReviews", mock.Anything, mock.Anything)
	reviews.AssertNotCalled(t, "GetReview", mock.Anything, mock.Anything, mock.Anything)
	reviews.AssertNotCalled(t, "UpdateReviewMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	reviews.AssertNotCalled(t, "DeleteReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestGate_BadCredentialsAreForbidden(t *testing.T) {
	reviews := new(MockReviewService)
	router := newRouter(reviews, util.NewTokenManager(testSecret, time.Hour))

	expired, err := util.NewTokenManager(testSecret, -time.Minute).Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)
	foreign, err := util.NewTokenManager("other-secret", time.Hour).Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	headers := map[string]string{
		"garbage token": "Bearer garbage",
		"wrong scheme":  "Token " + foreign,
		"empty bearer":  "Bearer ",
		"expired token": "Bearer " + expired,
		"wrong secret":  "Bearer " + foreign,
	}

	for name, header := range headers {
		for _, route := range gatedRoutes {
			t.Run(name+" "+route.method, func(t *testing.T) {
				req, _ := http.NewRequest(route.method, route.path, bytes.NewReader([]byte(`{"message":"x"}`)))
				req.Header.Set("Authorization", header)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusForbidden, w.Code)
				assert.Equal(t, "forbidden access", decode(t, w)["error"])
			})
		}
	}

	reviews.AssertNotCalled(t, "GetUserReviews", mock.Anything, mock.Anything)
	reviews.AssertNotCalled(t, "DeleteReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestMyReviews_EmailMismatchStopsRequest(t *testing.T) {
	tokens := util.NewTokenManager(testSecret, time.Hour)
	reviews := new(MockReviewService)
	router := newRouter(reviews, tokens)

	token, err := tokens.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	w := serve(router, http.MethodGet, "/my-reviews?email=b@x.com", nil, token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "forbidden access", body["error"])
	reviews.AssertNotCalled(t, "GetUserReviews", mock.Anything, mock.Anything)
}
