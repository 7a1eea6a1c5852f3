package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReviewService мок для ReviewServiceInterface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(entity.InsertResult), args.Error(1)
}

func (m *MockReviewService) GetReviewsByService(ctx context.Context, serviceID string) ([]entity.Document, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockReviewService) GetUserReviews(ctx context.Context, email string) ([]entity.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockReviewService) GetReview(ctx context.Context, reviewID string, owner string) (entity.Document, error) {
	args := m.Called(ctx, reviewID, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.Document), args.Error(1)
}

func (m *MockReviewService) UpdateReviewMessage(ctx context.Context, reviewID string, owner string, message string) error {
	args := m.Called(ctx, reviewID, owner, message)
	return args.Error(0)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, reviewID string, owner string) (bool, error) {
	args := m.Called(ctx, reviewID, owner)
	return args.Bool(0), args.Error(1)
}

func TestCreateReview_ReturnsRawInsertResult(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(http.MethodPost, "/review", map[string]interface{}{"serviceId": testServiceID, "email": "a@x.com", "message": "Great"}, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["acknowledged"])
	assert.Len(t, body["insertedId"], 24)
	assert.NotContains(t, body, "success")
}

func TestReviewsByService_NewestFirst(t *testing.T) {
	s := setupTestServer(t)

	first := s.createReview(t, map[string]interface{}{"serviceId": testServiceID, "email": "a@x.com", "message": "first"})
	s.createReview(t, map[string]interface{}{"serviceId": otherServiceID, "email": "a@x.com", "message": "other"})
	second := s.createReview(t, map[string]interface{}{"serviceId": testServiceID, "email": "b@x.com", "message": "second"})

	reviews := decodeList(t, s.do(http.MethodGet, "/review/"+testServiceID, nil, ""))

	require.Len(t, reviews, 2)
	assert.Equal(t, second, reviews[0].(map[string]interface{})["_id"])
	assert.Equal(t, first, reviews[1].(map[string]interface{})["_id"])
	assert.Empty(t, decodeList(t, s.do(http.MethodGet, "/review/"+unknownServiceID, nil, "")))
}

func TestReviewsByService_MalformedID(t *testing.T) {
	s := setupTestServer(t)

	s.createReview(t, map[string]interface{}{"serviceId": "not-an-object-id", "email": "a@x.com", "message": "stray"})

	w := s.do(http.MethodGet, "/review/not-an-object-id", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, `invalid identifier: "not-an-object-id"`, body["error"])
	assert.NotContains(t, body, "data")
}

func TestMyReviews_UsesVerifiedEmail(t *testing.T) {
	s := setupTestServer(t)

	mine := s.createReview(t, map[string]interface{}{"serviceId": testServiceID, "email": "a@x.com", "message": "mine"})
	s.createReview(t, map[string]interface{}{"serviceId": testServiceID, "email": "b@x.com", "message": "theirs"})
	token := s.token(t, "a@x.com")

	for _, path := range []string{"/my-reviews?email=a@x.com", "/my-reviews"} {
		t.Run(path, func(t *testing.T) {
			reviews := decodeList(t, s.do(http.MethodGet, path, nil, token))

			require.Len(t, reviews, 1)
			assert.Equal(t, mine, reviews[0].(map[string]interface{})["_id"])
		})
	}
}

func TestMyReview_ScopedToOwner(t *testing.T) {
	s := setupTestServer(t)

	id := s.createReview(t, map[string]interface{}{"serviceId": testServiceID, "email": "a@x.com", "message": "mine"})

	body := decode(t, s.do(http.MethodGet, "/my-review/"+id, nil, s.token(t, "a@x.com")))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "mine", body["data"].(map[string]interface{})["message"])

	other := s.token(t, "b@x.com")
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		body := decode(t, s.do(method, "/my-review/"+id, map[string]interface{}{"message": "hijack"}, other))
		assert.Equal(t, false, body["success"], method)
		assert.Equal(t, "Review not found", body["error"], method)
	}

	body = decode(t, s.do(http.MethodGet, "/my-review/"+id, nil, s.token(t, "a@x.com")))
	assert.Equal(t, "mine", body["data"].(map[string]interface{})["message"])
}

func TestMyReview_MalformedID(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(http.MethodGet, "/my-review/xyz", nil, s.token(t, "a@x.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "invalid identifier")
}

func TestUpdateMyReview_ChangesOnlyMessage(t *testing.T) {
	s := setupTestServer(t)
	token := s.token(t, "a@x.com")

	id := s.createReview(t, map[string]interface{}{"serviceId": testServiceID, "email": "a@x.com", "message": "old", "rating": 4})

	body := decode(t, s.do(http.MethodPut, "/my-review/"+id, map[string]interface{}{"message": "new", "rating": 1}, token))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Review updated successfully", body["message"])

	data := decode(t, s.do(http.MethodGet, "/my-review/"+id, nil, token))["data"].(map[string]interface{})
	assert.Equal(t, "new", data["message"])
	assert.Equal(t, float64(4), data["rating"])
	assert.Equal(t, testServiceID, data["serviceId"])
}

func TestDeleteMyReview(t *testing.T) {
	s := setupTestServer(t)
	token := s.token(t, "a@x.com")

	id := s.createReview(t, map[string]interface{}{"serviceId": testServiceID, "email": "a@x.com", "message": "bye"})

	body := decode(t, s.do(http.MethodDelete, "/my-review/"+id, nil, token))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Review deleted successfully", body["message"])

	body = decode(t, s.do(http.MethodDelete, "/my-review/"+id, nil, token))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Review not found", body["error"])

	assert.Empty(t, decodeList(t, s.do(http.MethodGet, "/review/"+testServiceID, nil, "")))
}

func TestDeleteMyReview_ConcurrentDeleteReportsAlreadyDeleted(t *testing.T) {
	tokens := util.NewTokenManager(testSecret, time.Hour)
	reviews := new(MockReviewService)
	router := newRouter(reviews, tokens)

	id := "64b7f0c2a1b2c3d4e5f60718"
	reviews.On("DeleteReview", mock.Anything, id, "a@x.com").Return(false, nil)

	token, err := tokens.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	body := decode(t, serve(router, http.MethodDelete, "/my-review/"+id, nil, token))

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Review already deleted", body["message"])
	reviews.AssertExpectations(t)
}
