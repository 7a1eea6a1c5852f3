package handler

import (
	"errors"
	"net/http"

	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
}

func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview обрабатывает POST /review и отдает результат вставки без обертки
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var doc entity.Document
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		respondError(c, "Invalid request body")
		return
	}

	result, err := h.reviewService.CreateReview(c.Request.Context(), doc)
	if err != nil {
		logFailure(c, err, "Failed to create review")
		respondError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReviewsByService обрабатывает GET /review/:id, где id - serviceId
func (h *ReviewHandler) GetReviewsByService(c *gin.Context) {
	reviews, err := h.reviewService.GetReviewsByService(c.Request.Context(), c.Param("id"))
	if err != nil {
		logFailure(c, err, "Failed to get reviews")
		respondError(c, err.Error())
		return
	}

	respondData(c, reviews)
}

// GetMyReviews обрабатывает GET /my-reviews.
// Совпадение ?email= с токеном уже проверено RequireMatchingEmail
func (h *ReviewHandler) GetMyReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetUserReviews(c.Request.Context(), verifiedEmail(c))
	if err != nil {
		logFailure(c, err, "Failed to get user reviews")
		respondError(c, err.Error())
		return
	}

	respondData(c, reviews)
}

// GetMyReview обрабатывает GET /my-review/:id
func (h *ReviewHandler) GetMyReview(c *gin.Context) {
	review, err := h.reviewService.GetReview(c.Request.Context(), c.Param("id"), verifiedEmail(c))
	if err != nil {
		logFailure(c, err, "Failed to get review")
		respondError(c, reviewErrorMessage(err))
		return
	}

	respondData(c, review)
}

// UpdateMyReview обрабатывает PUT /my-review/:id; меняется только message
func (h *ReviewHandler) UpdateMyReview(c *gin.Context) {
	var req entity.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "Invalid request body")
		return
	}

	err := h.reviewService.UpdateReviewMessage(c.Request.Context(), c.Param("id"), verifiedEmail(c), req.Message)
	if err != nil {
		logFailure(c, err, "Failed to update review")
		respondError(c, reviewErrorMessage(err))
		return
	}

	respondMessage(c, "Review updated successfully")
}

// DeleteMyReview обрабатывает DELETE /my-review/:id
func (h *ReviewHandler) DeleteMyReview(c *gin.Context) {
	deleted, err := h.reviewService.DeleteReview(c.Request.Context(), c.Param("id"), verifiedEmail(c))
	if err != nil {
		logFailure(c, err, "Failed to delete review")
		respondError(c, reviewErrorMessage(err))
		return
	}

	if !deleted {
		respondMessage(c, "Review already deleted")
		return
	}

	respondMessage(c, "Review deleted successfully")
}

func reviewErrorMessage(err error) string {
	if errors.Is(err, service.ErrReviewNotFound) {
		return "Review not found"
	}
	return err.Error()
}
