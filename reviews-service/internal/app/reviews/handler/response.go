package handler

import (
	"errors"
	"net/http"

	"servicereviews/pkg/logger"
	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
)

// Все ответы обработчиков идут с HTTP 200; успех или ошибка видны по полю success

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, entity.NewDataResponse(data))
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, entity.NewSuccessResponse(message))
}

func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, entity.NewErrorResponse(message))
}

func respondStatusError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, entity.NewStatusErrorResponse(message))
}

// logFailure пишет в лог ошибки хранилища; not found и неверный id - ожидаемые исходы
func logFailure(c *gin.Context, err error, msg string) {
	if errors.Is(err, service.ErrServiceNotFound) ||
		errors.Is(err, service.ErrReviewNotFound) ||
		errors.Is(err, service.ErrInvalidID) {
		return
	}

	_ = c.Error(err)
	logger.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.FullPath()).
		Msg(msg)
}
