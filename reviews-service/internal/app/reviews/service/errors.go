package service

import (
	"errors"

	"servicereviews/reviews-service/internal/app/reviews/repository"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrServiceNotFound = errors.New("service not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotInserted     = errors.New("store did not return an inserted id")

	// ErrInvalidID оборачивается вместе с исходным значением идентификатора
	ErrInvalidID = repository.ErrInvalidID
)
