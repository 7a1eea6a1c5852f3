package handler

import (
	"errors"
	"fmt"
	"net/http"

	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	catalogService service.CatalogServiceInterface
}

func NewServiceHandler(catalogService service.CatalogServiceInterface) *ServiceHandler {
	return &ServiceHandler{
		catalogService: catalogService,
	}
}

// HomeServices обрабатывает GET /home-services
func (h *ServiceHandler) HomeServices(c *gin.Context) {
	services, err := h.catalogService.HomeServices(c.Request.Context())
	if err != nil {
		logFailure(c, err, "Failed to get home services")
		respondStatusError(c, err.Error())
		return
	}

	respondData(c, services)
}

// AllServices обрабатывает GET /services
func (h *ServiceHandler) AllServices(c *gin.Context) {
	services, err := h.catalogService.AllServices(c.Request.Context())
	if err != nil {
		logFailure(c, err, "Failed to get services")
		respondStatusError(c, err.Error())
		return
	}

	respondData(c, services)
}

// GetService обрабатывает GET /service/:id
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.catalogService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		logFailure(c, err, "Failed to get service")
		if errors.Is(err, service.ErrServiceNotFound) {
			respondStatusError(c, "Service not found")
			return
		}
		respondStatusError(c, err.Error())
		return
	}

	respondData(c, svc)
}

// CreateService обрабатывает POST /services; тело сохраняется без проверки схемы
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var doc entity.Document
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		respondError(c, "Invalid request body")
		return
	}

	result, err := h.catalogService.CreateService(c.Request.Context(), doc)
	if err != nil {
		logFailure(c, err, "Failed to create service")
		if errors.Is(err, service.ErrNotInserted) {
			respondError(c, "Couldn't create the service")
			return
		}
		respondError(c, err.Error())
		return
	}

	insertedID := result.InsertedID.Hex()
	response := entity.NewSuccessResponse(
		fmt.Sprintf("Successfully created the %s with id %s", doc.String(entity.FieldName), insertedID),
	)
	response.InsertedID = insertedID

	c.JSON(http.StatusOK, response)
}
