package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"servicereviews/pkg/logger"
	"servicereviews/pkg/metrics"
)

const serviceName = "reviews-service"

// Handlers - набор обработчиков, которые регистрирует SetupRoutes
type Handlers struct {
	Auth     *AuthHandler
	Services *ServiceHandler
	Reviews  *ReviewHandler
}

func SetupRoutes(handlers Handlers, authMiddleware *AuthMiddleware, allowOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware(serviceName))

	router.Use(cors.New(corsConfig(allowOrigins)))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Service review server is running")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/jwt", handlers.Auth.IssueToken)

	router.GET("/home-services", handlers.Services.HomeServices)
	router.GET("/services", handlers.Services.AllServices)
	router.GET("/service/:id", handlers.Services.GetService)
	router.POST("/services", handlers.Services.CreateService)

	router.POST("/review", handlers.Reviews.CreateReview)
	router.GET("/review/:id", handlers.Reviews.GetReviewsByService)

	router.GET("/my-reviews",
		authMiddleware.Authenticate(),
		authMiddleware.RequireMatchingEmail(),
		handlers.Reviews.GetMyReviews,
	)

	myReview := router.Group("/my-review")
	myReview.Use(authMiddleware.Authenticate())
	{
		myReview.GET("/:id", handlers.Reviews.GetMyReview)
		myReview.PUT("/:id", handlers.Reviews.UpdateMyReview)
		myReview.DELETE("/:id", handlers.Reviews.DeleteMyReview)
	}

	return router
}

// corsConfig разрешает любые origin для "*", иначе только перечисленные
func corsConfig(allowOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		config.AllowAllOrigins = true
		return config
	}

	config.AllowOrigins = allowOrigins
	config.AllowCredentials = true
	return config
}
