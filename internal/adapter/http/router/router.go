package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ressKim-io/news-category-service/internal/adapter/http/handler"
	"github.com/ressKim-io/news-category-service/internal/adapter/http/middleware"
	"github.com/ressKim-io/news-category-service/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(categoryUC usecase.CategoryUsecase, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Metrics())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(categoryUC)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Category suggestion, the only cross-origin route
	categoryHandler := handler.NewCategoryHandler(categoryUC, logger)
	suggest := router.Group("/suggest-category", middleware.CORS())
	{
		suggest.POST("", categoryHandler.SuggestCategory)
		suggest.OPTIONS("", categoryHandler.Preflight)
	}

	return router
}
