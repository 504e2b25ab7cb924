// Package router assembles the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/internal/api"
	"github.com/pageza/mealrank/backend/internal/middleware"
)

// Handlers bundles the handlers mounted under /api.
type Handlers struct {
	Meals   *api.MealHandler
	Rank    *api.RankHandler
	Recipes *api.RecipeHandler
	Images  *api.ImageHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, corsOrigins []string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.CORS(corsOrigins),
		middleware.ErrorHandler(logger),
	)
	router.NoRoute(middleware.NotFound())

	router.GET("/health", api.HealthCheck)

	v := router.Group("/api")
	v.GET("/health", api.HealthCheck)
	h.Meals.RegisterRoutes(v)
	h.Rank.RegisterRoutes(v)
	h.Recipes.RegisterRoutes(v)
	h.Images.RegisterRoutes(v)

	return router
}
