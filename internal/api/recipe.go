package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/internal/middleware"
	"github.com/pageza/mealrank/backend/internal/recipeparser"
	"github.com/pageza/mealrank/backend/internal/service"
	"github.com/pageza/mealrank/backend/internal/types"
)

const msgParseFailed = "Failed to parse recipe"

// RecipeHandler serves recipe extraction and single-ingredient nutrition.
type RecipeHandler struct {
	recipes     service.IRecipeService
	rateLimiter *middleware.RateLimiter
	logger      *zap.Logger
}

// NewRecipeHandler creates a new recipe handler. rateLimiter may be nil.
func NewRecipeHandler(recipes service.IRecipeService, rateLimiter *middleware.RateLimiter, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, rateLimiter: rateLimiter, logger: logger}
}

// RegisterRoutes registers recipe and nutrition routes on router.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/parse", h.rateLimiter.Middleware(), h.ParseRecipe)
	router.POST("/nutrition/lookup", h.LookupNutrition)
}

// ParseRecipe handles POST /recipes/parse. Extraction failures are 400 with
// the parser's user-facing message.
func (h *RecipeHandler) ParseRecipe(c *gin.Context) {
	var req types.ParseRecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipes.Parse(c.Request.Context(), req.URL)
	if err != nil {
		var perr *recipeparser.Error
		if errors.As(err, &perr) {
			respondError(c, http.StatusBadRequest, perr.Error())
			return
		}
		h.logger.Warn("recipe parse failed", zap.String("url", req.URL), zap.Error(err))
		respondError(c, http.StatusBadRequest, msgParseFailed)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// LookupNutrition handles POST /nutrition/lookup
func (h *RecipeHandler) LookupNutrition(c *gin.Context) {
	var req types.NutritionLookupRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.LookupNutrition(req.Name, req.Amount, req.Unit))
}
