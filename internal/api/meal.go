package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/internal/service"
	"github.com/pageza/mealrank/backend/internal/types"
)

const msgMealNotFound = "Meal not found"

// MealHandler serves meal CRUD and history.
type MealHandler struct {
	meals  service.IMealService
	logger *zap.Logger
}

// NewMealHandler creates a new meal handler
func NewMealHandler(meals service.IMealService, logger *zap.Logger) *MealHandler {
	return &MealHandler{meals: meals, logger: logger}
}

// RegisterRoutes registers meal routes on router.
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.GET("/:id", h.GetMeal)
		meals.GET("/:id/history", h.GetHistory)
		meals.POST("", h.CreateMeal)
		meals.PUT("/:id", h.UpdateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

// ListMeals handles GET /meals?sortBy=&sortDir=&search=
func (h *MealHandler) ListMeals(c *gin.Context) {
	meals, err := h.meals.List(c.Request.Context(), service.ListOptions{
		SortBy:  c.Query("sortBy"),
		SortDir: c.Query("sortDir"),
		Search:  c.Query("search"),
	})
	if err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GetMeal handles GET /meals/:id
func (h *MealHandler) GetMeal(c *gin.Context) {
	id, ok := idParam(c, "id", "meal")
	if !ok {
		return
	}
	meal, err := h.meals.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// GetHistory handles GET /meals/:id/history
func (h *MealHandler) GetHistory(c *gin.Context) {
	id, ok := idParam(c, "id", "meal")
	if !ok {
		return
	}
	history, err := h.meals.History(c.Request.Context(), id)
	if err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	c.JSON(http.StatusOK, history)
}

// CreateMeal handles POST /meals
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req types.CreateMealRequest
	if !bindJSON(c, &req) {
		return
	}
	meal, err := h.meals.Create(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// UpdateMeal handles PUT /meals/:id
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	id, ok := idParam(c, "id", "meal")
	if !ok {
		return
	}
	var req types.UpdateMealRequest
	if !bindJSON(c, &req) {
		return
	}
	meal, err := h.meals.Update(c.Request.Context(), id, &req)
	if err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DeleteMeal handles DELETE /meals/:id
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	id, ok := idParam(c, "id", "meal")
	if !ok {
		return
	}
	if err := h.meals.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
