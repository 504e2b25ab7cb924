package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/service"
	"github.com/pageza/mealrank/backend/internal/types"
)

const msgNeedTwoMeals = "Add at least 2 meals to start ranking!"

// PairResponse is the body of GET /rank/pair.
type PairResponse struct {
	MealA   *model.Meal `json:"mealA"`
	MealB   *model.Meal `json:"mealB"`
	Message *string     `json:"message"`
}

// RankHandler serves matchups, votes and the leaderboard.
type RankHandler struct {
	rank   service.IRankService
	stats  service.IStatsService
	logger *zap.Logger
}

// NewRankHandler creates a new rank handler
func NewRankHandler(rank service.IRankService, stats service.IStatsService, logger *zap.Logger) *RankHandler {
	return &RankHandler{rank: rank, stats: stats, logger: logger}
}

// RegisterRoutes registers ranking and stats routes on router.
func (h *RankHandler) RegisterRoutes(router *gin.RouterGroup) {
	rank := router.Group("/rank")
	{
		rank.GET("/pair", h.GetPair)
		rank.POST("/vote", h.Vote)
		rank.POST("/skip", h.Skip)
		rank.GET("/leaderboard", h.Leaderboard)
	}
	router.GET("/stats", h.Stats)
}

// GetPair handles GET /rank/pair
func (h *RankHandler) GetPair(c *gin.Context) {
	pair, err := h.rank.Pair(c.Request.Context())
	if err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	resp := PairResponse{MealA: pair.MealA, MealB: pair.MealB}
	if pair.MealA == nil || pair.MealB == nil {
		msg := msgNeedTwoMeals
		resp = PairResponse{Message: &msg}
	}
	c.JSON(http.StatusOK, resp)
}

// Vote handles POST /rank/vote
func (h *RankHandler) Vote(c *gin.Context) {
	var req types.VoteRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.rank.Vote(c.Request.Context(), req.WinnerID, req.LoserID)
	if err != nil {
		serviceError(c, h.logger, err, "Meals not found")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Skip handles POST /rank/skip
func (h *RankHandler) Skip(c *gin.Context) {
	h.rank.Skip()
	c.Status(http.StatusNoContent)
}

// Leaderboard handles GET /rank/leaderboard
func (h *RankHandler) Leaderboard(c *gin.Context) {
	meals, err := h.rank.Leaderboard(c.Request.Context())
	if err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// Stats handles GET /stats
func (h *RankHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		serviceError(c, h.logger, err, msgMealNotFound)
		return
	}
	c.JSON(http.StatusOK, stats)
}
