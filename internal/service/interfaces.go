package service

import (
	"context"
	"time"

	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/recipeparser"
	"github.com/pageza/mealrank/backend/internal/types"
)

// IMealService defines the interface for meal operations
type IMealService interface {
	List(ctx context.Context, opts ListOptions) ([]model.Meal, error)
	Get(ctx context.Context, id uint) (*model.Meal, error)
	Create(ctx context.Context, req *types.CreateMealRequest) (*model.Meal, error)
	Update(ctx context.Context, id uint, req *types.UpdateMealRequest) (*model.Meal, error)
	Delete(ctx context.Context, id uint) error
	History(ctx context.Context, id uint) ([]HistoryEntry, error)
}

// IRankService defines the interface for pairwise ranking
type IRankService interface {
	Pair(ctx context.Context) (*Pair, error)
	Vote(ctx context.Context, winnerID, loserID uint) (*VoteResult, error)
	Skip()
	Leaderboard(ctx context.Context) ([]model.Meal, error)
}

// IStatsService defines the interface for dashboard statistics
type IStatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}

// IImageService defines the interface for meal image storage
type IImageService interface {
	Prepare(ctx context.Context, inputs []types.ImageInput) ([]model.Image, error)
	Content(ctx context.Context, id uint) (*ImageContent, error)
}

// IRecipeService defines the interface for recipe extraction
type IRecipeService interface {
	Parse(ctx context.Context, url string) (*recipeparser.ParsedRecipe, error)
}

// RecipeParser fetches and extracts a recipe. *recipeparser.Parser implements it.
type RecipeParser interface {
	Parse(ctx context.Context, url string) (*recipeparser.ParsedRecipe, error)
}

// ObjectStore is the subset of object storage used for image uploads.
// *config.S3Config implements it.
type ObjectStore interface {
	PutObject(ctx context.Context, objectKey string, body []byte, contentType string) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// RecipeCache stores successful parse results by URL.
type RecipeCache interface {
	Get(ctx context.Context, url string) (*recipeparser.ParsedRecipe, bool, error)
	Set(ctx context.Context, url string, recipe *recipeparser.ParsedRecipe) error
}

var (
	_ IMealService   = (*MealService)(nil)
	_ IRankService   = (*RankService)(nil)
	_ IStatsService  = (*StatsService)(nil)
	_ IImageService  = (*ImageService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
	_ RecipeParser   = (*recipeparser.Parser)(nil)
)
