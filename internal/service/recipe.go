package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/internal/nutrition"
	"github.com/pageza/mealrank/backend/internal/recipeparser"
)

const recipeCachePrefix = "recipe_parse:"

// RecipeService extracts recipes from web pages, caching successful results.
type RecipeService struct {
	parser RecipeParser
	cache  RecipeCache
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance. cache may be nil.
func NewRecipeService(parser RecipeParser, cache RecipeCache, logger *zap.Logger) *RecipeService {
	return &RecipeService{parser: parser, cache: cache, logger: logger}
}

// Parse returns the cached recipe for url or fetches it. Cache failures are
// logged and otherwise ignored; parse failures are never cached.
func (s *RecipeService) Parse(ctx context.Context, url string) (*recipeparser.ParsedRecipe, error) {
	url = strings.TrimSpace(url)

	if s.cache != nil {
		recipe, ok, err := s.cache.Get(ctx, url)
		switch {
		case err != nil:
			s.logger.Warn("recipe cache read failed", zap.String("url", url), zap.Error(err))
		case ok:
			s.logger.Debug("recipe cache hit", zap.String("url", url))
			return recipe, nil
		}
	}

	recipe, err := s.parser.Parse(ctx, url)
	if err != nil {
		s.logger.Info("recipe parse failed",
			zap.String("url", url), zap.Stringer("kind", recipeparser.KindOf(err)), zap.Error(errors.Unwrap(err)))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, url, recipe); err != nil {
			s.logger.Warn("recipe cache write failed", zap.String("url", url), zap.Error(err))
		}
	}
	return recipe, nil
}

// LookupNutrition estimates macros for one ingredient. Unknown ingredients
// yield zeros.
func LookupNutrition(name string, amount float64, unit string) nutrition.Macros {
	if unit == "" {
		unit = "unit"
	}
	m, _ := nutrition.Lookup(name, amount, unit)
	return m
}

// RedisRecipeCache stores parse results as JSON under a hash of the URL.
type RedisRecipeCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisRecipeCache returns a cache whose entries expire after ttl.
func NewRedisRecipeCache(client redis.Cmdable, ttl time.Duration) *RedisRecipeCache {
	return &RedisRecipeCache{client: client, ttl: ttl}
}

func recipeCacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return recipeCachePrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached recipe, or ok=false on a miss.
func (c *RedisRecipeCache) Get(ctx context.Context, url string) (*recipeparser.ParsedRecipe, bool, error) {
	data, err := c.client.Get(ctx, recipeCacheKey(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var recipe recipeparser.ParsedRecipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	return &recipe, true, nil
}

// Set stores recipe for url.
func (c *RedisRecipeCache) Set(ctx context.Context, url string, recipe *recipeparser.ParsedRecipe) error {
	data, err := json.Marshal(recipe)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, recipeCacheKey(url), data, c.ttl).Err()
}
