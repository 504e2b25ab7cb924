package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/config"
	"github.com/pageza/mealrank/backend/internal/api"
	"github.com/pageza/mealrank/backend/internal/database"
	"github.com/pageza/mealrank/backend/internal/logging"
	"github.com/pageza/mealrank/backend/internal/middleware"
	"github.com/pageza/mealrank/backend/internal/recipeparser"
	"github.com/pageza/mealrank/backend/internal/router"
	"github.com/pageza/mealrank/backend/internal/server"
	"github.com/pageza/mealrank/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// No logger yet; fall back to a production one for this message.
		zap.Must(zap.NewProduction()).Fatal("failed to load configuration", zap.Error(err))
	}

	logger, err := logging.New(cfg.LogLevel, config.IsProduction())
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to create logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if err := database.Migrate(ctx, db, "migrations", logger); err != nil {
		return err
	}

	// Redis backs the parse cache and rate limiter; both are skipped without it.
	var cache redis.Cmdable
	if client, err := database.NewRedisClient(ctx, cfg, logger); err != nil {
		logger.Warn("redis unavailable; recipe cache and rate limiting disabled", zap.Error(err))
	} else {
		defer client.Close()
		cache = client
	}

	var store service.ObjectStore
	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return err
	}
	if s3cfg != nil {
		store = s3cfg
		logger.Info("storing meal images in S3", zap.String("bucket", s3cfg.BucketName))
	}

	parser := recipeparser.New(
		recipeparser.WithTimeout(cfg.ParserTimeout),
		recipeparser.WithUserAgent(cfg.ParserUserAgent),
		recipeparser.WithRules(recipeparser.DefaultRules().WithNavPhrases(cfg.ParserExtraNavPhrases...)),
		recipeparser.WithLogger(logger.Named("recipeparser")),
	)

	var recipeCache service.RecipeCache
	var limiter *middleware.RateLimiter
	if cache != nil {
		if cfg.ParseCacheTTL > 0 {
			recipeCache = service.NewRedisRecipeCache(cache, cfg.ParseCacheTTL)
		}
		limiter = middleware.NewRecipeParseRateLimiter(cache, cfg.ParseRateLimit, logger)
	}

	images := service.NewImageService(db, store, logger)
	meals := service.NewMealService(db, images, logger)
	rank := service.NewRankService(db, &service.PairMemory{}, rand.New(rand.NewSource(time.Now().UnixNano())), logger)
	stats := service.NewStatsService(db)
	recipes := service.NewRecipeService(parser, recipeCache, logger)

	engine := router.SetupRouter(router.Handlers{
		Meals:   api.NewMealHandler(meals, logger),
		Rank:    api.NewRankHandler(rank, stats, logger),
		Recipes: api.NewRecipeHandler(recipes, limiter, logger),
		Images:  api.NewImageHandler(images, logger),
	}, cfg.CORSOrigins, logger)

	return server.New(cfg, engine, logger).Start(ctx)
}
