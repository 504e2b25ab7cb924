package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/config"
	"github.com/pageza/mealrank/backend/internal/database"
	"github.com/pageza/mealrank/backend/internal/logging"
	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/service"
	"github.com/pageza/mealrank/backend/internal/types"
)

type ingredient struct {
	name   string
	amount float64
	unit   string
}

type sampleMeal struct {
	name        string
	daysAgo     int
	servings    int
	ingredients []ingredient
}

var samples = []sampleMeal{
	{"Buttermilk pancakes", 1, 4, []ingredient{
		{"flour", 2, "cup"}, {"buttermilk", 2, "cup"}, {"egg", 2, "unit"}, {"butter", 3, "tbsp"}, {"sugar", 2, "tbsp"},
	}},
	{"Chicken stir fry", 2, 2, []ingredient{
		{"chicken breast", 1, "lb"}, {"broccoli", 2, "cup"}, {"soy sauce", 3, "tbsp"}, {"rice", 1, "cup"},
	}},
	{"Spaghetti bolognese", 4, 4, []ingredient{
		{"spaghetti", 1, "lb"}, {"ground beef", 1, "lb"}, {"tomato sauce", 2, "cup"}, {"onion", 1, "unit"},
	}},
	{"Greek salad", 5, 2, []ingredient{
		{"cucumber", 1, "unit"}, {"tomato", 2, "unit"}, {"feta cheese", 4, "oz"}, {"olive oil", 2, "tbsp"},
	}},
	{"Oatmeal with banana", 7, 1, []ingredient{
		{"oats", 0.5, "cup"}, {"milk", 1, "cup"}, {"banana", 1, "unit"},
	}},
}

func main() {
	force := flag.Bool("force", false, "Seed even when meals already exist")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to load configuration", zap.Error(err))
	}
	logger := logging.Must(cfg.LogLevel, config.IsProduction())
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(ctx, db, "migrations", logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	var existing int64
	if err := db.Model(&model.Meal{}).Count(&existing).Error; err != nil {
		logger.Fatal("failed to count meals", zap.Error(err))
	}
	if existing > 0 && !*force {
		logger.Info("meals already present; skipping seed", zap.Int64("count", existing))
		return
	}

	meals := service.NewMealService(db, service.NewImageService(db, nil, logger), logger)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, s := range samples {
		date := today.AddDate(0, 0, -s.daysAgo)
		req := &types.CreateMealRequest{
			Name:     s.name,
			Date:     &date,
			Servings: s.servings,
		}
		for _, ing := range s.ingredients {
			m := service.LookupNutrition(ing.name, ing.amount, ing.unit)
			req.Ingredients = append(req.Ingredients, types.IngredientInput{
				Name:     ing.name,
				Amount:   ing.amount,
				Unit:     ing.unit,
				Calories: m.Calories,
				Protein:  m.Protein,
				Carbs:    m.Carbs,
				Fat:      m.Fat,
			})
		}
		meal, err := meals.Create(ctx, req)
		if err != nil {
			logger.Error("failed to seed meal", zap.String("name", s.name), zap.Error(err))
			continue
		}
		logger.Info("seeded meal", zap.Uint("id", meal.ID), zap.String("name", meal.Name), zap.Int("calories", meal.TotalCalories))
	}
}
