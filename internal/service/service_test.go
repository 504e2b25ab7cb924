package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/mealrank/backend/internal/database"
	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db, "", zap.NewNop()))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newMealService(t *testing.T, db *gorm.DB) *MealService {
	t.Helper()
	return NewMealService(db, NewImageService(db, nil, zap.NewNop()), zap.NewNop())
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// seedMeal creates a meal dated daysAgo days back with the given calories.
func seedMeal(t *testing.T, svc *MealService, name string, daysAgo int, calories int) *model.Meal {
	t.Helper()
	date := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
	meal, err := svc.Create(context.Background(), &types.CreateMealRequest{
		Name: name,
		Date: &date,
		Ingredients: []types.IngredientInput{
			{Name: "base", Amount: 1, Unit: "unit", Calories: calories},
		},
	})
	require.NoError(t, err)
	return meal
}
