package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/types"
)

func TestCreateMealSumsIngredients(t *testing.T) {
	svc := newMealService(t, newTestDB(t))

	meal, err := svc.Create(context.Background(), &types.CreateMealRequest{
		Name:         "Pancakes",
		Instructions: "Step 1: Mix.",
		Ingredients: []types.IngredientInput{
			{Name: "milk", Amount: 1, Unit: "cup(s)", Calories: 149, Protein: 8, Carbs: 12, Fat: 8},
			{Name: "flour", Amount: 2, Unit: "cup(s)", Calories: 910, Protein: 26, Carbs: 190, Fat: 2},
		},
		Images: []types.ImageInput{
			{Type: "url", URL: "https://example.com/p.jpg"},
			{Type: "url"},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, meal.ID)
	assert.Equal(t, model.StartingRating, meal.Rating)
	assert.Equal(t, 1, meal.Servings)
	assert.Equal(t, 1059, meal.TotalCalories)
	assert.Equal(t, 34, meal.TotalProtein)
	assert.Equal(t, 202, meal.TotalCarbs)
	assert.Equal(t, 10, meal.TotalFat)
	require.Len(t, meal.Ingredients, 2)
	assert.Equal(t, "milk", meal.Ingredients[0].Name)
	require.Len(t, meal.Images, 1)
	assert.Equal(t, "https://example.com/p.jpg", meal.Images[0].URL)
	assert.False(t, meal.Date.IsZero())
}

func TestCreateMealNutritionOverride(t *testing.T) {
	svc := newMealService(t, newTestDB(t))

	meal, err := svc.Create(context.Background(), &types.CreateMealRequest{
		Name:              "Salad",
		Servings:          2,
		Ingredients:       []types.IngredientInput{{Name: "lettuce", Amount: 1, Unit: "unit", Calories: 20}},
		NutritionOverride: &types.NutritionOverride{TotalCalories: intPtr(350)},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, meal.Servings)
	assert.Equal(t, 350, meal.TotalCalories)
	assert.Zero(t, meal.TotalProtein)
}

func TestListMealsSortsAndSearches(t *testing.T) {
	db := newTestDB(t)
	svc := newMealService(t, db)
	ctx := context.Background()

	old := seedMeal(t, svc, "Beef Stew", 3, 600)
	mid := seedMeal(t, svc, "apple pie", 2, 400)
	recent := seedMeal(t, svc, "Chicken Soup", 1, 300)

	_, err := svc.Update(ctx, mid.ID, &types.UpdateMealRequest{Images: []types.ImageInput{
		{Type: "url", URL: "https://example.com/1.jpg"},
		{Type: "url", URL: "https://example.com/2.jpg"},
	}})
	require.NoError(t, err)

	meals, err := svc.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, []uint{recent.ID, mid.ID, old.ID}, mealIDs(meals))

	meals, err = svc.List(ctx, ListOptions{SortBy: "name", SortDir: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []uint{old.ID, recent.ID, mid.ID}, mealIDs(meals))

	meals, err = svc.List(ctx, ListOptions{SortBy: "bogus", SortDir: "sideways"})
	require.NoError(t, err)
	assert.Equal(t, []uint{recent.ID, mid.ID, old.ID}, mealIDs(meals))

	meals, err = svc.List(ctx, ListOptions{Search: "  PIE "})
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, mid.ID, meals[0].ID)
	require.Len(t, meals[0].Images, 1)
	assert.Equal(t, "https://example.com/1.jpg", meals[0].ImageURL)
}

func mealIDs(meals []model.Meal) []uint {
	ids := make([]uint, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
	}
	return ids
}

func TestUpdateMealReplacesIngredients(t *testing.T) {
	svc := newMealService(t, newTestDB(t))
	ctx := context.Background()
	meal := seedMeal(t, svc, "Toast", 0, 100)

	updated, err := svc.Update(ctx, meal.ID, &types.UpdateMealRequest{
		Name:     strPtr("Cheese Toast"),
		Servings: intPtr(3),
		Ingredients: []types.IngredientInput{
			{Name: "bread", Amount: 2, Unit: "slice(s)", Calories: 160},
			{Name: "cheese", Amount: 1, Unit: "oz", Calories: 113, Fat: 9},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Cheese Toast", updated.Name)
	assert.Equal(t, 3, updated.Servings)
	assert.Equal(t, 273, updated.TotalCalories)
	assert.Equal(t, 9, updated.TotalFat)
	require.Len(t, updated.Ingredients, 2)
	assert.Equal(t, "bread", updated.Ingredients[0].Name)

	// Leaving ingredients out keeps them and recomputes totals from them.
	updated, err = svc.Update(ctx, meal.ID, &types.UpdateMealRequest{Notes: strPtr("crispy")})
	require.NoError(t, err)
	assert.Equal(t, "crispy", updated.Notes)
	assert.Len(t, updated.Ingredients, 2)
	assert.Equal(t, 273, updated.TotalCalories)

	updated, err = svc.Update(ctx, meal.ID, &types.UpdateMealRequest{Ingredients: []types.IngredientInput{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Ingredients)
	assert.Zero(t, updated.TotalCalories)
}

func TestUpdateMissingMeal(t *testing.T) {
	svc := newMealService(t, newTestDB(t))
	_, err := svc.Update(context.Background(), 42, &types.UpdateMealRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMealIsSoft(t *testing.T) {
	db := newTestDB(t)
	svc := newMealService(t, db)
	ctx := context.Background()
	meal := seedMeal(t, svc, "Leftovers", 0, 500)

	require.NoError(t, svc.Delete(ctx, meal.ID))
	assert.ErrorIs(t, svc.Delete(ctx, meal.ID), ErrNotFound)

	_, err := svc.Get(ctx, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	meals, err := svc.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, meals)

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Meal{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
