// Package types holds the request bodies accepted by the HTTP API. Binding tags
// are evaluated by gin's validator.
package types

import "time"

// Limits shared by validation and the services.
const (
	MaxMealName        = 200
	MaxIngredients     = 50
	MaxImagesPerMeal   = 10
	MaxImageBytes      = 5 * 1024 * 1024
	DefaultMealServing = 1
)

// AllowedImageTypes lists the mime types accepted for inline uploads.
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// IngredientInput is one ingredient of a meal.
type IngredientInput struct {
	Name     string  `json:"name" binding:"required,max=200"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Unit     string  `json:"unit" binding:"required,max=32"`
	Calories int     `json:"calories" binding:"gte=0"`
	Protein  int     `json:"protein" binding:"gte=0"`
	Carbs    int     `json:"carbs" binding:"gte=0"`
	Fat      int     `json:"fat" binding:"gte=0"`
}

// ImageInput attaches an image either by URL or as base64 data.
type ImageInput struct {
	Type     string `json:"type" binding:"required,oneof=url base64"`
	URL      string `json:"url" binding:"omitempty,url"`
	Base64   string `json:"base64"`
	MimeType string `json:"mimeType"`
}

// Usable reports whether the input carries the payload its type calls for.
func (i ImageInput) Usable() bool {
	return (i.Type == "url" && i.URL != "") || (i.Type == "base64" && i.Base64 != "")
}

// NutritionOverride replaces ingredient-derived totals when any field is set.
type NutritionOverride struct {
	TotalCalories *int `json:"totalCalories" binding:"omitempty,gte=0"`
	TotalProtein  *int `json:"totalProtein" binding:"omitempty,gte=0"`
	TotalCarbs    *int `json:"totalCarbs" binding:"omitempty,gte=0"`
	TotalFat      *int `json:"totalFat" binding:"omitempty,gte=0"`
}

// IsSet reports whether at least one total was given.
func (o *NutritionOverride) IsSet() bool {
	return o != nil && (o.TotalCalories != nil || o.TotalProtein != nil || o.TotalCarbs != nil || o.TotalFat != nil)
}

// CreateMealRequest represents the request body for creating a meal
type CreateMealRequest struct {
	Name              string             `json:"name" binding:"required,max=200"`
	Date              *time.Time         `json:"date"`
	Instructions      string             `json:"instructions"`
	Notes             string             `json:"notes"`
	RecipeURL         string             `json:"recipeUrl" binding:"omitempty,url"`
	Servings          int                `json:"servings" binding:"omitempty,min=1"`
	Ingredients       []IngredientInput  `json:"ingredients" binding:"max=50,dive"`
	Images            []ImageInput       `json:"images" binding:"max=10,dive"`
	NutritionOverride *NutritionOverride `json:"nutritionOverride"`
}

// UpdateMealRequest represents the request body for updating a meal. Nil fields
// are left unchanged; a non-nil Ingredients or Images slice replaces the stored
// list. An empty RecipeURL leaves the stored URL unchanged.
type UpdateMealRequest struct {
	Name              *string            `json:"name" binding:"omitempty,min=1,max=200"`
	Date              *time.Time         `json:"date"`
	Instructions      *string            `json:"instructions"`
	Notes             *string            `json:"notes"`
	RecipeURL         string             `json:"recipeUrl" binding:"omitempty,url"`
	Servings          *int               `json:"servings" binding:"omitempty,min=1"`
	Ingredients       []IngredientInput  `json:"ingredients" binding:"max=50,dive"`
	Images            []ImageInput       `json:"images" binding:"max=10,dive"`
	NutritionOverride *NutritionOverride `json:"nutritionOverride"`
}

// VoteRequest records the outcome of one matchup.
type VoteRequest struct {
	WinnerID uint `json:"winnerId" binding:"required,gt=0"`
	LoserID  uint `json:"loserId" binding:"required,gt=0,nefield=WinnerID"`
}

// ParseRecipeRequest asks the server to extract a recipe from a web page.
type ParseRecipeRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// NutritionLookupRequest estimates macros for a single ingredient.
type NutritionLookupRequest struct {
	Name   string  `json:"name" binding:"required,max=200"`
	Amount float64 `json:"amount" binding:"gte=0"`
	Unit   string  `json:"unit" binding:"max=32"`
}
