package model

import (
	"time"

	"gorm.io/gorm"
)

// StartingRating is the Elo rating every new meal begins with.
const StartingRating = 1000

// Meal is one logged meal. Totals are either summed from Ingredients or set
// explicitly by the user.
type Meal struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:200;not null" json:"name"`
	Date          time.Time      `gorm:"not null;index" json:"date"`
	Instructions  string         `gorm:"type:text" json:"instructions"`
	Notes         string         `gorm:"type:text" json:"notes"`
	RecipeURL     string         `gorm:"size:2048" json:"recipeUrl"`
	Servings      int            `gorm:"not null;default:1" json:"servings"`
	Rating        int            `gorm:"not null;default:1000;index" json:"rating"`
	Wins          int            `gorm:"not null;default:0" json:"wins"`
	Losses        int            `gorm:"not null;default:0" json:"losses"`
	Matches       int            `gorm:"not null;default:0" json:"matches"`
	TotalCalories int            `gorm:"not null;default:0" json:"totalCalories"`
	TotalProtein  int            `gorm:"not null;default:0" json:"totalProtein"`
	TotalCarbs    int            `gorm:"not null;default:0" json:"totalCarbs"`
	TotalFat      int            `gorm:"not null;default:0" json:"totalFat"`
	CreatedAt     time.Time      `json:"createdAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Images      []Image      `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`

	// ImageURL is the first image, filled for list views only.
	ImageURL string `gorm:"-" json:"imageUrl,omitempty"`
}

// Ingredient is one line of a meal with its estimated macros.
type Ingredient struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	MealID   uint    `gorm:"not null;index" json:"mealId"`
	Name     string  `gorm:"size:200;not null" json:"name"`
	Amount   float64 `gorm:"not null;default:0" json:"amount"`
	Unit     string  `gorm:"size:32;not null;default:'unit'" json:"unit"`
	Calories int     `gorm:"not null;default:0" json:"calories"`
	Protein  int     `gorm:"not null;default:0" json:"protein"`
	Carbs    int     `gorm:"not null;default:0" json:"carbs"`
	Fat      int     `gorm:"not null;default:0" json:"fat"`
}

// Matchup records one head-to-head vote.
type Matchup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WinnerID  uint      `gorm:"not null;index" json:"winnerId"`
	LoserID   uint      `gorm:"not null;index" json:"loserId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// All lists every persisted model, for auto-migration.
func All() []interface{} {
	return []interface{}{&Meal{}, &Ingredient{}, &Image{}, &Matchup{}}
}
