package recipeparser

import (
	"github.com/pageza/mealrank/backend/internal/nutrition"
)

// maxNameLength caps recipe names, in runes.
const maxNameLength = 200

// Ingredient is one parsed ingredient line with estimated macros.
type Ingredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fat      int     `json:"fat"`
}

// Nutrition holds recipe-level totals as published by the page. Each field is
// independently optional.
type Nutrition struct {
	Calories *int `json:"calories,omitempty"`
	Protein  *int `json:"protein,omitempty"`
	Carbs    *int `json:"carbs,omitempty"`
	Fat      *int `json:"fat,omitempty"`
}

func (n *Nutrition) empty() bool {
	return n == nil || (n.Calories == nil && n.Protein == nil && n.Carbs == nil && n.Fat == nil)
}

// ParsedRecipe is whatever could be recovered from a page. Every field is
// optional; zero values mean "not found".
type ParsedRecipe struct {
	Name         string       `json:"name,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
	Servings     int          `json:"servings,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	Images       []string     `json:"images,omitempty"`
	Nutrition    *Nutrition   `json:"nutrition,omitempty"`
}

// HasContent reports whether the recipe carries a name, ingredients or
// instructions.
func (r *ParsedRecipe) HasContent() bool {
	return r.Name != "" || len(r.Ingredients) > 0 || r.Instructions != ""
}

// Fill copies fields from src that are still empty on r. Fields already set are
// never overwritten. It returns the names of the fields it filled.
func (r *ParsedRecipe) Fill(src ParsedRecipe) []string {
	var filled []string
	if r.Name == "" && src.Name != "" {
		r.Name = src.Name
		filled = append(filled, "name")
	}
	if len(r.Ingredients) == 0 && len(src.Ingredients) > 0 {
		r.Ingredients = src.Ingredients
		filled = append(filled, "ingredients")
	}
	if r.Servings == 0 && src.Servings > 0 {
		r.Servings = src.Servings
		filled = append(filled, "servings")
	}
	if r.Instructions == "" && src.Instructions != "" {
		r.Instructions = src.Instructions
		filled = append(filled, "instructions")
	}
	if len(r.Images) == 0 && len(src.Images) > 0 {
		r.Images = src.Images
		filled = append(filled, "images")
	}
	if r.Nutrition.empty() && !src.Nutrition.empty() {
		r.Nutrition = src.Nutrition
		filled = append(filled, "nutrition")
	}
	return filled
}

// NewIngredient parses a raw ingredient line and enriches it with macros from
// the nutrition table. Unmatched ingredients carry zero macros.
func NewIngredient(line string) Ingredient {
	p := ParseIngredientLine(line)
	ing := Ingredient{Name: p.Name, Amount: p.Amount, Unit: p.Unit}
	if m, ok := nutrition.Lookup(p.Name, p.Amount, p.Unit); ok {
		ing.Calories = m.Calories
		ing.Protein = m.Protein
		ing.Carbs = m.Carbs
		ing.Fat = m.Fat
	}
	return ing
}

func truncateName(s string) string {
	r := []rune(s)
	if len(r) > maxNameLength {
		return string(r[:maxNameLength])
	}
	return s
}
