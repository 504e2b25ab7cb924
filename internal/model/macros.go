package model

// Macros is a whole-number nutrition summary.
type Macros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// SumIngredients totals the macros of every ingredient.
func SumIngredients(ings []Ingredient) Macros {
	var m Macros
	for _, ing := range ings {
		m.Calories += ing.Calories
		m.Protein += ing.Protein
		m.Carbs += ing.Carbs
		m.Fat += ing.Fat
	}
	return m
}

// SetTotals copies m onto the meal's total columns.
func (meal *Meal) SetTotals(m Macros) {
	meal.TotalCalories = m.Calories
	meal.TotalProtein = m.Protein
	meal.TotalCarbs = m.Carbs
	meal.TotalFat = m.Fat
}
