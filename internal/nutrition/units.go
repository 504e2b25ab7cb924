package nutrition

import "strings"

// Base units a reference row can be expressed in.
const (
	UnitCup   = "cup"
	UnitTbsp  = "tbsp"
	UnitTsp   = "tsp"
	UnitEgg   = "egg"
	UnitClove = "clove"
	UnitCount = "unit"
)

func unitKey(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

func isCup(u string) bool {
	switch u {
	case "cup", "cups", "cup(s)":
		return true
	}
	return false
}

func isTbsp(u string) bool {
	switch u {
	case "tbsp", "tbsps", "tbs", "tablespoon", "tablespoons", "tablespoon(s)":
		return true
	}
	return false
}

func isTsp(u string) bool {
	switch u {
	case "tsp", "tsps", "teaspoon", "teaspoons", "teaspoon(s)":
		return true
	}
	return false
}

func isFluidOunce(u string) bool {
	switch u {
	case "oz", "fl oz", "fl-oz", "fluid ounce", "fluid ounces", "fluid ounce(s)":
		return true
	}
	return false
}

func isMilliliter(u string) bool {
	switch u {
	case "ml", "milliliter", "milliliters", "milliliter(s)", "millilitre", "millilitres":
		return true
	}
	return false
}

func isPinch(u string) bool {
	switch u {
	case "pinch", "pinches", "pinch(es)":
		return true
	}
	return false
}

// ToCups converts amount of unit into cups. Incompatible units yield 0.
func ToCups(amount float64, unit string) float64 {
	u := unitKey(unit)
	switch {
	case isCup(u):
		return amount
	case isTbsp(u):
		return amount / 16
	case isTsp(u):
		return amount / 48
	case isFluidOunce(u):
		return amount / 8
	case isMilliliter(u):
		return amount / 237
	}
	return 0
}

// ToTbsp converts amount of unit into tablespoons. Incompatible units yield 0.
func ToTbsp(amount float64, unit string) float64 {
	u := unitKey(unit)
	switch {
	case isTbsp(u):
		return amount
	case isTsp(u):
		return amount / 3
	case isCup(u):
		return amount * 16
	case isFluidOunce(u):
		return amount * 2
	}
	return 0
}

// ToTsp converts amount of unit into teaspoons. Incompatible units yield 0.
func ToTsp(amount float64, unit string) float64 {
	u := unitKey(unit)
	switch {
	case isTsp(u):
		return amount
	case isTbsp(u):
		return amount * 3
	case isCup(u):
		return amount * 48
	case isPinch(u):
		return amount / 16
	}
	return 0
}

// ToEggs scales amount by egg size. A bare count is treated as large eggs.
func ToEggs(amount float64, unit string) float64 {
	switch unitKey(unit) {
	case "", UnitCount, "egg", "eggs", "egg(s)", "large":
		return amount
	case "medium":
		return amount * 0.85
	case "small":
		return amount * 0.7
	}
	return 0
}

// ToCloves returns amount when unit counts cloves (or is a bare count).
func ToCloves(amount float64, unit string) float64 {
	switch unitKey(unit) {
	case "", UnitCount, "clove", "cloves", "clove(s)":
		return amount
	}
	return 0
}
