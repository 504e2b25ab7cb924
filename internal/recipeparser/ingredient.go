package recipeparser

import (
	"regexp"
	"strconv"
	"strings"
)

// amountUnitRe matches "<quantity> [unit] <name>". It is shared by the line
// parser and the plausibility filter so both agree on what an ingredient is.
var amountUnitRe = regexp.MustCompile(`(?i)^\s*([\d¼½¾⅓⅔⅛⅜⅝⅞.,/\s]+)\s*(tbsp|tablespoon|tablespoons|tsp|teaspoon|teaspoons|cup|cups|oz|ounce|ounces|lb|lbs|pound|pounds|g|gram|grams|kg|ml|milliliter|milliliters|clove|cloves|pinch|can|cans|slice|slices|stalk|stalks|bunch|piece|pieces|large|medium|small)?\s+(.+)$`)

var (
	fractionRe     = regexp.MustCompile(`(?:(\d+)\s+)?(\d+)\s*/\s*(\d+)`)
	vulgarRe       = regexp.MustCompile(`(\d+)?\s*([¼½¾⅓⅔⅛⅜⅝⅞])`)
	leadingFloatRe = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)`)
)

var vulgarFractions = map[string]float64{
	"¼": 0.25, "½": 0.5, "¾": 0.75,
	"⅓": 1.0 / 3, "⅔": 2.0 / 3,
	"⅛": 0.125, "⅜": 0.375, "⅝": 0.625, "⅞": 0.875,
}

var canonicalUnits = map[string]string{
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"cup": "cup(s)", "cups": "cup(s)",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"g": "g", "gram": "g", "grams": "g",
	"kg": "kg", "ml": "ml", "milliliter": "ml", "milliliters": "ml",
	"clove": "clove(s)", "cloves": "clove(s)",
	"pinch": "pinch", "bunch": "bunch",
	"can": "can(s)", "cans": "can(s)",
	"slice": "slice(s)", "slices": "slice(s)",
	"stalk": "stalk(s)", "stalks": "stalk(s)",
	"piece": "piece(s)", "pieces": "piece(s)",
	"large": "large", "medium": "medium", "small": "small",
}

// ParsedLine is the quantity/unit/name split of one ingredient line.
type ParsedLine struct {
	Name   string
	Amount float64
	Unit   string
}

// ParseIngredientLine splits a raw line such as "2 cups flour". It never
// fails: a line without a leading quantity becomes the name with amount 0 and
// unit "unit".
func ParseIngredientLine(line string) ParsedLine {
	t := strings.TrimSpace(line)
	m := amountUnitRe.FindStringSubmatch(t)
	if m == nil {
		if t == "" {
			t = "Ingredient"
		}
		return ParsedLine{Name: t, Amount: 0, Unit: "unit"}
	}

	unit := "unit"
	if u := strings.ToLower(strings.TrimSpace(m[2])); u != "" {
		unit = canonicalUnits[u]
	}
	name := strings.TrimSpace(m[3])
	if name == "" {
		name = "Ingredient"
	}
	return ParsedLine{Name: name, Amount: parseAmount(m[1]), Unit: unit}
}

// parseAmount values a quantity segment: "1/2", "1 1/2", "1½", "1,000", "2.5".
func parseAmount(raw string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if s == "" {
		return 0
	}

	if m := fractionRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			den = 1
		}
		whole := 0.0
		if m[1] != "" {
			whole, _ = strconv.ParseFloat(m[1], 64)
		}
		return whole + num/den
	}

	if m := vulgarRe.FindStringSubmatch(s); m != nil {
		whole := 0.0
		if m[1] != "" {
			whole, _ = strconv.ParseFloat(m[1], 64)
		}
		return whole + vulgarFractions[m[2]]
	}

	if lead := leadingFloatRe.FindString(s); lead != "" {
		if v, err := strconv.ParseFloat(lead, 64); err == nil {
			return v
		}
	}
	return 0
}
