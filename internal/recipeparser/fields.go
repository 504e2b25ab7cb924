package recipeparser

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pageza/mealrank/backend/internal/nutrition"
)

// maxWalkDepth bounds every recursive walk over decoded page JSON.
const maxWalkDepth = 16

const recipeType = "Recipe"

var (
	numberRe        = regexp.MustCompile(`[\d.,]+`)
	calorieSuffixRe = regexp.MustCompile(`(?i)\s*calories?`)
	gramSuffixRe    = regexp.MustCompile(`(?i)\s*g(?:rams?)?`)
	absoluteURLRe   = regexp.MustCompile(`(?i)^https?://`)
	lineBreakRe     = regexp.MustCompile(`\r?\n+`)
)

// norm collapses runs of whitespace and trims.
func norm(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstOf returns the first non-nil value among keys.
func firstOf(o map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := o[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == recipeType
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == recipeType {
				return true
			}
		}
	}
	return false
}

func typeTag(o map[string]any) string {
	switch t := o["@type"].(type) {
	case string:
		return strings.ToLower(t)
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				return strings.ToLower(s)
			}
		}
	}
	return ""
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = norm(html.UnescapeString(s))
	return s, s != ""
}

// recipeFromRecord maps a recipe-shaped JSON object onto a ParsedRecipe. It is
// shared by the linked-data, client-state and microdata extractors.
func recipeFromRecord(rec map[string]any) ParsedRecipe {
	var out ParsedRecipe
	if name, ok := nonEmptyString(rec["name"]); ok {
		out.Name = truncateName(name)
	} else if title, ok := nonEmptyString(rec["title"]); ok {
		out.Name = truncateName(title)
	}
	out.Ingredients = ingredientsFrom(firstOf(rec, "recipeIngredient", "ingredients"))
	out.Servings = servingsFrom(rec["recipeYield"])
	out.Instructions = formatSteps(flattenInstructions(firstOf(rec, "recipeInstructions", "instructions"), 0))
	out.Images = imagesFrom(firstOf(rec, "image", "images"))
	if n, ok := rec["nutrition"].(map[string]any); ok {
		out.Nutrition = nutritionFrom(n)
	}
	return out
}

// ingredientLine reads an ingredient entry. Client-state payloads sometimes
// carry objects instead of strings.
func ingredientLine(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return nonEmptyString(t)
	case map[string]any:
		for _, k := range []string{"text", "raw", "originalText", "name"} {
			if s, ok := nonEmptyString(t[k]); ok {
				return s, true
			}
		}
	}
	return "", false
}

func ingredientsFrom(v any) []Ingredient {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []Ingredient
	for _, item := range list {
		line, ok := ingredientLine(item)
		if !ok {
			continue
		}
		out = append(out, NewIngredient(line))
	}
	return out
}

// liftValue unwraps {"value": x} wrappers used by some publishers.
func liftValue(v any) any {
	if o, ok := v.(map[string]any); ok {
		if inner, ok := o["value"]; ok {
			return inner
		}
	}
	return v
}

// extractNumber reads the first number out of a JSON scalar. Negative values
// clamp to zero.
func extractNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return math.Max(0, t), true
	case int:
		return math.Max(0, float64(t)), true
	case string:
		m := numberRe.FindString(t)
		if m == "" {
			return 0, false
		}
		lead := leadingFloatRe.FindString(strings.ReplaceAll(m, ",", ""))
		if lead == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(lead, 64)
		if err != nil {
			return 0, false
		}
		return math.Max(0, f), true
	}
	return 0, false
}

func servingsFrom(v any) int {
	if list, ok := v.([]any); ok {
		for _, item := range list {
			if n := servingsFrom(item); n > 0 {
				return n
			}
		}
		return 0
	}
	f, ok := extractNumber(v)
	if !ok {
		return 0
	}
	return nutrition.Round(f)
}

// flattenInstructions turns the many shapes of recipeInstructions into an
// ordered list of step texts.
func flattenInstructions(v any, depth int) []string {
	if depth > maxWalkDepth || v == nil {
		return nil
	}
	var nodes []any
	switch t := v.(type) {
	case string:
		var steps []string
		for _, line := range lineBreakRe.Split(html.UnescapeString(t), -1) {
			if s := norm(line); s != "" {
				steps = append(steps, s)
			}
		}
		return steps
	case []any:
		nodes = t
	case map[string]any:
		nodes = []any{t}
	default:
		return nil
	}

	var steps []string
	for _, node := range nodes {
		switch n := node.(type) {
		case string:
			if s, ok := nonEmptyString(n); ok {
				steps = append(steps, s)
			}
		case map[string]any:
			switch typeTag(n) {
			case "itemlist":
				steps = append(steps, flattenInstructions(firstOf(n, "itemListElement", "itemList"), depth+1)...)
			case "howtosection":
				steps = append(steps, flattenInstructions(firstOf(n, "itemListElement", "step"), depth+1)...)
			default:
				if s := stepText(n, depth+1); s != "" {
					steps = append(steps, s)
				}
			}
		}
	}
	return steps
}

func stepText(v any, depth int) string {
	if depth > maxWalkDepth {
		return ""
	}
	switch t := v.(type) {
	case string:
		s, _ := nonEmptyString(t)
		return s
	case map[string]any:
		if s, ok := nonEmptyString(t["text"]); ok {
			return s
		}
		if s, ok := nonEmptyString(t["name"]); ok {
			return s
		}
		if s := stepText(t["item"], depth+1); s != "" {
			return s
		}
		if list, ok := t["itemListElement"].([]any); ok {
			var parts []string
			for _, el := range list {
				if s := stepText(el, depth+1); s != "" {
					parts = append(parts, s)
				}
			}
			return strings.Join(parts, " ")
		}
	}
	return ""
}

func formatSteps(steps []string) string {
	if len(steps) == 0 {
		return ""
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprintf("Step %d: %s", i+1, s)
	}
	return strings.Join(parts, "\n\n")
}

// normalizeImageURL upgrades protocol-relative URLs and rejects anything that
// is not absolute http(s).
func normalizeImageURL(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "//") {
		s = "https:" + s
	}
	if !absoluteURLRe.MatchString(s) {
		return "", false
	}
	return s, true
}

func imageURL(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return normalizeImageURL(t)
	case map[string]any:
		if s, ok := firstOf(t, "url", "contentUrl").(string); ok {
			return normalizeImageURL(s)
		}
	}
	return "", false
}

func imagesFrom(v any) []string {
	var candidates []any
	if list, ok := v.([]any); ok {
		candidates = list
	} else if v != nil {
		candidates = []any{v}
	}

	var out []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		u, ok := imageURL(c)
		if !ok || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

func macroValue(v any, suffix *regexp.Regexp) *int {
	v = liftValue(v)
	if s, ok := v.(string); ok {
		v = suffix.ReplaceAllString(s, "")
	}
	f, ok := extractNumber(v)
	if !ok {
		return nil
	}
	n := nutrition.Round(f)
	return &n
}

func nutritionFrom(o map[string]any) *Nutrition {
	n := &Nutrition{
		Calories: macroValue(firstOf(o, "calories", "calorieContent"), calorieSuffixRe),
		Protein:  macroValue(firstOf(o, "proteinContent", "protein"), gramSuffixRe),
		Carbs:    macroValue(firstOf(o, "carbohydrateContent", "carbohydrates", "carbohydrate"), gramSuffixRe),
		Fat:      macroValue(firstOf(o, "fatContent", "fat"), gramSuffixRe),
	}
	if n.empty() {
		return nil
	}
	return n
}
