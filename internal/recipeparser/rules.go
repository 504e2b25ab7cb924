package recipeparser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	navCountRe     = regexp.MustCompile(`(?i)^\d+\s+(ingredients?|recipes?|days?|minutes?|hours?)\s+(or|of|that)`)
	categoryNameRe = regexp.MustCompile(`(?i)^(recipes?|ingredients?|links?|photos?|videos?)$`)
)

// Rules holds the site-chrome denylist and the CSS scopes the HTML fallback
// searches. The zero value is not useful; start from DefaultRules.
type Rules struct {
	// NavPhrases are lowercase substrings that mark a line as navigation or
	// promotional text rather than an ingredient.
	NavPhrases []string
	// IngredientScopes are tried in order; the first one that yields list
	// items wins.
	IngredientScopes []string
	// InstructionScopes are tried in order for "li" and then for "p".
	InstructionScopes []string
	// MaxIngredientLength is the longest plausible line, in runes.
	MaxIngredientLength int
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		NavPhrases: []string{
			" or less", " or more", " days of", " that are", " that is",
			" tested", " reviewed", " video", " photo", " comforting",
			" surprise me", " highly rated", " more from", " related ",
			" categories", " sign up", " newsletter", " view shopping",
			" add to shopping", " ingredient substitution", " deselect all",
			"cook mode", "dismiss", " healthy meals", " easy chicken", " best ",
			" vacuum sealer", " air fryer", " coffeemaker", " pulled pork",
			" slow cooker", " recipe ", " recipes ", "recipe-", "recipes/",
		},
		IngredientScopes: []string{
			".o-Ingredients__m-Body",
			".o-Ingredients__a-List",
			`[class*="o-Ingredients"]`,
			".ingredient-list",
			`[id*="ingredients"]`,
			`[class*="recipe-ingredients"]`,
			`[class*="RecipeIngredients"]`,
			`main [class*="ingredient"]`,
			`article [class*="ingredient"]`,
			`[role="main"] [class*="ingredient"]`,
		},
		InstructionScopes: []string{
			".o-Method__m-Body",
			".o-AssetDescription__a-Body",
			`[class*="o-Method"]`,
			`[class*="o-AssetDescription"]`,
			".recipe-instructions",
			`[class*="recipe-instructions"]`,
			`[class*="recipeSteps"]`,
			`[class*="recipe-steps"]`,
			`main [class*="instruction"]`,
			`main [class*="method"]`,
			`article [class*="instruction"]`,
			`article [class*="method"]`,
			`[role="main"] [class*="instruction"]`,
		},
		MaxIngredientLength: 100,
	}
}

// WithNavPhrases returns a copy of r with extra denylist phrases appended.
func (r Rules) WithNavPhrases(phrases ...string) Rules {
	out := r
	out.NavPhrases = make([]string, 0, len(r.NavPhrases)+len(phrases))
	out.NavPhrases = append(out.NavPhrases, r.NavPhrases...)
	for _, p := range phrases {
		if p = strings.ToLower(p); strings.TrimSpace(p) != "" {
			out.NavPhrases = append(out.NavPhrases, p)
		}
	}
	return out
}

// IsPlausibleIngredient reports whether a single line reads like a real
// ingredient and not site navigation.
func (r Rules) IsPlausibleIngredient(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || utf8.RuneCountInString(t) > r.MaxIngredientLength {
		return false
	}

	m := amountUnitRe.FindStringSubmatch(t)
	if m == nil {
		return false
	}
	name := strings.TrimSpace(m[3])
	if utf8.RuneCountInString(name) < 2 || categoryNameRe.MatchString(name) {
		return false
	}

	lower := strings.ToLower(t)
	for _, p := range r.NavPhrases {
		if strings.Contains(lower, p) {
			return false
		}
	}
	return !navCountRe.MatchString(t)
}

// IsPlausibleIngredientList reports whether a scraped block reads like an
// ingredient list: at least two non-blank lines, at least two of them
// plausible, and invalid lines not outnumbering valid ones.
func (r Rules) IsPlausibleIngredientList(lines []string) bool {
	var valid, invalid int
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if r.IsPlausibleIngredient(l) {
			valid++
		} else {
			invalid++
		}
	}
	return valid+invalid >= 2 && valid >= 2 && invalid <= valid
}

var defaultRules = DefaultRules()

// IsPlausibleIngredient checks line against DefaultRules.
func IsPlausibleIngredient(line string) bool {
	return defaultRules.IsPlausibleIngredient(line)
}

// IsPlausibleIngredientList checks lines against DefaultRules.
func IsPlausibleIngredientList(lines []string) bool {
	return defaultRules.IsPlausibleIngredientList(lines)
}
