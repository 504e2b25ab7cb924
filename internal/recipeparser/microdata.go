package recipeparser

import (
	"github.com/PuerkitoBio/goquery"
)

// itemValue prefers element text and falls back to the content attribute used
// by <meta itemprop> tags.
func itemValue(s *goquery.Selection) string {
	if t := norm(s.Text()); t != "" {
		return t
	}
	return norm(s.AttrOr("content", ""))
}

func itemTexts(root *goquery.Selection, selector string) []any {
	var out []any
	root.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if t := itemValue(s); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// extractMicrodata reads the first element typed schema.org/Recipe.
func extractMicrodata(p *Page) ParsedRecipe {
	root := p.Doc.Find(`[itemtype*="schema.org/Recipe"]`).First()
	if root.Length() == 0 {
		return ParsedRecipe{}
	}
	name := itemValue(root.Find(`[itemprop~="name"]`).First())
	if name == "" {
		return ParsedRecipe{}
	}

	rec := map[string]any{"name": name}
	if ings := itemTexts(root, `[itemprop~="recipeIngredient"], [itemprop~="ingredients"]`); len(ings) > 0 {
		rec["recipeIngredient"] = ings
	}
	if steps := itemTexts(root, `[itemprop~="recipeInstructions"]`); len(steps) > 0 {
		rec["recipeInstructions"] = steps
	}

	img := root.Find(`[itemprop~="image"]`).First()
	if src := img.AttrOr("content", ""); src != "" {
		rec["image"] = src
	} else if src := img.AttrOr("src", ""); src != "" {
		rec["image"] = src
	} else if src := img.Find("img").First().AttrOr("src", ""); src != "" {
		rec["image"] = src
	}

	if y := itemValue(root.Find(`[itemprop~="recipeYield"]`).First()); y != "" {
		rec["recipeYield"] = y
	}
	return recipeFromRecord(rec)
}
