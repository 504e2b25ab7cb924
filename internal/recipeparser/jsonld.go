package recipeparser

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractLinkedData reads schema.org Recipe objects from
// application/ld+json script blocks.
func extractLinkedData(p *Page) ParsedRecipe {
	var rec map[string]any
	p.Doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}
		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			p.debug("skipping malformed ld+json block", err)
			return true
		}
		rec = findLinkedDataRecipe(v, 0)
		return rec == nil
	})
	if rec == nil {
		return ParsedRecipe{}
	}
	return recipeFromRecord(rec)
}

func findLinkedDataRecipe(v any, depth int) map[string]any {
	if depth > maxWalkDepth {
		return nil
	}
	switch t := v.(type) {
	case map[string]any:
		if isRecipeType(t["@type"]) {
			return t
		}
		if graph, ok := t["@graph"].([]any); ok {
			for _, item := range graph {
				if m, ok := item.(map[string]any); ok && isRecipeType(m["@type"]) {
					return m
				}
			}
		}
	case []any:
		for _, item := range t {
			if m := findLinkedDataRecipe(item, depth+1); m != nil {
				return m
			}
		}
	}
	return nil
}
