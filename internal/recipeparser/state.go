package recipeparser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/titanous/json5"
)

// stateVars are the hydration globals written by common front-end frameworks.
var stateVars = []string{
	"__INITIAL_STATE__",
	"__PRELOADED_STATE__",
	"__NEXT_DATA__",
	"__NUXT_DATA__",
	"__APOLLO_STATE__",
}

// stateContainerKeys are followed, in order, when searching for a recipe.
var stateContainerKeys = []string{"recipe", "recipeDetail", "pageProps", "data", "content", "initialState", "props"}

var stateAssignRe = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(stateVars))
	for _, name := range stateVars {
		m[name] = regexp.MustCompile(`(?i)(?:window\.|self\.)?` + regexp.QuoteMeta(name) + `\s*=\s*([{\[])`)
	}
	return m
}()

// extractClientState looks for a recipe inside serialized framework state.
func extractClientState(p *Page) ParsedRecipe {
	for _, name := range stateVars {
		for _, blob := range stateBlobs(p, name) {
			if rec := findStateRecipe(blob, 0); rec != nil {
				p.debug("client state recipe found in "+name, nil)
				return recipeFromRecord(rec)
			}
		}
	}
	return ParsedRecipe{}
}

// stateBlobs returns every decodable payload for name: script assignments
// first, then <script id="name"> JSON islands.
func stateBlobs(p *Page, name string) []any {
	var blobs []any
	if loc := stateAssignRe[name].FindStringSubmatchIndex(p.HTML); loc != nil {
		if lit, ok := balancedLiteral(p.HTML, loc[2]); ok {
			if v, ok := decodeState(lit); ok {
				blobs = append(blobs, v)
			} else {
				p.debug("undecodable client state for "+name, nil)
			}
		}
	}
	if p.Doc != nil {
		text := strings.TrimSpace(p.Doc.Find(`script[id="` + name + `"]`).First().Text())
		if text != "" {
			if v, ok := decodeState(text); ok {
				blobs = append(blobs, v)
			}
		}
	}
	return blobs
}

// balancedLiteral returns the object or array literal starting at start,
// matching brackets outside of quoted strings.
func balancedLiteral(s string, start int) (string, bool) {
	depth := 0
	var quote byte
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// decodeState tries strict JSON, then JSON5 for JavaScript object literals
// with unquoted keys, single quotes or trailing commas.
func decodeState(lit string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(lit), &v); err == nil {
		return v, true
	}
	if err := json5.Unmarshal([]byte(lit), &v); err == nil {
		return v, true
	}
	return nil, false
}

func looksLikeRecipe(o map[string]any) bool {
	_, hasName := nonEmptyString(o["name"])
	if !hasName {
		_, hasName = nonEmptyString(o["title"])
	}
	if !hasName {
		return false
	}
	list, ok := firstOf(o, "recipeIngredient", "ingredients").([]any)
	return ok && len(list) > 0
}

func findStateRecipe(v any, depth int) map[string]any {
	if depth > maxWalkDepth {
		return nil
	}
	if list, ok := v.([]any); ok {
		for _, item := range list {
			if r := findStateRecipe(item, depth+1); r != nil {
				return r
			}
		}
		return nil
	}
	o, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if isRecipeType(o["@type"]) || looksLikeRecipe(o) {
		return o
	}
	for _, k := range stateContainerKeys {
		if r := findStateRecipe(o[k], depth+1); r != nil {
			return r
		}
	}
	if recipes, ok := o["recipes"].([]any); ok {
		for _, item := range recipes {
			if r := findStateRecipe(item, depth+1); r != nil {
				return r
			}
		}
	}
	if graph, ok := o["@graph"].([]any); ok {
		for _, item := range graph {
			if m, ok := item.(map[string]any); ok && isRecipeType(m["@type"]) {
				return m
			}
		}
	}
	return nil
}
