package recipeparser

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const minInstructionLength = 15

var servingsRe = regexp.MustCompile(`(?i)(yield|servings?|makes)\s*:?\s*(about\s+)?(\d+)`)

var titleSelectors = []string{
	"h1",
	".recipe-title",
	`[class*="recipe"][class*="title"]`,
	`[class*="RecipeTitle"]`,
}

const heroImageSelector = `.recipe-image img, [class*="recipe"] img, [class*="hero"] img, [class*="Recipe"] img`

// htmlExtractor is the last-resort strategy for pages without structured data.
type htmlExtractor struct {
	rules Rules
}

func (h htmlExtractor) extract(p *Page) ParsedRecipe {
	var out ParsedRecipe
	out.Name = truncateName(htmlTitle(p.Doc))

	raw := scopedLines(p.Doc, h.rules.IngredientScopes, "li", 0)
	if len(raw) == 0 {
		p.Doc.Find("main li, article li").Each(func(_ int, s *goquery.Selection) {
			if t := norm(s.Text()); t != "" {
				raw = append(raw, t)
			}
		})
	}
	if lines := h.validIngredients(p, raw); len(lines) > 0 {
		for _, l := range lines {
			out.Ingredients = append(out.Ingredients, NewIngredient(l))
		}
	}

	steps := scopedLines(p.Doc, h.rules.InstructionScopes, "li", minInstructionLength)
	if len(steps) == 0 {
		steps = scopedLines(p.Doc, h.rules.InstructionScopes, "p", minInstructionLength)
	}
	out.Instructions = formatSteps(steps)

	if img, ok := htmlImage(p.Doc); ok {
		out.Images = []string{img}
	}
	out.Servings = htmlServings(p.Doc)
	return out
}

// validIngredients applies the plausibility filter to the raw scraped block.
// A block that fails is discarded whole.
func (h htmlExtractor) validIngredients(p *Page, raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	var valid []string
	for _, l := range raw {
		if h.rules.IsPlausibleIngredient(l) {
			valid = append(valid, l)
		}
	}
	if len(valid) < 2 || !h.rules.IsPlausibleIngredientList(raw) {
		p.debug("rejected html ingredient block ("+strconv.Itoa(len(valid))+" of "+strconv.Itoa(len(raw))+" plausible)", nil)
		return nil
	}
	return valid
}

func htmlTitle(doc *goquery.Document) string {
	for _, sel := range titleSelectors {
		if t := norm(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	scoped := doc.Find(`[class*="title"]`).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Closest(`article, main, [role="main"]`).Length() > 0
	})
	var title string
	scoped.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title = norm(s.Text())
		return title == ""
	})
	return title
}

// scopedLines returns the texts of tag elements inside the first scope that
// yields any. Lines shorter than minLen runes are skipped.
func scopedLines(doc *goquery.Document, scopes []string, tag string, minLen int) []string {
	for _, scope := range scopes {
		container := doc.Find(scope).First()
		if container.Length() == 0 {
			continue
		}
		var lines []string
		container.Find(tag).Each(func(_ int, s *goquery.Selection) {
			t := norm(s.Text())
			if t == "" || (minLen > 0 && utf8.RuneCountInString(t) <= minLen) {
				return
			}
			lines = append(lines, t)
		})
		if len(lines) > 0 {
			return lines
		}
	}
	return nil
}

func htmlImage(doc *goquery.Document) (string, bool) {
	if u, ok := metaContent(doc, "og:image"); ok {
		if img, ok := normalizeImageURL(u); ok {
			return img, true
		}
	}
	img := doc.Find(heroImageSelector).First()
	for _, attr := range []string{"src", "data-src"} {
		if src, ok := img.Attr(attr); ok {
			if u, ok := normalizeImageURL(src); ok {
				return u, true
			}
		}
	}
	return "", false
}

func htmlServings(doc *goquery.Document) int {
	m := servingsRe.FindStringSubmatch(doc.Find("body").Text())
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[3])
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// metaContent reads a <meta> tag by property or name.
func metaContent(doc *goquery.Document, key string) (string, bool) {
	sel := doc.Find(`meta[property="` + key + `"], meta[name="` + key + `"]`).First()
	v := norm(sel.AttrOr("content", ""))
	return v, v != ""
}
