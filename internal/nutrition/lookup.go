// Package nutrition estimates ingredient macros from a static reference table.
//
// The table and its normalized aliases are built once at package init and are
// never mutated, so Lookup is safe to call from any number of goroutines.
package nutrition

import (
	"math"
	"strings"
)

// Macros holds whole-number nutrition values.
type Macros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

var normalizedAliases [][]string

func init() {
	normalizedAliases = make([][]string, len(table))
	for i, row := range table {
		keys := make([]string, 0, len(row.Aliases))
		for _, a := range row.Aliases {
			keys = append(keys, NormalizeName(a))
		}
		normalizedAliases[i] = keys
	}
}

// NormalizeName lowercases, collapses whitespace and strips one trailing "s".
func NormalizeName(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return strings.TrimSuffix(s, "s")
}

// wordMatch reports whether key appears in name as whole words.
func wordMatch(name, key string) bool {
	return name == key ||
		strings.HasPrefix(name, key+" ") ||
		strings.HasSuffix(name, " "+key) ||
		strings.Contains(name, " "+key+" ")
}

func aliasMatches(name string, keys []string) bool {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if wordMatch(name, k) || wordMatch(k, name) {
			return true
		}
	}
	return false
}

func isBareCount(unit string) bool {
	u := unitKey(unit)
	return u == "" || u == UnitCount
}

// factor converts (amount, unit) into multiples of the row's base unit.
func factor(base string, amount float64, unit string) float64 {
	switch base {
	case UnitCup:
		f := ToCups(amount, unit)
		if f <= 0 && isBareCount(unit) {
			f = amount
		}
		return f
	case UnitTbsp:
		if f := ToTbsp(amount, unit); f != 0 {
			return f
		}
		if c := ToCups(amount, unit); c > 0 {
			return c * 16
		}
		return 0
	case UnitTsp:
		if f := ToTsp(amount, unit); f != 0 {
			return f
		}
		if t := ToTbsp(amount, unit); t > 0 {
			return t * 3
		}
		if c := ToCups(amount, unit); c > 0 {
			return c * 48
		}
		return 0
	case UnitEgg:
		return ToEggs(amount, unit)
	case UnitClove:
		return ToCloves(amount, unit)
	case UnitCount:
		if amount > 0 {
			return amount
		}
		return 1
	}
	return 0
}

// MaxValue caps every rounded macro or count.
const MaxValue = math.MaxInt32

// Round converts f to a whole number in [0, MaxValue]. NaN and non-positive
// values give 0.
func Round(f float64) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= MaxValue {
		return MaxValue
	}
	return int(math.Round(f))
}

func scale(v int, f float64) int {
	return Round(float64(v) * f)
}

// Lookup estimates macros for amount/unit of the named ingredient. The second
// return is false when no table row produces a positive scaling factor.
func Lookup(name string, amount float64, unit string) (Macros, bool) {
	norm := NormalizeName(name)
	if norm == "" {
		return Macros{}, false
	}

	for i, row := range table {
		if !aliasMatches(norm, normalizedAliases[i]) {
			continue
		}
		f := factor(row.Base, amount, unit)
		if f <= 0 {
			continue
		}
		return Macros{
			Calories: scale(row.Macros.Calories, f),
			Protein:  scale(row.Macros.Protein, f),
			Carbs:    scale(row.Macros.Carbs, f),
			Fat:      scale(row.Macros.Fat, f),
		}, true
	}
	return Macros{}, false
}
