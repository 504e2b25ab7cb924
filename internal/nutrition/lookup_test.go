package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitConversionsAreConsistent(t *testing.T) {
	assert.Equal(t, 16.0, ToTbsp(1, "cup"))
	assert.Equal(t, 1.0, ToCups(16, "tbsp"))
	assert.Equal(t, 48.0, ToTsp(1, "cups"))
	assert.Equal(t, 1.0, ToCups(48, "teaspoons"))
	assert.Equal(t, 3.0, ToTsp(1, "Tablespoon"))
	assert.Equal(t, 1.0, ToTbsp(3, "tsp"))
	assert.Equal(t, 2.0, ToTbsp(1, "fl oz"))
	assert.Equal(t, 1.0, ToCups(237, "ml"))
	assert.InDelta(t, 0.0625, ToTsp(1, "pinch"), 1e-9)
}

func TestUnitConversionsRejectIncompatibleUnits(t *testing.T) {
	assert.Zero(t, ToCups(2, "g"))
	assert.Zero(t, ToTbsp(2, "pinch"))
	assert.Zero(t, ToTsp(2, "ml"))
	assert.Zero(t, ToEggs(2, "cup"))
	assert.Zero(t, ToCloves(2, "tbsp"))
}

func TestToEggsAndCloves(t *testing.T) {
	assert.Equal(t, 2.0, ToEggs(2, ""))
	assert.Equal(t, 2.0, ToEggs(2, "egg(s)"))
	assert.Equal(t, 2.0, ToEggs(2, "LARGE"))
	assert.InDelta(t, 1.7, ToEggs(2, "medium"), 1e-9)
	assert.InDelta(t, 1.4, ToEggs(2, "small"), 1e-9)
	assert.Equal(t, 3.0, ToCloves(3, "clove(s)"))
	assert.Equal(t, 3.0, ToCloves(3, "unit"))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		item   string
		amount float64
		unit   string
		want   Macros
	}{
		{"flour by the cup", "flour", 2, "cup", Macros{Calories: 910, Protein: 26, Carbs: 190, Fat: 2}},
		{"canonical plural unit", "flour", 2, "cup(s)", Macros{Calories: 910, Protein: 26, Carbs: 190, Fat: 2}},
		{"salt has no macros", "salt", 0.5, "tsp", Macros{}},
		{"plural egg count", "Large Eggs", 2, "unit", Macros{Calories: 144, Protein: 12, Carbs: 0, Fat: 10}},
		{"medium eggs", "eggs", 2, "medium", Macros{Calories: 122, Protein: 10, Carbs: 0, Fat: 9}},
		{"oil in tablespoons", "olive oil", 2, "tbsp", Macros{Calories: 241, Protein: 0, Carbs: 0, Fat: 27}},
		{"garlic cloves", "garlic", 3, "clove(s)", Macros{Calories: 12, Protein: 0, Carbs: 3, Fat: 0}},
		{"tbsp row via cups", "soy sauce", 237, "ml", Macros{Calories: 144, Protein: 16, Carbs: 16, Fat: 0}},
		{"tsp row via tbsp", "vanilla extract", 1, "fl oz", Macros{Calories: 72, Protein: 0, Carbs: 6, Fat: 0}},
		{"cup row with bare count", "banana", 2, "", Macros{Calories: 400, Protein: 4, Carbs: 102, Fat: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.item, tt.amount, tt.unit)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupNoMatch(t *testing.T) {
	_, ok := Lookup("dragonfruit", 1, "cup")
	assert.False(t, ok)

	_, ok = Lookup("   ", 1, "cup")
	assert.False(t, ok)

	// grams never convert to a volume base unit
	_, ok = Lookup("flour", 100, "g")
	assert.False(t, ok)
}

func TestLookupPrefersEarlierRows(t *testing.T) {
	// "vegetable oil" is an alias of the oil row, which precedes the
	// vegetable stock row that also contains the word "vegetable".
	got, ok := Lookup("vegetable oil", 1, "cup")
	assert.True(t, ok)
	assert.Equal(t, 1927, got.Calories)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "brown sugar", NormalizeName("  Brown   Sugars "))
	assert.Equal(t, "egg", NormalizeName("EGGS"))
}

func TestRowsReturnsCopy(t *testing.T) {
	rows := Rows()
	rows[0].Base = UnitTsp
	assert.Equal(t, UnitCup, Rows()[0].Base)
}

func TestRoundClampsToRange(t *testing.T) {
	assert.Equal(t, 0, Round(math.NaN()))
	assert.Equal(t, 0, Round(math.Inf(-1)))
	assert.Equal(t, 0, Round(-12))
	assert.Equal(t, 3, Round(2.5))
	assert.Equal(t, MaxValue, Round(1e300))
	assert.Equal(t, MaxValue, Round(math.Inf(1)))
}

func TestLookupHugeAmountStaysInRange(t *testing.T) {
	m, ok := Lookup("flour", 1e23, "cup")
	assert.True(t, ok)
	assert.Equal(t, Macros{Calories: MaxValue, Protein: MaxValue, Carbs: MaxValue, Fat: MaxValue}, m)
}
