package timeframe

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: every expression <digits><unit> parses to digits*unit minutes.
func TestProperty_ParseGrammar(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	units := []string{"m", "h", "d", "w", "mn"}

	properties.Property("valid expressions yield expected minutes", prop.ForAll(
		func(n int, unitIdx int, padLeft, padRight bool) bool {
			unit := units[unitIdx]
			expr := strconv.Itoa(n) + unit
			if padLeft {
				expr = "  " + expr
			}
			if padRight {
				expr += "\t\n"
			}
			tf, ok := Parse(expr)
			if !ok {
				return false
			}
			return tf.Minutes() == n*unitMinutes[unit]
		},
		gen.IntRange(0, 1000),
		gen.IntRange(0, len(units)-1),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("negative or unit-less expressions fail", prop.ForAll(
		func(n int, unitIdx int) bool {
			neg := "-" + strconv.Itoa(n) + units[unitIdx]
			bare := strconv.Itoa(n + 1)
			upper := "M" + strconv.Itoa(n)
			_, ok1 := Parse(neg)
			_, ok2 := Parse(bare)
			_, ok3 := Parse(upper)
			return !ok1 && !ok2 && !ok3
		},
		gen.IntRange(0, 1000),
		gen.IntRange(0, len(units)-1),
	))

	properties.Property("Parse never succeeds on strings outside the grammar", prop.ForAll(
		func(s string) bool {
			tf, ok := Parse(s)
			if !ok {
				return tf == nil
			}
			return grammar.MatchString(strings.TrimSpace(s)) || strings.TrimSpace(s) == "0"
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// Property: resolving a timeframe's minute count back through FromMinutes
// yields an equal timeframe, and String renders an expression Parse accepts.
func TestProperty_MinutesRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("standard values round trip to themselves", prop.ForAll(
		func(i int) bool {
			s := standards[i]
			tf, ok := FromMinutes(s.Minutes())
			return ok && tf == Timeframe(s) && IsStandard(tf)
		},
		gen.IntRange(0, len(standards)-1),
	))

	properties.Property("String output parses back to an equal timeframe", prop.ForAll(
		func(minutes int) bool {
			tf, ok := FromMinutes(minutes)
			if !ok {
				return false
			}
			back, ok := Parse(tf.String())
			return ok && Equal(tf, back)
		},
		gen.IntRange(0, 500000),
	))

	properties.TestingRun(t)
}
