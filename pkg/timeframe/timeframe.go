// Package timeframe models chart periods measured in minutes.
package timeframe

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Timeframe is a chart period. Two timeframes are equal when their minute
// counts are equal, see Equal.
type Timeframe interface {
	Minutes() int
	String() string
}

// Standard is one of the periods every terminal supports natively.
type Standard int

// Standard periods.
const (
	Current Standard = 0
	M1      Standard = 1
	M5      Standard = 5
	M15     Standard = 15
	M30     Standard = 30
	H1      Standard = 60
	H4      Standard = 240
	D1      Standard = 1440
	W1      Standard = 10080
	MN1     Standard = 43200
)

var standards = []Standard{Current, M1, M5, M15, M30, H1, H4, D1, W1, MN1}

// Standards returns the standard periods in ascending order.
func Standards() []Standard {
	out := make([]Standard, len(standards))
	copy(out, standards)
	return out
}

// Minutes implements Timeframe.
func (s Standard) Minutes() int { return int(s) }

func (s Standard) String() string { return format(int(s)) }

// Name returns the terminal constant name, e.g. PERIOD_H1.
func (s Standard) Name() string {
	switch s {
	case Current:
		return "PERIOD_CURRENT"
	case M1:
		return "PERIOD_M1"
	case M5:
		return "PERIOD_M5"
	case M15:
		return "PERIOD_M15"
	case M30:
		return "PERIOD_M30"
	case H1:
		return "PERIOD_H1"
	case H4:
		return "PERIOD_H4"
	case D1:
		return "PERIOD_D1"
	case W1:
		return "PERIOD_W1"
	case MN1:
		return "PERIOD_MN1"
	}
	return ""
}

// NonStandard is any other positive number of minutes.
type NonStandard int

// Non-standard periods with terminal constant names.
const (
	M2  NonStandard = 2
	M3  NonStandard = 3
	M4  NonStandard = 4
	M6  NonStandard = 6
	M10 NonStandard = 10
	M12 NonStandard = 12
	M20 NonStandard = 20
	H2  NonStandard = 120
	H3  NonStandard = 180
	H6  NonStandard = 360
	H8  NonStandard = 480
	H12 NonStandard = 720
)

// Minutes implements Timeframe.
func (n NonStandard) Minutes() int { return int(n) }

func (n NonStandard) String() string { return format(int(n)) }

var grammar = regexp.MustCompile(`^(\d+)(mn|m|h|d|w)$`)

var unitMinutes = map[string]int{
	"m":  1,
	"h":  60,
	"d":  1440,
	"w":  10080,
	"mn": 43200,
}

// Parse builds a Timeframe from an expression such as "15m", "1h", "1d",
// "1w", "1mn" or "0" (the current chart period). Surrounding whitespace is
// ignored and units are case sensitive. It reports false for anything else.
func Parse(s string) (Timeframe, bool) {
	s = strings.TrimSpace(s)
	if s == "0" {
		return Current, true
	}
	m := grammar.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}
	unit := unitMinutes[m[2]]
	if n > math.MaxInt32/unit {
		return nil, false
	}
	return FromMinutes(n * unit)
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Timeframe {
	tf, ok := Parse(s)
	if !ok {
		panic("timeframe: invalid expression " + strconv.Quote(s))
	}
	return tf
}

// FromMinutes resolves a minute count to its Standard constant when one
// exists, otherwise to a NonStandard value. Negative counts are rejected.
func FromMinutes(minutes int) (Timeframe, bool) {
	if minutes < 0 {
		return nil, false
	}
	for _, s := range standards {
		if int(s) == minutes {
			return s, true
		}
	}
	return NonStandard(minutes), true
}

// IsStandard reports whether tf is one of the standard periods.
func IsStandard(tf Timeframe) bool {
	_, ok := tf.(Standard)
	return ok
}

// Equal compares timeframes by minute count.
func Equal(a, b Timeframe) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Minutes() == b.Minutes()
}

// format renders minutes in the largest unit that divides it exactly.
func format(minutes int) string {
	if minutes == 0 {
		return "0"
	}
	for _, u := range []struct {
		suffix string
		size   int
	}{{"mn", 43200}, {"w", 10080}, {"d", 1440}, {"h", 60}} {
		if minutes%u.size == 0 {
			return strconv.Itoa(minutes/u.size) + u.suffix
		}
	}
	return strconv.Itoa(minutes) + "m"
}
