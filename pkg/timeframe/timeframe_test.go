package timeframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		expr string
		want Timeframe
	}{
		{"15m", M15},
		{"1h", H1},
		{"4h", H4},
		{"1d", D1},
		{"1w", W1},
		{"1mn", MN1},
		{"0", Current},
		{" 30m ", M30},
		{"2m", M2},
		{"2h", H2},
		{"7m", NonStandard(7)},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.expr)
		require.True(t, ok, "expected %q to parse", tt.expr)
		assert.Equal(t, tt.want, got, "expr %q", tt.expr)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, expr := range []string{"10a", "-15m", "M15", "", "  ", "1H", "1.5h", "h", "15 m", "99999999999999999999m"} {
		tf, ok := Parse(expr)
		assert.False(t, ok, "expected %q to fail", expr)
		assert.Nil(t, tf)
	}
}

func TestToStandardResolution(t *testing.T) {
	tf, ok := Parse("60m")
	require.True(t, ok)
	assert.Equal(t, Timeframe(H1), tf)
	assert.True(t, IsStandard(tf))

	tf, ok = Parse("2h")
	require.True(t, ok)
	assert.False(t, IsStandard(tf))
	assert.Equal(t, 120, tf.Minutes())
}

func TestEqualByMinutes(t *testing.T) {
	assert.True(t, Equal(H1, NonStandard(60)))
	assert.False(t, Equal(H1, H4))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(H1, nil))
}

func TestFromMinutes(t *testing.T) {
	_, ok := FromMinutes(-1)
	assert.False(t, ok)

	tf, ok := FromMinutes(0)
	require.True(t, ok)
	assert.Equal(t, Timeframe(Current), tf)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "PERIOD_M15", M15.Name())
	assert.Equal(t, "PERIOD_CURRENT", Current.Name())
	assert.Equal(t, "1h", H1.String())
	assert.Equal(t, "2h", H2.String())
	assert.Equal(t, "90m", NonStandard(90).String())
	assert.Len(t, Standards(), 10)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("bogus") })
	assert.NotPanics(t, func() { MustParse("1d") })
}
