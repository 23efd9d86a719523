package errors

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: FromCode is total. Every integer resolves either to itself (when it
// is in the table) or to CodeUnknown, and never panics.
func TestProperty_FromCodeIsTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("FromCode resolves every integer", prop.ForAll(
		func(n int) bool {
			c := FromCode(n)
			if c == CodeUnknown {
				return !Code(n).Known() && c.String() == "UNKNOWN"
			}
			return int(c) == n && c.Known() && c.String() != ""
		},
		gen.OneGenOf(gen.IntRange(-10, 5000), gen.Int()),
	))

	properties.Property("listed codes round trip", prop.ForAll(
		func(i int) bool {
			codes := Codes()
			c := codes[i%len(codes)]
			return FromCode(int(c)) == c
		},
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// Property: a ServerError always matches ErrServer and resolves its raw code
// through the table, whatever description and message it carries.
func TestProperty_ServerErrorMatchesSentinel(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("ServerError is ErrServer", prop.ForAll(
		func(code int, desc, msg string, hasCode bool) bool {
			var raw *int
			if hasCode {
				raw = &code
			}
			wrapped := Wrap(NewServerError(raw, desc, msg), "get_account")

			var se *ServerError
			if !As(wrapped, &se) || !Is(wrapped, ErrServer) {
				return false
			}
			if Is(wrapped, ErrDecode) || Is(wrapped, ErrTransport) {
				return false
			}
			if !hasCode {
				return se.Code == CodeUnknown && se.RawCode == nil
			}
			return se.Code == FromCode(code) && *se.RawCode == code
		},
		gen.IntRange(-5, 5000),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
