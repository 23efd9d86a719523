package protocol

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	mterrors "metatrader-client/pkg/errors"
)

type envelopeCase struct {
	withResponse bool
	withWarning  bool
	withCode     bool
	withDesc     bool
	withMessage  bool
	code         int
	text         string
}

// jsonString renders s as a JSON string literal.
func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// normalized is s as a JSON decoder returns it; invalid UTF-8 becomes U+FFFD.
func normalized(s string) string {
	var out string
	_ = json.Unmarshal([]byte(jsonString(s)), &out)
	return out
}

func (c envelopeCase) render() string {
	var parts []string
	if c.withResponse {
		parts = append(parts, `"response":{"value":`+strconv.Itoa(c.code)+`}`)
	}
	if c.withWarning {
		parts = append(parts, `"warning":`+jsonString(c.text))
	}
	if c.withCode {
		parts = append(parts, `"error_code":`+strconv.Itoa(c.code))
	}
	if c.withDesc {
		parts = append(parts, `"error_code_description":`+jsonString(c.text))
	}
	if c.withMessage {
		parts = append(parts, `"error_message":`+jsonString(c.text))
	}
	parts = append(parts, `"unrelated":[1,2,3]`)
	return "{" + strings.Join(parts, ",") + "}"
}

func envelopeGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
		gen.IntRange(-10, 5000), gen.AnyString(),
	).Map(func(v []interface{}) envelopeCase {
		return envelopeCase{
			withResponse: v[0].(bool),
			withWarning:  v[1].(bool),
			withCode:     v[2].(bool),
			withDesc:     v[3].(bool),
			withMessage:  v[4].(bool),
			code:         v[5].(int),
			text:         v[6].(string),
		}
	})
}

// Property: any error field yields a ServerError regardless of response and
// warning; otherwise decoding succeeds.
func TestProperty_ErrorFieldsTakePrecedence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("error fields always produce a ServerError", prop.ForAll(
		func(c envelopeCase) bool {
			res, err := Decode(c.render())
			hasError := c.withCode || c.withDesc || c.withMessage
			if !hasError {
				return err == nil && (res.Response != nil) == c.withResponse
			}

			var se *mterrors.ServerError
			if !mterrors.As(err, &se) {
				return false
			}
			if c.withMessage && se.Message != normalized(c.text) {
				return false
			}
			if c.withDesc && se.Description != normalized(c.text) {
				return false
			}
			if c.withCode {
				return se.RawCode != nil && *se.RawCode == c.code && se.Code == mterrors.FromCode(c.code)
			}
			return se.RawCode == nil && se.Code == mterrors.CodeUnknown
		},
		envelopeGen(),
	))

	properties.TestingRun(t)
}

// Property: adding a warning to a successful envelope does not change the
// decoded response value.
func TestProperty_WarningIsTransparent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("warning does not alter the result", prop.ForAll(
		func(values []int, warning string) bool {
			if values == nil {
				values = []int{}
			}
			body, _ := json.Marshal(values)
			plain := `{"response":` + string(body) + `}`
			warned := `{"warning":` + jsonString(warning) + `,"response":` + string(body) + `}`

			a, errA := Decode(plain)
			b, errB := Decode(warned)
			if errA != nil || errB != nil {
				return false
			}
			var va, vb []int
			if Into(ActionGetOrders, a, &va) != nil || Into(ActionGetOrders, b, &vb) != nil {
				return false
			}
			if len(va) != len(vb) {
				return false
			}
			for i := range va {
				if va[i] != vb[i] {
					return false
				}
			}
			return !a.HasWarning && b.HasWarning && b.Warning == normalized(warning)
		},
		gen.SliceOf(gen.Int()),
		gen.OneGenOf(
			gen.AnyString(),
			gen.AnyString().Map(func(s string) string { return s + "\xff\xfe" }),
		),
	))

	properties.TestingRun(t)
}

// Property: encoded requests are JSON objects whose first key is the action.
func TestProperty_EncodeActionFirst(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	actions := Actions()

	properties.Property("action key comes first", prop.ForAll(
		func(idx int, keys []string, n int) bool {
			action := actions[idx%len(actions)]
			params := Params{}
			for _, k := range keys {
				if k != FieldAction {
					params[k] = n
				}
			}
			raw, err := Encode(action, params)
			if err != nil {
				return false
			}

			dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
			if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
				return false
			}
			if tok, err := dec.Token(); err != nil || tok != FieldAction {
				return false
			}
			if tok, err := dec.Token(); err != nil || tok != string(action) {
				return false
			}

			var m map[string]interface{}
			if err := json.Unmarshal([]byte(raw), &m); err != nil {
				return false
			}
			return len(m) == len(params)+1
		},
		gen.IntRange(0, 100),
		gen.SliceOf(gen.Identifier()),
		gen.Int(),
	))

	properties.TestingRun(t)
}
