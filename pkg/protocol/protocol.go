// Package protocol encodes request envelopes and decodes response envelopes
// of the terminal bridge.
//
// A request is one flat JSON object whose first key is "action". A response
// is one JSON object with optional "response", "warning", "error_code",
// "error_code_description" and "error_message" fields. Any error field wins
// over the rest of the envelope. Unknown fields are ignored.
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mterrors "metatrader-client/pkg/errors"
)

// Action names an operation on the bridge.
type Action string

const (
	ActionGetAccountInfo      Action = "get_account_info"
	ActionGetSymbols          Action = "get_symbols"
	ActionGetSymbolInfo       Action = "get_symbol_info"
	ActionGetSignals          Action = "get_signals"
	ActionGetSignalInfo       Action = "get_signal_info"
	ActionGetOHLCV            Action = "get_ohlcv"
	ActionRunIndicator        Action = "run_indicator"
	ActionGetOrders           Action = "get_orders"
	ActionGetHistoricalOrders Action = "get_historical_orders"
	ActionGetOrder            Action = "get_order"
	ActionDoOrderSend         Action = "do_order_send"
	ActionDoOrderModify       Action = "do_order_modify"
	ActionDoOrderClose        Action = "do_order_close"
	ActionDoOrderDelete       Action = "do_order_delete"
)

// Actions returns every known action.
func Actions() []Action {
	return []Action{
		ActionGetAccountInfo, ActionGetSymbols, ActionGetSymbolInfo, ActionGetSignals,
		ActionGetSignalInfo, ActionGetOHLCV, ActionRunIndicator, ActionGetOrders,
		ActionGetHistoricalOrders, ActionGetOrder, ActionDoOrderSend, ActionDoOrderModify,
		ActionDoOrderClose, ActionDoOrderDelete,
	}
}

// Wire field names.
const (
	FieldAction               = "action"
	FieldResponse             = "response"
	FieldWarning              = "warning"
	FieldErrorCode            = "error_code"
	FieldErrorCodeDescription = "error_code_description"
	FieldErrorMessage         = "error_message"
)

// Params is a loosely typed parameter set for Encode.
type Params map[string]interface{}

// Encode renders a request envelope. params may be nil or anything that
// marshals to a JSON object; its keys follow the action key.
func Encode(action Action, params interface{}) (string, error) {
	if action == "" {
		return "", fmt.Errorf("encode request: empty action")
	}
	head, err := json.Marshal(string(action))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"action":`)
	buf.Write(head)

	if params != nil {
		body, err := json.Marshal(params)
		if err != nil {
			return "", fmt.Errorf("encode %s params: %w", action, err)
		}
		body = bytes.TrimSpace(body)
		if !bytes.Equal(body, []byte("null")) {
			var fields map[string]json.RawMessage
			if err := json.Unmarshal(body, &fields); err != nil {
				return "", fmt.Errorf("encode %s params: not an object", action)
			}
			if _, clash := fields[FieldAction]; clash {
				return "", fmt.Errorf("encode %s params: reserved key %q", action, FieldAction)
			}
			if len(fields) > 0 {
				buf.WriteByte(',')
				buf.Write(body[1 : len(body)-1])
			}
		}
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

// Result is the successful content of a response envelope.
type Result struct {
	// Response is the raw "response" value, nil when absent or null.
	Response json.RawMessage
	// Warning is the non-fatal notice sent alongside the result, if any.
	Warning string
	// HasWarning distinguishes an empty warning from none.
	HasWarning bool
}

type envelope struct {
	Response             json.RawMessage `json:"response"`
	Warning              json.RawMessage `json:"warning"`
	ErrorCode            json.RawMessage `json:"error_code"`
	ErrorCodeDescription json.RawMessage `json:"error_code_description"`
	ErrorMessage         json.RawMessage `json:"error_message"`
}

// Decode unwraps a response envelope. It returns ErrNoResponse for empty
// input, a *ServerError when any error field is present and a *DecodeError
// when raw is not a JSON object.
func Decode(raw string) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, mterrors.ErrNoResponse
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Result{}, mterrors.NewDecodeError("", err)
	}
	// A top-level null unmarshals cleanly into a struct.
	if trimmed := strings.TrimSpace(raw); trimmed == "null" {
		return Result{}, mterrors.NewDecodeError("", fmt.Errorf("response is not an object"))
	}

	if present(env.ErrorCode) || present(env.ErrorCodeDescription) || present(env.ErrorMessage) {
		return Result{}, mterrors.NewServerError(
			codeOf(env.ErrorCode),
			textOf(env.ErrorCodeDescription),
			textOf(env.ErrorMessage),
		)
	}

	res := Result{}
	if present(env.Response) {
		res.Response = env.Response
	}
	if present(env.Warning) {
		res.Warning = textOf(env.Warning)
		res.HasWarning = true
	}
	return res, nil
}

func present(v json.RawMessage) bool {
	return len(v) > 0 && !bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// codeOf accepts integral numbers and numeric strings; anything else has no
// usable code and resolves to UNKNOWN.
func codeOf(v json.RawMessage) *int {
	if !present(v) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		if f == float64(int(f)) {
			n := int(f)
			return &n
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return &n
		}
	}
	return nil
}

// textOf returns string values as is and any other JSON value as its text.
func textOf(v json.RawMessage) string {
	if !present(v) {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(v))
}

// Into decodes the response value of res into out, rejecting a missing value.
func Into(action Action, res Result, out interface{}) error {
	if res.Response == nil {
		return mterrors.NewDecodeError(string(action), fmt.Errorf("missing %s field", FieldResponse))
	}
	if err := json.Unmarshal(res.Response, out); err != nil {
		return mterrors.NewDecodeError(string(action), err)
	}
	return nil
}
