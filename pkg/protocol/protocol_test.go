package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mterrors "metatrader-client/pkg/errors"
)

func TestEncodeOHLCVRequest(t *testing.T) {
	raw, err := Encode(ActionGetOHLCV, Params{
		"symbol":    "EURUSD",
		"timeframe": 60,
		"limit":     3,
		"timeout":   5000,
		"offset":    0,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"get_ohlcv","symbol":"EURUSD","timeframe":60,"limit":3,"timeout":5000,"offset":0}`, raw)
	assert.True(t, len(raw) > 20 && raw[:20] == `{"action":"get_ohlcv`)
}

func TestEncodeWithoutParams(t *testing.T) {
	raw, err := Encode(ActionGetAccountInfo, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"action":"get_account_info"}`, raw)

	raw, err = Encode(ActionGetOrders, struct {
		Ticket *int `json:"ticket,omitempty"`
	}{})
	require.NoError(t, err)
	assert.Equal(t, `{"action":"get_orders"}`, raw)
}

func TestEncodeRejects(t *testing.T) {
	_, err := Encode("", nil)
	assert.Error(t, err)

	_, err = Encode(ActionGetOrder, []int{1})
	assert.Error(t, err)

	_, err = Encode(ActionGetOrder, Params{"action": "x"})
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n"} {
		_, err := Decode(raw)
		assert.ErrorIs(t, err, mterrors.ErrNoResponse)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, raw := range []string{"{", "[1,2]", "42", `"text"`, "null"} {
		_, err := Decode(raw)
		assert.ErrorIs(t, err, mterrors.ErrDecode, raw)
		assert.NotErrorIs(t, err, mterrors.ErrServer, raw)
	}
}

func TestDecodeServerError(t *testing.T) {
	_, err := Decode(`{"error_code":6,"error_message":"No connection"}`)

	var se *mterrors.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "No connection", se.Message)
	assert.Equal(t, mterrors.CodeNoConnection, se.Code)
	assert.Equal(t, "ERR_NO_CONNECTION", se.Code.String())
	assert.Empty(t, se.Description)
}

func TestDecodeServerErrorWithResponse(t *testing.T) {
	_, err := Decode(`{"response":{"login":1},"warning":"w","error_code_description":"bad"}`)

	var se *mterrors.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, mterrors.CodeUnknown, se.Code)
	assert.Nil(t, se.RawCode)
	assert.Equal(t, "bad", se.Description)
}

func TestDecodeLenientErrorCode(t *testing.T) {
	_, err := Decode(`{"error_code":"4106","error_message":{"detail":"x"}}`)
	var se *mterrors.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, mterrors.CodeUnknownSymbol, se.Code)
	assert.Equal(t, `{"detail":"x"}`, se.Message)

	_, err = Decode(`{"error_code":10}`)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, mterrors.CodeUnknown, se.Code)
	require.NotNil(t, se.RawCode)
	assert.Equal(t, 10, *se.RawCode)
}

func TestDecodeNullErrorFieldsAreAbsent(t *testing.T) {
	res, err := Decode(`{"response":true,"error_code":null,"error_message":null}`)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`true`), res.Response)
}

func TestDecodeVoidResponse(t *testing.T) {
	res, err := Decode(`{}`)
	require.NoError(t, err)
	assert.Nil(t, res.Response)

	var v map[string]interface{}
	err = Into(ActionGetAccountInfo, res, &v)
	assert.ErrorIs(t, err, mterrors.ErrDecode)
	assert.Contains(t, err.Error(), "get_account_info")
}

func TestIntoShapeMismatch(t *testing.T) {
	res, err := Decode(`{"response":{"a":1}}`)
	require.NoError(t, err)

	var list []string
	err = Into(ActionGetSymbols, res, &list)
	var de *mterrors.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "get_symbols", de.Action)
}

func TestDecodeWarningTextIsUnrestricted(t *testing.T) {
	res, err := Decode("{\"response\":1,\"warning\":\"chart \U000f733a 📈\"}")
	require.NoError(t, err)
	assert.Equal(t, "chart \U000f733a 📈", res.Warning)

	res, err = Decode("{\"response\":1,\"warning\":\"bad \xff\"}")
	require.NoError(t, err)
	assert.Equal(t, "bad �", res.Warning)

	_, err = Decode(`{"response":1,"warning":"\U000f733a"}`)
	assert.ErrorIs(t, err, mterrors.ErrDecode, "Go-only escapes are not JSON")
}
