package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCode(t *testing.T) {
	tests := []struct {
		in   int
		want Code
		name string
	}{
		{2, CodeCommonError, "ERR_COMMON_ERROR"},
		{4, CodeServerBusy, "ERR_SERVER_BUSY"},
		{6, CodeNoConnection, "ERR_NO_CONNECTION"},
		{64, CodeAccountDisabled, "ERR_ACCOUNT_DISABLED"},
		{4106, CodeUnknownSymbol, "ERR_UNKNOWN_SYMBOL"},
		{10, CodeUnknown, "UNKNOWN"},
		{-1, CodeUnknown, "UNKNOWN"},
		{999999, CodeUnknown, "UNKNOWN"},
	}
	for _, tt := range tests {
		got := FromCode(tt.in)
		assert.Equal(t, tt.want, got, "code %d", tt.in)
		assert.Equal(t, tt.name, got.String(), "code %d", tt.in)
	}
}

func TestServerErrorMessage(t *testing.T) {
	code := 6
	err := NewServerError(&code, "", "No connection")

	assert.Equal(t, CodeNoConnection, err.Code)
	assert.Equal(t, "No connection", err.Message)
	assert.Empty(t, err.Description)
	assert.Equal(t, "server error [ERR_NO_CONNECTION]: No connection", err.Error())

	bare := NewServerError(nil, "", "")
	assert.Equal(t, "server error [UNKNOWN]", bare.Error())
}

func TestTypedErrorsUnwrap(t *testing.T) {
	de := NewDecodeError("get_ohlcv", io.ErrUnexpectedEOF)
	assert.True(t, Is(de, ErrDecode))
	assert.True(t, Is(de, io.ErrUnexpectedEOF))
	assert.Contains(t, de.Error(), "get_ohlcv")

	te := NewTransportError("receive", io.EOF)
	assert.True(t, Is(te, ErrTransport))
	assert.True(t, Is(te, io.EOF))

	ve := NewValidationError("lots", -1, "must be positive")
	assert.True(t, Is(ve, ErrInvalidArgument))
}

func TestBroken(t *testing.T) {
	cause := NewTransportError("send", io.ErrClosedPipe)
	err := Broken(cause)

	require.Error(t, err)
	assert.True(t, Is(err, ErrSessionBroken))
	assert.True(t, Is(err, ErrTransport))

	var te *TransportError
	require.True(t, As(err, &te))
	assert.Equal(t, "send", te.Op)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ctx"))
	assert.NoError(t, Wrapf(nil, "ctx %d", 1))
	assert.EqualError(t, Wrapf(ErrClosed, "op %s", "x"), "op x: client closed")
}
