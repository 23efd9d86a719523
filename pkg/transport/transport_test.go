package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncTransport(t *testing.T) {
	var got string
	tr := Func(func(ctx context.Context, request string) (string, error) {
		got = request
		return `{"response":1}`, nil
	})

	resp, err := tr.Send(context.Background(), `{"action":"get_orders"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"response":1}`, resp)
	assert.Equal(t, `{"action":"get_orders"}`, got)
	assert.NoError(t, tr.Close())
}

func TestDeadline(t *testing.T) {
	start := time.Now()
	d := Deadline(context.Background(), time.Second)
	assert.WithinDuration(t, start.Add(time.Second), d, 100*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	d = Deadline(ctx, time.Hour)
	assert.WithinDuration(t, start.Add(10*time.Millisecond), d, 100*time.Millisecond)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Address: "tcp://localhost:28282"}.WithDefaults()
	assert.Equal(t, DefaultSendTimeout, cfg.SendTimeout)
	assert.Equal(t, DefaultReceiveTimeout, cfg.ReceiveTimeout)

	cfg = Config{SendTimeout: time.Second}.WithDefaults()
	assert.Equal(t, time.Second, cfg.SendTimeout)
	assert.Equal(t, DefaultConfig("x").ReceiveTimeout, cfg.ReceiveTimeout)
}
