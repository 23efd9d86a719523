// Package transport defines the request/response primitive the client runs on.
package transport

import (
	"context"
	"time"
)

// Transport carries one request and its response at a time. An empty
// response with a nil error means nothing was received.
type Transport interface {
	Send(ctx context.Context, request string) (string, error)
	Close() error
}

// Config holds the session settings shared by all transports.
type Config struct {
	// Address is the bridge endpoint, e.g. tcp://localhost:28282 or ws://host:port/path.
	Address string
	// SendTimeout bounds how long a request may wait to be sent.
	SendTimeout time.Duration
	// ReceiveTimeout bounds how long to wait for the response.
	ReceiveTimeout time.Duration
}

// Default timeouts.
const (
	DefaultSendTimeout    = 10 * time.Second
	DefaultReceiveTimeout = 10 * time.Second
)

// DefaultConfig returns a config for address with the default timeouts.
func DefaultConfig(address string) Config {
	return Config{
		Address:        address,
		SendTimeout:    DefaultSendTimeout,
		ReceiveTimeout: DefaultReceiveTimeout,
	}
}

// WithDefaults fills zero timeouts with the defaults.
func (c Config) WithDefaults() Config {
	if c.SendTimeout <= 0 {
		c.SendTimeout = DefaultSendTimeout
	}
	if c.ReceiveTimeout <= 0 {
		c.ReceiveTimeout = DefaultReceiveTimeout
	}
	return c
}

// Func adapts a function to Transport. Close is a no-op.
type Func func(ctx context.Context, request string) (string, error)

// Send calls f.
func (f Func) Send(ctx context.Context, request string) (string, error) {
	return f(ctx, request)
}

// Close implements Transport.
func (f Func) Close() error { return nil }

// Deadline returns the earlier of now+d and the deadline of ctx.
func Deadline(ctx context.Context, d time.Duration) time.Time {
	deadline := time.Now().Add(d)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}
