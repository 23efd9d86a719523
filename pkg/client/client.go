// Package client is the typed front end of the terminal bridge protocol.
//
// A Client owns one transport session and runs one request at a time; use
// separate clients for parallel work. The ticket width T selects the
// dialect: MT4Client for 32-bit terminals and MT5Client for 64-bit ones.
package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/models"
	"metatrader-client/pkg/protocol"
	"metatrader-client/pkg/transport"
)

// DefaultIndicatorTimeout is the chart load timeout sent with indicator
// requests that do not specify one.
const DefaultIndicatorTimeout = 5000 * time.Millisecond

// Client speaks the bridge protocol over a single transport session.
type Client[T models.Ticket] struct {
	transport        transport.Transport
	logger           zerolog.Logger
	indicatorTimeout time.Duration

	mu     sync.Mutex
	broken error
	closed bool
}

// MT4Client and MT5Client are the dialect specific clients.
type (
	MT4Client = Client[models.MT4Ticket]
	MT5Client = Client[models.MT5Ticket]
)

type options struct {
	logger           zerolog.Logger
	indicatorTimeout time.Duration
}

// Option configures a Client.
type Option func(*options)

// WithLogger sets the logger. Round trips are logged at debug level, raw
// frames at trace level and server warnings at warn level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithIndicatorTimeout changes the default indicator chart load timeout.
func WithIndicatorTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.indicatorTimeout = d
		}
	}
}

func collect(opts []Option) options {
	o := options{
		logger:           zerolog.Nop(),
		indicatorTimeout: DefaultIndicatorTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns a client that owns t.
func New[T models.Ticket](t transport.Transport, opts ...Option) *Client[T] {
	o := collect(opts)
	return &Client[T]{
		transport:        t,
		logger:           o.logger.With().Str("component", "bridge").Logger(),
		indicatorTimeout: o.indicatorTimeout,
	}
}

// NewMT4 returns a client for the 32-bit ticket dialect.
func NewMT4(t transport.Transport, opts ...Option) *MT4Client {
	return New[models.MT4Ticket](t, opts...)
}

// NewMT5 returns a client for the 64-bit ticket dialect.
func NewMT5(t transport.Transport, opts ...Option) *MT5Client {
	return New[models.MT5Ticket](t, opts...)
}

// Close releases the session. It is safe to call more than once and is
// allowed after any failure.
func (c *Client[T]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.transport.Close(); err != nil {
		return mterrors.NewTransportError("close", err)
	}
	return nil
}

// usable reports why the client can no longer issue requests. c.mu must be held.
func (c *Client[T]) usable() error {
	if c.closed {
		return mterrors.ErrClosed
	}
	if c.broken != nil {
		return mterrors.Broken(c.broken)
	}
	return nil
}

func (c *Client[T]) check() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usable()
}

// call performs one round trip. A transport failure poisons the session:
// the request/response pairing is lost, so later calls fail with
// ErrSessionBroken.
func (c *Client[T]) call(ctx context.Context, action protocol.Action, params interface{}) (protocol.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usable(); err != nil {
		return protocol.Result{}, err
	}

	req, err := protocol.Encode(action, params)
	if err != nil {
		return protocol.Result{}, fmt.Errorf("%w: %w", mterrors.ErrInvalidArgument, err)
	}

	start := time.Now()
	c.logger.Trace().Str("action", string(action)).Str("request", req).Msg("bridge request")

	raw, err := c.transport.Send(ctx, req)
	if err != nil {
		c.broken = err
		c.logCall(action, start, err)
		return protocol.Result{}, err
	}
	c.logger.Trace().Str("action", string(action)).Str("response", raw).Msg("bridge response")

	res, err := protocol.Decode(raw)
	if err != nil {
		var de *mterrors.DecodeError
		if mterrors.As(err, &de) && de.Action == "" {
			de.Action = string(action)
		}
		c.logCall(action, start, err)
		return protocol.Result{}, err
	}
	if res.HasWarning {
		c.logger.Warn().Str("action", string(action)).Msg(res.Warning)
	}
	c.logCall(action, start, nil)
	return res, nil
}

func (c *Client[T]) logCall(action protocol.Action, start time.Time, err error) {
	event := c.logger.Debug()
	if err != nil {
		event = event.Err(err)
	}
	event.
		Str("action", string(action)).
		Dur("duration", time.Since(start)).
		Msg("bridge call")
}

// fetch performs a round trip and decodes the response value into R.
func fetch[R any, T models.Ticket](ctx context.Context, c *Client[T], action protocol.Action, params interface{}) (R, error) {
	var zero R
	res, err := c.call(ctx, action, params)
	if err != nil {
		return zero, err
	}
	var out R
	if err := protocol.Into(action, res, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// exec performs a round trip whose response value is not used.
func (c *Client[T]) exec(ctx context.Context, action protocol.Action, params interface{}) error {
	_, err := c.call(ctx, action, params)
	return err
}
