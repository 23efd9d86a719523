package client

import (
	"context"
	"strings"

	"metatrader-client/pkg/models"
	"metatrader-client/pkg/transport"
	"metatrader-client/pkg/transport/ws"
	"metatrader-client/pkg/transport/zmq"
)

// Dial connects to cfg.Address and returns a client owning the session.
// ws:// and wss:// addresses use the WebSocket transport, anything else a
// ZeroMQ REQ socket.
func Dial[T models.Ticket](ctx context.Context, cfg transport.Config, opts ...Option) (*Client[T], error) {
	o := collect(opts)

	var (
		t   transport.Transport
		err error
	)
	if IsWebSocket(cfg.Address) {
		t, err = ws.Dial(ctx, cfg, ws.WithLogger(o.logger))
	} else {
		t, err = zmq.Dial(ctx, cfg, zmq.WithLogger(o.logger))
	}
	if err != nil {
		return nil, err
	}
	return New[T](t, opts...), nil
}

// DialMT4 connects a client for the 32-bit ticket dialect.
func DialMT4(ctx context.Context, cfg transport.Config, opts ...Option) (*MT4Client, error) {
	return Dial[models.MT4Ticket](ctx, cfg, opts...)
}

// DialMT5 connects a client for the 64-bit ticket dialect.
func DialMT5(ctx context.Context, cfg transport.Config, opts ...Option) (*MT5Client, error) {
	return Dial[models.MT5Ticket](ctx, cfg, opts...)
}

// IsWebSocket reports whether address selects the WebSocket transport.
func IsWebSocket(address string) bool {
	a := strings.ToLower(address)
	return strings.HasPrefix(a, "ws://") || strings.HasPrefix(a, "wss://")
}
