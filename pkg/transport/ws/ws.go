// Package ws implements the bridge transport over a WebSocket connection,
// for gateways that expose the bridge as text frames.
package ws

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/transport"
)

// Transport sends each request as one text frame and reads one text frame back.
type Transport struct {
	cfg    transport.Config
	logger zerolog.Logger

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the logger used for connection events.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Transport) { t.logger = logger }
}

// Dial opens a WebSocket connection to cfg.Address.
func Dial(ctx context.Context, cfg transport.Config, opts ...Option) (*Transport, error) {
	cfg = cfg.WithDefaults()
	t := &Transport{cfg: cfg, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = cfg.SendTimeout

	conn, resp, err := dialer.DialContext(ctx, cfg.Address, nil)
	if err != nil {
		if resp != nil {
			return nil, mterrors.NewTransportError("dial", errors.Join(err, errors.New(resp.Status)))
		}
		return nil, mterrors.NewTransportError("dial", err)
	}
	t.conn = conn
	t.logger.Debug().Str("address", cfg.Address).Msg("websocket connected")
	return t, nil
}

// Send writes request and waits for the reply. A read timeout yields
// ErrNoResponse; the connection is closed since a late reply would be
// matched to the next request.
func (t *Transport) Send(ctx context.Context, request string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", mterrors.ErrClosed
	}

	if err := t.conn.SetWriteDeadline(transport.Deadline(ctx, t.cfg.SendTimeout)); err != nil {
		return "", mterrors.NewTransportError("send", err)
	}
	if err := t.conn.WriteMessage(websocket.TextMessage, []byte(request)); err != nil {
		t.closeLocked()
		return "", mterrors.NewTransportError("send", err)
	}

	if err := t.conn.SetReadDeadline(transport.Deadline(ctx, t.cfg.ReceiveTimeout)); err != nil {
		return "", mterrors.NewTransportError("receive", err)
	}
	kind, data, err := t.conn.ReadMessage()
	if err != nil {
		t.closeLocked()
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", mterrors.ErrNoResponse
		}
		return "", mterrors.NewTransportError("receive", err)
	}
	if kind != websocket.TextMessage {
		t.logger.Debug().Int("frame_type", kind).Msg("non-text reply frame")
	}
	return string(data), nil
}

func (t *Transport) closeLocked() {
	if t.closed {
		return
	}
	t.closed = true
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = t.conn.WriteControl(websocket.CloseMessage, msg, transport.Deadline(context.Background(), t.cfg.SendTimeout))
	if err := t.conn.Close(); err != nil {
		t.logger.Debug().Err(err).Msg("websocket close")
	}
}

// Close closes the connection. It is safe to call more than once.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeLocked()
	return nil
}
