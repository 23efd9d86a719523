// Package zmq implements the bridge transport over a ZeroMQ REQ socket.
package zmq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-zeromq/zmq4"
	"github.com/rs/zerolog"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/transport"
)

// Transport is a REQ socket connected to the bridge. A REQ socket
// strictly alternates send and receive, so it permits one outstanding
// request at a time.
type Transport struct {
	cfg    transport.Config
	logger zerolog.Logger

	mu     sync.Mutex
	sock   zmq4.Socket
	cancel context.CancelFunc
	closed bool
}

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the logger used for connection events.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Transport) { t.logger = logger }
}

// Dial connects a REQ socket to cfg.Address.
func Dial(ctx context.Context, cfg transport.Config, opts ...Option) (*Transport, error) {
	cfg = cfg.WithDefaults()
	t := &Transport{cfg: cfg, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}

	sockCtx, cancel := context.WithCancel(context.Background())
	sock := zmq4.NewReq(sockCtx,
		zmq4.WithDialerTimeout(cfg.SendTimeout),
		zmq4.WithTimeout(cfg.SendTimeout),
	)

	dialed := make(chan error, 1)
	go func() { dialed <- sock.Dial(cfg.Address) }()

	select {
	case err := <-dialed:
		if err != nil {
			cancel()
			sock.Close()
			return nil, mterrors.NewTransportError("dial", fmt.Errorf("%s: %w", cfg.Address, err))
		}
	case <-ctx.Done():
		cancel()
		sock.Close()
		return nil, mterrors.NewTransportError("dial", ctx.Err())
	}

	t.sock = sock
	t.cancel = cancel
	t.logger.Debug().Str("address", cfg.Address).Msg("zmq REQ socket connected")
	return t, nil
}

// Send writes request as one frame and waits for the reply frame. A reply
// that does not arrive within the receive timeout yields ErrNoResponse; the
// socket is then out of step and the caller must not reuse it.
func (t *Transport) Send(ctx context.Context, request string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", mterrors.ErrClosed
	}

	if err := t.await(ctx, t.cfg.SendTimeout, func() error {
		return t.sock.Send(zmq4.NewMsgString(request))
	}); err != nil {
		if errors.Is(err, errTimeout) {
			return "", mterrors.NewTransportError("send", fmt.Errorf("timed out after %s", t.cfg.SendTimeout))
		}
		return "", mterrors.NewTransportError("send", err)
	}

	var reply zmq4.Msg
	if err := t.await(ctx, t.cfg.ReceiveTimeout, func() error {
		var err error
		reply, err = t.sock.Recv()
		return err
	}); err != nil {
		if errors.Is(err, errTimeout) {
			return "", mterrors.ErrNoResponse
		}
		return "", mterrors.NewTransportError("receive", err)
	}

	return joinFrames(reply), nil
}

var errTimeout = errors.New("timeout")

// await runs op in a goroutine and gives up after d or when ctx ends. zmq4
// socket calls cannot be interrupted, so on timeout the socket is torn
// down to release the goroutine.
func (t *Transport) await(ctx context.Context, d time.Duration, op func() error) error {
	done := make(chan error, 1)
	go func() { done <- op() }()

	timer := time.NewTimer(time.Until(transport.Deadline(ctx, d)))
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		t.teardown()
		return errTimeout
	case <-ctx.Done():
		t.teardown()
		return ctx.Err()
	}
}

func (t *Transport) teardown() {
	if t.closed {
		return
	}
	t.closed = true
	t.cancel()
	if err := t.sock.Close(); err != nil {
		t.logger.Debug().Err(err).Msg("zmq socket close")
	}
}

// Close releases the socket. It is safe to call more than once.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.teardown()
	return nil
}

func joinFrames(msg zmq4.Msg) string {
	if len(msg.Frames) == 1 {
		return string(msg.Frames[0])
	}
	var b strings.Builder
	for _, f := range msg.Frames {
		b.Write(f)
	}
	return b.String()
}
