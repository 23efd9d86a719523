package client

import (
	"context"
	"sync"

	"metatrader-client/pkg/transport"
)

// recorder is an in-memory bridge that replies from a queue and records
// every request it sees.
type recorder struct {
	mu       sync.Mutex
	requests []string
	replies  []reply
	closes   int
}

type reply struct {
	body string
	err  error
}

func newRecorder(replies ...string) *recorder {
	r := &recorder{}
	for _, body := range replies {
		r.replies = append(r.replies, reply{body: body})
	}
	return r
}

func (r *recorder) fail(err error) *recorder {
	r.replies = append(r.replies, reply{err: err})
	return r
}

func (r *recorder) Send(ctx context.Context, request string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, request)
	if len(r.replies) == 0 {
		return "", nil
	}
	next := r.replies[0]
	r.replies = r.replies[1:]
	return next.body, next.err
}

func (r *recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closes++
	return nil
}

func (r *recorder) sent() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.requests))
	copy(out, r.requests)
	return out
}

var _ transport.Transport = (*recorder)(nil)
