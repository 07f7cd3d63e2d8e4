package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that puts a deadline on every Generate
// call. Wrapped outermost, the deadline covers retries too, so a wedged
// provider can never hang a turn past Config.Timeout.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider so each Generate runs under a deadline.
// A zero or negative timeout disables the wrap.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
