package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// hangingProvider blocks until its context is done, simulating a wedged
// upstream API.
type hangingProvider struct{}

func (hangingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangingProvider) ModelID() string { return "hanging" }

func TestWithTimeoutBoundsHangingProvider(t *testing.T) {
	p := WithTimeout(hangingProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	elapsed := time.Since(start)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if elapsed > 2*time.Second {
		t.Errorf("Generate took %v, deadline not applied", elapsed)
	}
}

func TestWithTimeoutZeroDisablesWrap(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Error("zero timeout should return the provider unwrapped")
	}
}

func TestWithTimeoutPassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: []byte(`{"ok":true}`)})

	p := WithTimeout(mock, time.Second)
	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if p.ModelID() != mock.ModelID() {
		t.Errorf("model = %q, want %q", p.ModelID(), mock.ModelID())
	}
}
