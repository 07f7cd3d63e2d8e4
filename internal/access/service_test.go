package access

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/adept/internal/llm"
)

func TestTransform(t *testing.T) {
	resp := json.RawMessage(`{"content":"SECTION - Deadlock\nA deadlock happens when...\nEND OF SECTION"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	r := svc.Transform(context.Background(), "Deadlock occurs when processes wait on each other.", ModeScreenReader)
	if r.Fallback {
		t.Error("successful transform flagged as fallback")
	}
	if !strings.Contains(r.Content, "SECTION") {
		t.Errorf("content = %q", r.Content)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "SCREEN READER") {
		t.Error("prompt missing mode rules")
	}
}

func TestTransformFailsSoft(t *testing.T) {
	original := "A deadlock occurs when two processes each hold a resource the other needs, and neither can proceed because both are waiting indefinitely."

	// Provider error.
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())
	r := svc.Transform(context.Background(), original, ModeDyslexia)
	if !r.Fallback || r.Content == "" {
		t.Errorf("provider error: fallback=%v content=%q", r.Fallback, r.Content)
	}

	// Malformed response.
	mock = llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`garbage`)})
	svc = NewService(mock, DefaultConfig())
	r = svc.Transform(context.Background(), original, ModeSimplified)
	if !r.Fallback {
		t.Error("malformed response did not fall back")
	}

	// Nil provider.
	svc = NewService(nil, DefaultConfig())
	r = svc.Transform(context.Background(), original, ModeDyslexia)
	if !r.Fallback {
		t.Error("nil provider did not fall back")
	}

	// Unknown mode.
	r = svc.Transform(context.Background(), original, Mode("braille"))
	if !r.Fallback {
		t.Error("unknown mode did not fall back")
	}
}

func TestTransformAll(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"content":"one"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"content":"two"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"content":"three"}`)},
	)
	svc := NewService(mock, DefaultConfig())

	all := svc.TransformAll(context.Background(), "text")
	if len(all) != 3 {
		t.Fatalf("renditions = %d, want 3", len(all))
	}
	for mode, r := range all {
		if r.Mode != mode || r.Fallback {
			t.Errorf("rendition %s = %+v", mode, r)
		}
	}
}

func TestQuickSimplify(t *testing.T) {
	long := "The scheduler assigns the processor to each runnable process for a bounded time slice, and when the slice expires the process returns to the ready queue to await another turn."
	out := QuickSimplify(long)
	if out == long {
		t.Error("long sentence not split")
	}
	if !strings.Contains(out, "\n\n") {
		t.Error("no paragraph breaks added")
	}

	short := "Short sentence. Another one."
	out = QuickSimplify(short)
	if !strings.Contains(out, "Short sentence.") || !strings.Contains(out, "Another one.") {
		t.Errorf("short sentences mangled: %q", out)
	}

	if QuickSimplify("") != "" {
		t.Error("empty input not preserved")
	}
}
