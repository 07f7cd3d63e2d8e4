package store

import (
	"context"
	"testing"

	"github.com/abhisek/adept/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// No profile yet.
	got, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil profile when none exist")
	}

	p := profile.New()
	p.Style = profile.StyleVisual
	p.TotalAnswers = 4
	p.CorrectAnswers = 3
	p.AddVote(profile.StyleVisual, profile.DepthFormulaFirst)
	if err := repo.Save(ctx, "u1", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Style != profile.StyleVisual || got.TotalAnswers != 4 {
		t.Errorf("round-trip profile = %s/%d answers", got.Style, got.TotalAnswers)
	}
	if got.StyleVotes[profile.StyleVisual] != 1 {
		t.Errorf("vote tally lost in round trip: %v", got.StyleVotes)
	}

	// Profiles are per-user.
	other, err := repo.Latest(ctx, "u2")
	if err != nil {
		t.Fatalf("latest (other user): %v", err)
	}
	if other != nil {
		t.Fatal("expected nil profile for unknown user")
	}
}

func TestProfileLatestPicksNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	first := profile.New()
	if err := repo.Save(ctx, "u1", first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := profile.New()
	second.Pace = profile.PaceFast
	if err := repo.Save(ctx, "u1", second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Pace != profile.PaceFast {
		t.Errorf("latest returned stale snapshot: pace = %s", got.Pace)
	}
}

func TestProfilePrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Save(ctx, "u1", profile.New()); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if err := repo.Prune(ctx, "u1", 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().ProfileSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}
}

func TestTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", UserID: "u1", Topic: "algorithms", QuestionID: "algo_1", Difficulty: "easy", Correct: true},
		{SessionID: "s1", UserID: "u1", Topic: "algorithms", QuestionID: "algo_2", Difficulty: "medium", Correct: false},
		{SessionID: "s1", UserID: "u1", Topic: "operating_systems", QuestionID: "os_1", Difficulty: "easy", Correct: true},
		{SessionID: "s2", UserID: "u2", Topic: "algorithms", QuestionID: "algo_1", Difficulty: "easy", Correct: false},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.TopicAccuracy(ctx, "u1")
	if err != nil {
		t.Fatalf("topic accuracy: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("topics = %d, want 2", len(stats))
	}
	// Sorted by topic name.
	if stats[0].Topic != "algorithms" || stats[0].Answered != 2 || stats[0].Correct != 1 {
		t.Errorf("algorithms stats = %+v", stats[0])
	}
	if stats[1].Topic != "operating_systems" || stats[1].Answered != 1 {
		t.Errorf("operating_systems stats = %+v", stats[1])
	}
}

func TestRecentAdaptationsOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, field := range []string{"pace", "confidence", "learning_style"} {
		err := repo.AppendAdaptation(ctx, AdaptationEventData{
			SessionID: "s1", UserID: "u1",
			Trigger: "low_accuracy", Source: "rule",
			Field: field, FromValue: "a", ToValue: "b",
		})
		if err != nil {
			t.Fatalf("append %s: %v", field, err)
		}
	}

	got, err := repo.RecentAdaptations(ctx, "u1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent adaptations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Field != "learning_style" || got[1].Field != "confidence" {
		t.Errorf("order = %s, %s", got[0].Field, got[1].Field)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "explanation", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "explanation", InputTokens: 80, OutputTokens: 40, Success: false, ErrorMessage: "timeout"},
		{Provider: "mock", Model: "mock", Purpose: "routing", InputTokens: 20, OutputTokens: 5, Success: true},
	}
	for _, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("purposes = %d, want 2", len(usage))
	}
	if usage[0].Purpose != "explanation" || usage[0].Requests != 2 || usage[0].InputTokens != 180 || usage[0].Failures != 1 {
		t.Errorf("explanation usage = %+v", usage[0])
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "explanation", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "routing", InputTokens: 30, OutputTokens: 10, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "content-gen", InputTokens: 200, OutputTokens: 150, Success: true},
	}
	for _, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("models = %d, want 2", len(usage))
	}
	// Sorted by model name.
	if usage[0].Model != "claude-sonnet-4-20250514" || usage[0].Calls != 2 || usage[0].InputTokens != 130 {
		t.Errorf("claude usage = %+v", usage[0])
	}
	if usage[1].Model != "gpt-4o-mini" || usage[1].Calls != 1 || usage[1].OutputTokens != 150 {
		t.Errorf("gpt usage = %+v", usage[1])
	}
}

func TestQueryLLMEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "explanation",
			InputTokens: 10 * (i + 1), OutputTokens: 5, LatencyMs: 100, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].InputTokens != 30 || events[1].InputTokens != 20 {
		t.Errorf("order = %d, %d tokens; want newest first", events[0].InputTokens, events[1].InputTokens)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "routing",
		InputTokens: 42, OutputTokens: 7, LatencyMs: 250, Success: false,
		ErrorMessage: "timeout", RequestBody: `{"q":"hi"}`, ResponseBody: "",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("event not found")
	}
	if got.InputTokens != 42 || got.ErrorMessage != "timeout" || got.RequestBody != `{"q":"hi"}` {
		t.Errorf("event = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, got.ID+1000)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestSessionEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "u1", Action: "start", Phase: "welcome",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "u1", Action: "end", Phase: "review",
		Topic: "algorithms", TotalInteractions: 12, AdaptationCount: 2, DurationSecs: 600,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	n, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("session events = %d, want 2", n)
	}
}
