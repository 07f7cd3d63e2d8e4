package store

import (
	"context"
	"time"

	"github.com/abhisek/adept/internal/profile"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProfileRepo persists learner profiles, one history per user.
type ProfileRepo interface {
	// Save stores a new profile snapshot for the user.
	Save(ctx context.Context, userID string, p *profile.Profile) error

	// Latest returns the user's most recent profile, or nil if none exists.
	Latest(ctx context.Context, userID string) (*profile.Profile, error)

	// Prune deletes all but the N most recent snapshots per user.
	Prune(ctx context.Context, userID string, keep int) error
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID         string
	UserID            string
	Action            string // start, phase, end
	Phase             string
	Topic             string
	TotalInteractions int
	AdaptationCount   int
	DurationSecs      int
}

// AnswerEventData captures a single diagnostic or practice answer.
type AnswerEventData struct {
	SessionID        string
	UserID           string
	Topic            string
	QuestionID       string
	Concept          string
	Difficulty       string
	SelectedIndex    int
	Correct          bool
	TimeSecs         float64
	ConfidenceRating int
	StyleVoted       string
	DepthVoted       string
}

// AdaptationEventData captures one profile change and its provenance.
type AdaptationEventData struct {
	SessionID string
	UserID    string
	Trigger   string
	Source    string // rule or llm
	Field     string
	FromValue string
	ToValue   string
	Reasoning string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// TopicStats aggregates answer outcomes for one topic.
type TopicStats struct {
	Topic    string
	Answered int
	Correct  int
}

// LLMUsage aggregates token consumption grouped by purpose.
type LLMUsage struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
	AvgLatencyMs int64
}

// ModelUsage aggregates token consumption grouped by model, for cost
// estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMEventRecord is one stored LLM request, with its row identity.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start, phase change, or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an answer attempt.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendAdaptation records a profile adaptation.
	AppendAdaptation(ctx context.Context, data AdaptationEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// TopicAccuracy aggregates answer counts per topic for a user.
	TopicAccuracy(ctx context.Context, userID string) ([]TopicStats, error)

	// RecentAdaptations returns the user's latest adaptations, newest first.
	RecentAdaptations(ctx context.Context, userID string, opts QueryOpts) ([]AdaptationEventData, error)

	// LLMUsageByPurpose aggregates token consumption per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token consumption per model ID.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// QueryLLMEvents returns stored LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM request by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
}
