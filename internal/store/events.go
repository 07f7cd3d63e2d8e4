package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/adept/ent"
	"github.com/abhisek/adept/ent/adaptationevent"
	"github.com/abhisek/adept/ent/answerevent"
	"github.com/abhisek/adept/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetPhase(data.Phase).
		SetTopic(data.Topic).
		SetTotalInteractions(data.TotalInteractions).
		SetAdaptationCount(data.AdaptationCount).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetTopic(data.Topic).
		SetQuestionID(data.QuestionID).
		SetConcept(data.Concept).
		SetDifficulty(data.Difficulty).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrect(data.Correct).
		SetTimeSecs(data.TimeSecs).
		SetConfidenceRating(data.ConfidenceRating).
		SetStyleVoted(data.StyleVoted).
		SetDepthVoted(data.DepthVoted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAdaptation(ctx context.Context, data AdaptationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AdaptationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetTrigger(data.Trigger).
		SetSource(data.Source).
		SetField(data.Field).
		SetFromValue(data.FromValue).
		SetToValue(data.ToValue).
		SetReasoning(data.Reasoning).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save adaptation event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, userID string) ([]TopicStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byTopic := make(map[string]*TopicStats)
	for _, e := range events {
		ts, ok := byTopic[e.Topic]
		if !ok {
			ts = &TopicStats{Topic: e.Topic}
			byTopic[e.Topic] = ts
		}
		ts.Answered++
		if e.Correct {
			ts.Correct++
		}
	}

	out := make([]TopicStats, 0, len(byTopic))
	for _, ts := range byTopic {
		out = append(out, *ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out, nil
}

func (r *eventRepo) RecentAdaptations(ctx context.Context, userID string, opts QueryOpts) ([]AdaptationEventData, error) {
	query := r.client.AdaptationEvent.Query().
		Where(adaptationevent.UserID(userID)).
		Order(ent.Desc(adaptationevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(adaptationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(adaptationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(adaptationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(adaptationevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query adaptation events: %w", err)
	}

	out := make([]AdaptationEventData, 0, len(events))
	for _, e := range events {
		out = append(out, AdaptationEventData{
			SessionID: e.SessionID,
			UserID:    e.UserID,
			Trigger:   e.Trigger,
			Source:    e.Source,
			Field:     e.Field,
			FromValue: e.FromValue,
			ToValue:   e.ToValue,
			Reasoning: e.Reasoning,
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsage)
	totalLatency := make(map[string]int64)
	for _, e := range events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &LLMUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
		}
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		totalLatency[e.Purpose] += e.LatencyMs
		if !e.Success {
			u.Failures++
		}
	}

	out := make([]LLMUsage, 0, len(byPurpose))
	for _, u := range byPurpose {
		if u.Requests > 0 {
			u.AvgLatencyMs = totalLatency[u.Purpose] / int64(u.Requests)
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byModel := make(map[string]*ModelUsage)
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &ModelUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]ModelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, llmEventRecord(e))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request event: %w", err)
	}
	rec := llmEventRecord(e)
	return &rec, nil
}

func llmEventRecord(e *ent.LLMRequestEvent) LLMEventRecord {
	return LLMEventRecord{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
