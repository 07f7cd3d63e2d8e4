// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/adept/ent/adaptationevent"
	"github.com/abhisek/adept/ent/answerevent"
	"github.com/abhisek/adept/ent/llmrequestevent"
	"github.com/abhisek/adept/ent/profilesnapshot"
	"github.com/abhisek/adept/ent/schema"
	"github.com/abhisek/adept/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescTimestamp is the schema descriptor for timestamp field.
	adaptationeventDescTimestamp := adaptationeventMixinFields0[1].Descriptor()
	// adaptationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adaptationevent.DefaultTimestamp = adaptationeventDescTimestamp.Default.(func() time.Time)
	// adaptationeventDescSessionID is the schema descriptor for session_id field.
	adaptationeventDescSessionID := adaptationeventFields[0].Descriptor()
	// adaptationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	adaptationevent.SessionIDValidator = adaptationeventDescSessionID.Validators[0].(func(string) error)
	// adaptationeventDescUserID is the schema descriptor for user_id field.
	adaptationeventDescUserID := adaptationeventFields[1].Descriptor()
	// adaptationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	adaptationevent.UserIDValidator = adaptationeventDescUserID.Validators[0].(func(string) error)
	// adaptationeventDescTrigger is the schema descriptor for trigger field.
	adaptationeventDescTrigger := adaptationeventFields[2].Descriptor()
	// adaptationevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	adaptationevent.TriggerValidator = adaptationeventDescTrigger.Validators[0].(func(string) error)
	// adaptationeventDescSource is the schema descriptor for source field.
	adaptationeventDescSource := adaptationeventFields[3].Descriptor()
	// adaptationevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	adaptationevent.SourceValidator = adaptationeventDescSource.Validators[0].(func(string) error)
	// adaptationeventDescField is the schema descriptor for field field.
	adaptationeventDescField := adaptationeventFields[4].Descriptor()
	// adaptationevent.FieldValidator is a validator for the "field" field. It is called by the builders before save.
	adaptationevent.FieldValidator = adaptationeventDescField.Validators[0].(func(string) error)
	// adaptationeventDescFromValue is the schema descriptor for from_value field.
	adaptationeventDescFromValue := adaptationeventFields[5].Descriptor()
	// adaptationevent.FromValueValidator is a validator for the "from_value" field. It is called by the builders before save.
	adaptationevent.FromValueValidator = adaptationeventDescFromValue.Validators[0].(func(string) error)
	// adaptationeventDescToValue is the schema descriptor for to_value field.
	adaptationeventDescToValue := adaptationeventFields[6].Descriptor()
	// adaptationevent.ToValueValidator is a validator for the "to_value" field. It is called by the builders before save.
	adaptationevent.ToValueValidator = adaptationeventDescToValue.Validators[0].(func(string) error)
	// adaptationeventDescReasoning is the schema descriptor for reasoning field.
	adaptationeventDescReasoning := adaptationeventFields[7].Descriptor()
	// adaptationevent.DefaultReasoning holds the default value on creation for the reasoning field.
	adaptationevent.DefaultReasoning = adaptationeventDescReasoning.Default.(string)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[1].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[3].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescConcept is the schema descriptor for concept field.
	answereventDescConcept := answereventFields[4].Descriptor()
	// answerevent.DefaultConcept holds the default value on creation for the concept field.
	answerevent.DefaultConcept = answereventDescConcept.Default.(string)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[5].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescTimeSecs is the schema descriptor for time_secs field.
	answereventDescTimeSecs := answereventFields[8].Descriptor()
	// answerevent.DefaultTimeSecs holds the default value on creation for the time_secs field.
	answerevent.DefaultTimeSecs = answereventDescTimeSecs.Default.(float64)
	// answereventDescConfidenceRating is the schema descriptor for confidence_rating field.
	answereventDescConfidenceRating := answereventFields[9].Descriptor()
	// answerevent.DefaultConfidenceRating holds the default value on creation for the confidence_rating field.
	answerevent.DefaultConfidenceRating = answereventDescConfidenceRating.Default.(int)
	// answereventDescStyleVoted is the schema descriptor for style_voted field.
	answereventDescStyleVoted := answereventFields[10].Descriptor()
	// answerevent.DefaultStyleVoted holds the default value on creation for the style_voted field.
	answerevent.DefaultStyleVoted = answereventDescStyleVoted.Default.(string)
	// answereventDescDepthVoted is the schema descriptor for depth_voted field.
	answereventDescDepthVoted := answereventFields[11].Descriptor()
	// answerevent.DefaultDepthVoted holds the default value on creation for the depth_voted field.
	answerevent.DefaultDepthVoted = answereventDescDepthVoted.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profilesnapshotFields := schema.ProfileSnapshot{}.Fields()
	_ = profilesnapshotFields
	// profilesnapshotDescUserID is the schema descriptor for user_id field.
	profilesnapshotDescUserID := profilesnapshotFields[0].Descriptor()
	// profilesnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profilesnapshot.UserIDValidator = profilesnapshotDescUserID.Validators[0].(func(string) error)
	// profilesnapshotDescTimestamp is the schema descriptor for timestamp field.
	profilesnapshotDescTimestamp := profilesnapshotFields[2].Descriptor()
	// profilesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	profilesnapshot.DefaultTimestamp = profilesnapshotDescTimestamp.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPhase is the schema descriptor for phase field.
	sessioneventDescPhase := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultPhase holds the default value on creation for the phase field.
	sessionevent.DefaultPhase = sessioneventDescPhase.Default.(string)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTopic holds the default value on creation for the topic field.
	sessionevent.DefaultTopic = sessioneventDescTopic.Default.(string)
	// sessioneventDescTotalInteractions is the schema descriptor for total_interactions field.
	sessioneventDescTotalInteractions := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultTotalInteractions holds the default value on creation for the total_interactions field.
	sessionevent.DefaultTotalInteractions = sessioneventDescTotalInteractions.Default.(int)
	// sessioneventDescAdaptationCount is the schema descriptor for adaptation_count field.
	sessioneventDescAdaptationCount := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultAdaptationCount holds the default value on creation for the adaptation_count field.
	sessionevent.DefaultAdaptationCount = sessioneventDescAdaptationCount.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
