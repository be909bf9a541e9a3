package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_ANSWERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published by the assistant.
const (
	TypeChatAnswered    = "CHAT_ANSWERED"
	TypeFileIngested    = "FILE_INGESTED"
	TypeIngestionFailed = "INGESTION_FAILED"
)

// NewChatAnswered reports one completed question/answer exchange.
func NewChatAnswered(userId, chatId, question string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeChatAnswered,
		Data: map[string]interface{}{
			"user_id":     userId,
			"chat_id":     chatId,
			"question":    question,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewFileIngested reports a file whose chunks were all written.
func NewFileIngested(fileId, fileName, courseId string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeFileIngested,
		Data: map[string]interface{}{
			"file_id":     fileId,
			"file_name":   fileName,
			"course_id":   courseId,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewIngestionFailed reports a file that produced no stored chunks, or a
// batch write that was skipped.
func NewIngestionFailed(fileId, fileName, courseId, reason string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeIngestionFailed,
		Data: map[string]interface{}{
			"file_id":     fileId,
			"file_name":   fileName,
			"course_id":   courseId,
			"reason":      reason,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}
