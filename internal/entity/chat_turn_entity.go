package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one answered question tied to a user and chat session.
// Insert-only: never updated or deleted by this service.
type ChatTurn struct {
	Id            uuid.UUID
	UserId        string
	ChatId        string
	Question      string
	Answer        string
	SimilarChunks []SimilarChunk
	Timestamp     time.Time
}
