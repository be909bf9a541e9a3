package entity

import (
	"time"

	"github.com/google/uuid"
)

// IngestionLog is one audited per-file ingestion outcome.
type IngestionLog struct {
	Id         uuid.UUID
	FileId     string
	FileName   string
	CourseId   string
	Success    bool
	Message    string
	ChunkCount int
	CreatedAt  time.Time
}
