package model

import (
	"time"

	"github.com/google/uuid"
)

type IngestionLog struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FileId     string    `gorm:"index"`
	FileName   string
	CourseId   string
	Success    bool
	Message    string
	ChunkCount int
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (IngestionLog) TableName() string {
	return "ingestion_logs"
}
