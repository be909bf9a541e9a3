package model

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// DocumentChunk rows live in a table created by raw SQL at store init, so
// the vector dimension can come from configuration instead of a struct tag.
type DocumentChunk struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Text          string          `gorm:"type:text"`
	Embedding     pgvector.Vector `gorm:"type:vector"`
	FileId        string          `gorm:"index"`
	FileName      string
	FileUrl       string
	CourseId      string `gorm:"index"`
	ChunkOrder    int
	IngestionDate string
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
