package entity

import "github.com/google/uuid"

// ChunkMetadata is the origin payload stored next to every embedded chunk.
// ChunkOrder is a 1-based sequence number unique within FileId.
type ChunkMetadata struct {
	FileId        string `json:"file_id"`
	FileName      string `json:"file_name"`
	FileUrl       string `json:"file_url"`
	CourseId      string `json:"course_id"`
	ChunkOrder    int    `json:"chunk_order"`
	IngestionDate string `json:"ingestion_date,omitempty"`
}

// Chunk is an embedded slice of a source document. Immutable once stored.
type Chunk struct {
	Id        uuid.UUID
	Text      string
	Embedding []float32
	Metadata  ChunkMetadata
}

// SimilarChunk is the ephemeral result of a similarity query. Score is a
// cosine similarity in [0,1]. A copy is retained inside a ChatTurn for audit.
type SimilarChunk struct {
	Text     string        `json:"text"`
	Metadata ChunkMetadata `json:"metadata"`
	Score    float64       `json:"score"`
}
