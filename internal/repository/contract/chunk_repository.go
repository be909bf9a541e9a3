package contract

import (
	"context"

	"ai-course-assistant-be/internal/entity"
)

// ChunkRepository is the vector store for embedded document chunks.
type ChunkRepository interface {
	// Init creates the chunk table if a table with that name does not exist
	// yet. Idempotent; existence is checked by name only.
	Init(ctx context.Context) error

	// SaveChunks assigns a fresh id to every chunk, stamps the ingestion
	// date and upserts the batch. Callers batch; a failed batch is theirs
	// to handle.
	SaveChunks(ctx context.Context, chunks []*entity.Chunk) error

	// SearchSimilar returns chunks with cosine similarity >= scoreThreshold,
	// sorted by descending score.
	SearchSimilar(ctx context.Context, queryVector []float32, limit int, scoreThreshold float64) ([]*entity.SimilarChunk, error)
}
