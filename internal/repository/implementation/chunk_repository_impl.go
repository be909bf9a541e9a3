package implementation

import (
	"context"
	"fmt"
	"time"

	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/mapper"
	"ai-course-assistant-be/internal/model"
	"ai-course-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChunkRepositoryImpl struct {
	db        *gorm.DB
	dimension int
	mapper    *mapper.DocumentChunkMapper
}

func NewChunkRepository(db *gorm.DB, dimension int) contract.ChunkRepository {
	return &ChunkRepositoryImpl{
		db:        db,
		dimension: dimension,
		mapper:    mapper.NewDocumentChunkMapper(),
	}
}

// Init creates the vector extension and the chunk table. The table is created
// by raw SQL so the vector dimension comes from configuration; existence is
// checked by name only, so schema drift goes undetected on purpose.
func (r *ChunkRepositoryImpl) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("create vector extension: %w", err)
	}

	if r.db.WithContext(ctx).Migrator().HasTable(&model.DocumentChunk{}) {
		return nil
	}

	createTable := fmt.Sprintf(`CREATE TABLE document_chunks (
		id uuid PRIMARY KEY,
		text text,
		embedding vector(%d),
		file_id text,
		file_name text,
		file_url text,
		course_id text,
		chunk_order integer,
		ingestion_date text
	)`, r.dimension)
	if err := r.db.WithContext(ctx).Exec(createTable).Error; err != nil {
		return fmt.Errorf("create chunk table: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_document_chunks_file_id ON document_chunks (file_id)",
		"CREATE INDEX IF NOT EXISTS idx_document_chunks_course_id ON document_chunks (course_id)",
	}
	for _, stmt := range indexes {
		if err := r.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("create chunk index: %w", err)
		}
	}

	return nil
}

func (r *ChunkRepositoryImpl) SaveChunks(ctx context.Context, chunks []*entity.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	ingestionDate := time.Now().Format("2006-01-02")

	models := make([]*model.DocumentChunk, len(chunks))
	for i, chunk := range chunks {
		chunk.Id = uuid.New()
		chunk.Metadata.IngestionDate = ingestionDate
		models[i] = r.mapper.ToModel(chunk)
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(models).Error
}

func (r *ChunkRepositoryImpl) SearchSimilar(ctx context.Context, queryVector []float32, limit int, scoreThreshold float64) ([]*entity.SimilarChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	// pgvector cosine distance is 1 - cosine_similarity
	type result struct {
		model.DocumentChunk
		Score float64
	}
	var results []result

	vec := pgvector.NewVector(queryVector)

	err := r.db.WithContext(ctx).
		Table("document_chunks").
		Select("document_chunks.*, 1 - (embedding <=> ?) as score", vec).
		Where("1 - (embedding <=> ?) >= ?", vec, scoreThreshold).
		Order("score DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	similar := make([]*entity.SimilarChunk, len(results))
	for i, res := range results {
		chunk := r.mapper.ToEntity(&res.DocumentChunk)
		similar[i] = &entity.SimilarChunk{
			Text:     chunk.Text,
			Metadata: chunk.Metadata,
			Score:    res.Score,
		}
	}
	return similar, nil
}
