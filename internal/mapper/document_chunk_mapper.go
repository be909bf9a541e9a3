package mapper

import (
	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type DocumentChunkMapper struct{}

func NewDocumentChunkMapper() *DocumentChunkMapper {
	return &DocumentChunkMapper{}
}

func (m *DocumentChunkMapper) ToEntity(c *model.DocumentChunk) *entity.Chunk {
	if c == nil {
		return nil
	}

	return &entity.Chunk{
		Id:        c.Id,
		Text:      c.Text,
		Embedding: c.Embedding.Slice(),
		Metadata: entity.ChunkMetadata{
			FileId:        c.FileId,
			FileName:      c.FileName,
			FileUrl:       c.FileUrl,
			CourseId:      c.CourseId,
			ChunkOrder:    c.ChunkOrder,
			IngestionDate: c.IngestionDate,
		},
	}
}

func (m *DocumentChunkMapper) ToModel(c *entity.Chunk) *model.DocumentChunk {
	if c == nil {
		return nil
	}

	return &model.DocumentChunk{
		Id:            c.Id,
		Text:          c.Text,
		Embedding:     pgvector.NewVector(c.Embedding),
		FileId:        c.Metadata.FileId,
		FileName:      c.Metadata.FileName,
		FileUrl:       c.Metadata.FileUrl,
		CourseId:      c.Metadata.CourseId,
		ChunkOrder:    c.Metadata.ChunkOrder,
		IngestionDate: c.Metadata.IngestionDate,
	}
}
