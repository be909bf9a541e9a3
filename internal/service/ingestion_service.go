package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-course-assistant-be/internal/config"
	"ai-course-assistant-be/internal/dto"
	"ai-course-assistant-be/internal/entity"
	"ai-course-assistant-be/internal/pkg/logger"
	"ai-course-assistant-be/internal/repository/contract"
	"ai-course-assistant-be/pkg/embedding"
	"ai-course-assistant-be/pkg/extract"
	"ai-course-assistant-be/pkg/utils"
)

// ContentExtractor pulls raw text out of uploaded sources.
type ContentExtractor interface {
	Load(ctx context.Context, fileUrls []string) []extract.Result
}

type IIngestionService interface {
	Upload(ctx context.Context, req *dto.UploadFilesRequest) (*dto.UploadFilesResponse, error)
}

type ingestionService struct {
	cfg       *config.Config
	extractor ContentExtractor
	embedder  embedding.Provider
	chunkRepo contract.ChunkRepository
	publisher IPublisherService
	log       logger.ILogger
}

func NewIngestionService(
	cfg *config.Config,
	extractor ContentExtractor,
	embedder embedding.Provider,
	chunkRepo contract.ChunkRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		cfg:       cfg,
		extractor: extractor,
		embedder:  embedder,
		chunkRepo: chunkRepo,
		publisher: publisher,
		log:       log,
	}
}

// Upload extracts, splits, embeds and stores the given files. Vector store
// writes go out in fixed-size batches; a failed batch is logged and skipped,
// the remaining batches are still attempted. There is no cross-batch
// transactionality. The response carries the full per-file and per-batch
// outcome so callers do not need the logs to see what happened.
func (s *ingestionService) Upload(ctx context.Context, req *dto.UploadFilesRequest) (*dto.UploadFilesResponse, error) {
	fileUrls := make([]string, len(req.Files))
	for i, f := range req.Files {
		fileUrls[i] = f.FileUrl
	}

	extracted := s.extractor.Load(ctx, fileUrls)

	outcomes := make([]dto.FileOutcome, len(req.Files))
	var documents []string
	var metadatas []utils.ChunkMetadata

	for i, res := range extracted {
		file := req.Files[res.Index]
		outcomes[i] = dto.FileOutcome{
			FileId:   file.FileId,
			FileName: file.FileName,
			CourseId: file.CourseId,
			Success:  res.Success,
			Message:  fmt.Sprintf("File %s %s", file.FileName, res.Message),
		}
		if !res.Success {
			continue
		}
		documents = append(documents, res.Content)
		metadatas = append(metadatas, utils.ChunkMetadata{
			FileId:   file.FileId,
			FileName: file.FileName,
			FileUrl:  file.FileUrl,
			CourseId: file.CourseId,
		})
	}

	chunks := utils.SplitDocuments(documents, metadatas, s.cfg.Rag.ChunkSize, s.cfg.Rag.ChunkOverlap)

	chunkCountByFile := make(map[string]int)
	for _, chunk := range chunks {
		chunkCountByFile[chunk.Metadata.FileId]++
	}
	for i := range outcomes {
		outcomes[i].ChunkCount = chunkCountByFile[outcomes[i].FileId]
	}

	response := &dto.UploadFilesResponse{Files: outcomes}

	if len(chunks) == 0 {
		s.publishAudits(ctx, response)
		return response, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	vectors, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		s.log.Error("ingestion", "failed to embed documents", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("embed documents: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: %d vectors for %d chunks", len(vectors), len(chunks))
	}

	entities := make([]*entity.Chunk, len(chunks))
	for i, chunk := range chunks {
		entities[i] = &entity.Chunk{
			Text:      chunk.Text,
			Embedding: vectors[i],
			Metadata: entity.ChunkMetadata{
				FileId:     chunk.Metadata.FileId,
				FileName:   chunk.Metadata.FileName,
				FileUrl:    chunk.Metadata.FileUrl,
				CourseId:   chunk.Metadata.CourseId,
				ChunkOrder: chunk.ChunkOrder,
			},
		}
	}

	savedByFile := make(map[string]int)
	batchSize := s.cfg.Rag.BatchSize
	if batchSize <= 0 {
		batchSize = 5
	}

	for start := 0; start < len(entities); start += batchSize {
		end := start + batchSize
		if end > len(entities) {
			end = len(entities)
		}
		batch := entities[start:end]
		batchIndex := start/batchSize + 1

		outcome := dto.BatchOutcome{BatchIndex: batchIndex, ChunkCount: len(batch)}
		if err := s.chunkRepo.SaveChunks(ctx, batch); err != nil {
			outcome.Error = err.Error()
			response.ChunksFailed += len(batch)
			s.log.Error("ingestion", "failed to save batch, skipping", map[string]interface{}{
				"batch": batchIndex,
				"error": err.Error(),
			})
		} else {
			outcome.Success = true
			response.ChunksSaved += len(batch)
			for _, e := range batch {
				savedByFile[e.Metadata.FileId]++
			}
			s.log.Info("ingestion", "batch saved", map[string]interface{}{
				"batch":  batchIndex,
				"chunks": len(batch),
			})
		}
		response.Batches = append(response.Batches, outcome)
	}

	for i := range response.Files {
		response.Files[i].ChunksSaved = savedByFile[response.Files[i].FileId]
	}

	s.publishAudits(ctx, response)
	return response, nil
}

// publishAudits emits one audit message per file. Delivery is best effort;
// the upload result does not depend on it.
func (s *ingestionService) publishAudits(ctx context.Context, response *dto.UploadFilesResponse) {
	if s.publisher == nil {
		return
	}
	for _, file := range response.Files {
		msg := dto.IngestionAuditMessage{
			FileId:     file.FileId,
			FileName:   file.FileName,
			CourseId:   file.CourseId,
			Success:    file.Success && (file.ChunkCount == 0 || file.ChunksSaved > 0),
			Message:    file.Message,
			ChunkCount: file.ChunksSaved,
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		if err := s.publisher.Publish(ctx, payload); err != nil {
			s.log.Warn("ingestion", "failed to publish audit message", map[string]interface{}{
				"file_id": file.FileId,
				"error":   err.Error(),
			})
		}
	}
}
