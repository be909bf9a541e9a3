package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ai-course-assistant-be/internal/config"
	"ai-course-assistant-be/internal/dto"
	"ai-course-assistant-be/internal/pkg/logger"
	"ai-course-assistant-be/pkg/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	results []extract.Result
}

func (s *stubExtractor) Load(ctx context.Context, fileUrls []string) []extract.Result {
	return s.results
}

type recordingPublisher struct {
	payloads [][]byte
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

// twelveWordText splits into exactly 12 single-word chunks at chunk size 8
// with zero overlap.
func twelveWordText() string {
	words := make([]string, 12)
	for i := range words {
		words[i] = fmt.Sprintf("word%04d", i)
	}
	return strings.Join(words, " ")
}

func ingestionTestConfig() *config.Config {
	return &config.Config{
		Rag: config.RagConfig{
			ChunkSize:    8,
			ChunkOverlap: 0,
			BatchSize:    5,
		},
	}
}

func TestUploadBatchesWrites(t *testing.T) {
	chunkRepo := &stubChunkRepo{}
	svc := NewIngestionService(
		ingestionTestConfig(),
		&stubExtractor{results: []extract.Result{
			{Index: 0, Success: true, Message: "is successfully uploaded", Content: twelveWordText()},
		}},
		&stubEmbedder{vector: []float32{0.5}},
		chunkRepo,
		nil,
		logger.NewNopLogger(),
	)

	resp, err := svc.Upload(context.Background(), &dto.UploadFilesRequest{Files: []dto.FileUpload{
		{FileId: "f1", FileName: "a.txt", FileUrl: "a.txt", CourseId: "c1"},
	}})

	require.NoError(t, err)
	require.Len(t, chunkRepo.saves, 3, "12 chunks at batch size 5 means 3 writes")
	assert.Len(t, chunkRepo.saves[0], 5)
	assert.Len(t, chunkRepo.saves[1], 5)
	assert.Len(t, chunkRepo.saves[2], 2)

	assert.Equal(t, 12, resp.ChunksSaved)
	assert.Equal(t, 0, resp.ChunksFailed)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, 12, resp.Files[0].ChunkCount)
	assert.Equal(t, 12, resp.Files[0].ChunksSaved)
}

func TestUploadSkipsFailedBatchAndContinues(t *testing.T) {
	chunkRepo := &stubChunkRepo{failOn: map[int]error{2: errors.New("write failed")}}
	svc := NewIngestionService(
		ingestionTestConfig(),
		&stubExtractor{results: []extract.Result{
			{Index: 0, Success: true, Message: "is successfully uploaded", Content: twelveWordText()},
		}},
		&stubEmbedder{vector: []float32{0.5}},
		chunkRepo,
		nil,
		logger.NewNopLogger(),
	)

	resp, err := svc.Upload(context.Background(), &dto.UploadFilesRequest{Files: []dto.FileUpload{
		{FileId: "f1", FileName: "a.txt", FileUrl: "a.txt", CourseId: "c1"},
	}})

	require.NoError(t, err)
	require.Len(t, chunkRepo.saves, 3, "first and third batches still attempted")

	assert.Equal(t, 7, resp.ChunksSaved)
	assert.Equal(t, 5, resp.ChunksFailed)

	require.Len(t, resp.Batches, 3)
	assert.True(t, resp.Batches[0].Success)
	assert.False(t, resp.Batches[1].Success)
	assert.Equal(t, "write failed", resp.Batches[1].Error)
	assert.True(t, resp.Batches[2].Success)
}

func TestUploadChunkOrderPerFile(t *testing.T) {
	chunkRepo := &stubChunkRepo{}
	svc := NewIngestionService(
		ingestionTestConfig(),
		&stubExtractor{results: []extract.Result{
			{Index: 0, Success: true, Message: "is successfully uploaded", Content: "aaa bbb ccc"},
			{Index: 1, Success: true, Message: "is successfully uploaded", Content: "xxx yyy"},
		}},
		&stubEmbedder{vector: []float32{0.5}},
		chunkRepo,
		nil,
		logger.NewNopLogger(),
	)

	_, err := svc.Upload(context.Background(), &dto.UploadFilesRequest{Files: []dto.FileUpload{
		{FileId: "f1", FileName: "a.txt", FileUrl: "a.txt", CourseId: "c1"},
		{FileId: "f2", FileName: "b.txt", FileUrl: "b.txt", CourseId: "c1"},
	}})
	require.NoError(t, err)

	ordersByFile := make(map[string][]int)
	for _, batch := range chunkRepo.saves {
		for _, chunk := range batch {
			ordersByFile[chunk.Metadata.FileId] = append(ordersByFile[chunk.Metadata.FileId], chunk.Metadata.ChunkOrder)
		}
	}

	for fileId, orders := range ordersByFile {
		seen := make(map[int]bool)
		for i, order := range orders {
			assert.Equal(t, i+1, order, "orders are 1-based and sequential for %s", fileId)
			assert.False(t, seen[order], "duplicate order %d for %s", order, fileId)
			seen[order] = true
		}
	}
}

func TestUploadReportsPerFileFailures(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewIngestionService(
		ingestionTestConfig(),
		&stubExtractor{results: []extract.Result{
			{Index: 0, Success: false, Message: "has unsupported extension"},
			{Index: 1, Success: true, Message: "is successfully uploaded", Content: "aaa bbb"},
		}},
		&stubEmbedder{vector: []float32{0.5}},
		&stubChunkRepo{},
		publisher,
		logger.NewNopLogger(),
	)

	resp, err := svc.Upload(context.Background(), &dto.UploadFilesRequest{Files: []dto.FileUpload{
		{FileId: "f1", FileName: "slides.pptx", FileUrl: "slides.pptx", CourseId: "c1"},
		{FileId: "f2", FileName: "b.txt", FileUrl: "b.txt", CourseId: "c1"},
	}})

	require.NoError(t, err)
	require.Len(t, resp.Files, 2)
	assert.False(t, resp.Files[0].Success)
	assert.Contains(t, resp.Files[0].Message, "slides.pptx has unsupported extension")
	assert.True(t, resp.Files[1].Success)

	require.Len(t, publisher.payloads, 2, "one audit message per file")
	var audit dto.IngestionAuditMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &audit))
	assert.Equal(t, "f1", audit.FileId)
	assert.False(t, audit.Success)
}

func TestUploadEmbeddingFailureAborts(t *testing.T) {
	svc := NewIngestionService(
		ingestionTestConfig(),
		&stubExtractor{results: []extract.Result{
			{Index: 0, Success: true, Message: "is successfully uploaded", Content: "aaa bbb"},
		}},
		&stubEmbedder{err: errors.New("embedding service down")},
		&stubChunkRepo{},
		nil,
		logger.NewNopLogger(),
	)

	_, err := svc.Upload(context.Background(), &dto.UploadFilesRequest{Files: []dto.FileUpload{
		{FileId: "f1", FileName: "a.txt", FileUrl: "a.txt", CourseId: "c1"},
	}})

	require.Error(t, err)
}
