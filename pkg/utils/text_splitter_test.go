package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortInput(t *testing.T) {
	assert.Nil(t, SplitText("", 100, 10))
	assert.Equal(t, []string{"short text"}, SplitText("short text", 100, 10))
}

func TestSplitTextRespectsChunkSize(t *testing.T) {
	text := strings.Repeat("sentence one here. ", 50)
	chunks := SplitText(text, 100, 20)

	require.NotEmpty(t, chunks)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 100, "chunk %d too long", i)
		assert.NotEmpty(t, chunk)
	}
}

func TestSplitTextPrefersParagraphBoundaries(t *testing.T) {
	text := "first paragraph body\n\nsecond paragraph body\n\nthird paragraph body"
	chunks := SplitText(text, 25, 0)

	for _, chunk := range chunks {
		assert.NotContains(t, chunk, "\n\n", "chunks should break at paragraph boundaries")
	}
}

func TestSplitTextHardCutWithoutBoundaries(t *testing.T) {
	text := strings.Repeat("x", 250)
	chunks := SplitText(text, 100, 0)

	require.Len(t, chunks, 3)
	assert.Equal(t, 100, len(chunks[0]))
	assert.Equal(t, 100, len(chunks[1]))
	assert.Equal(t, 50, len(chunks[2]))
}

func TestSplitDocumentsChunkOrderPerFile(t *testing.T) {
	// Two documents of different lengths, so their chunks interleave
	// differently than a single global counter would expect.
	long := strings.Repeat("long document words here ", 20)
	short := "tiny document"

	chunks := SplitDocuments(
		[]string{long, short},
		[]ChunkMetadata{
			{FileId: "file-long", FileName: "long.txt"},
			{FileId: "file-short", FileName: "short.txt"},
		},
		50, 0,
	)
	require.NotEmpty(t, chunks)

	ordersByFile := make(map[string][]int)
	for _, chunk := range chunks {
		ordersByFile[chunk.Metadata.FileId] = append(ordersByFile[chunk.Metadata.FileId], chunk.ChunkOrder)
	}
	require.Len(t, ordersByFile, 2)

	for fileId, orders := range ordersByFile {
		seen := make(map[int]bool)
		for i, order := range orders {
			assert.Equal(t, i+1, order, "%s orders must be 1-based and sequential", fileId)
			assert.False(t, seen[order], "%s has duplicate order %d", fileId, order)
			seen[order] = true
		}
	}
	assert.Equal(t, []int{1}, ordersByFile["file-short"])
}

func TestSplitDocumentsKeepsMetadata(t *testing.T) {
	chunks := SplitDocuments(
		[]string{"some content"},
		[]ChunkMetadata{{FileId: "f1", FileName: "a.txt", FileUrl: "http://x/a.txt", CourseId: "c9"}},
		100, 0,
	)

	require.Len(t, chunks, 1)
	assert.Equal(t, "f1", chunks[0].Metadata.FileId)
	assert.Equal(t, "a.txt", chunks[0].Metadata.FileName)
	assert.Equal(t, "http://x/a.txt", chunks[0].Metadata.FileUrl)
	assert.Equal(t, "c9", chunks[0].Metadata.CourseId)
}
