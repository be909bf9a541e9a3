package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ai-course-assistant-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	raw := "line  one   here\n\n\nline two\n \nline three  "
	assert.Equal(t, "line one here\nline two\nline three", Normalize(raw))
}

func TestLoadLocalFiles(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(good, []byte("some   course  text\n\n\nmore text"), 0o644))

	empty := filepath.Join(dir, "empty.md")
	require.NoError(t, os.WriteFile(empty, []byte("   \n  "), 0o644))

	binary := filepath.Join(dir, "slides.pptx")
	require.NoError(t, os.WriteFile(binary, []byte{0x50, 0x4b}, 0o644))

	e := NewExtractor(logger.NewNopLogger())
	results := e.Load(context.Background(), []string{good, empty, binary, filepath.Join(dir, "missing.txt")})

	require.Len(t, results, 4)

	assert.True(t, results[0].Success)
	assert.Equal(t, "is successfully uploaded", results[0].Message)
	assert.Equal(t, "some course text\nmore text", results[0].Content)

	assert.False(t, results[1].Success)
	assert.Equal(t, "is empty", results[1].Message)

	assert.False(t, results[2].Success)
	assert.Equal(t, "has unsupported extension", results[2].Message)

	assert.False(t, results[3].Success)
	assert.Equal(t, "has invalid URL", results[3].Message)
	assert.Equal(t, 3, results[3].Index)
}

func TestLoadHTTPSourceDownloadsBodyOnce(t *testing.T) {
	var heads, gets int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			heads++
		case http.MethodGet:
			gets++
			w.Write([]byte("remote course text"))
		}
	}))
	defer srv.Close()

	e := NewExtractor(logger.NewNopLogger())
	results := e.Load(context.Background(), []string{srv.URL + "/notes.txt"})

	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, "remote course text", results[0].Content)
	assert.Equal(t, 1, heads, "validation uses HEAD")
	assert.Equal(t, 1, gets, "body fetched exactly once")
}
