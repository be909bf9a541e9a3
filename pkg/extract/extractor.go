package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"ai-course-assistant-be/internal/pkg/logger"
)

var (
	spaceRuns = regexp.MustCompile(` +`)
	blankRuns = regexp.MustCompile(`\n\s*\n`)
)

// Result is the per-file outcome of an extraction pass. Failures carry a
// short human message; successful entries carry the normalized text.
type Result struct {
	Index   int    `json:"index"`
	FileUrl string `json:"file_url"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Content string `json:"content,omitempty"`
}

// Extractor pulls raw text from plain-text sources, either fetched over
// HTTP(S) or read from a local path. Binary formats are reported as
// unsupported rather than failing the whole pass.
type Extractor struct {
	client *http.Client
	log    logger.ILogger
}

func NewExtractor(log logger.ILogger) *Extractor {
	return &Extractor{
		client: &http.Client{Timeout: 60 * time.Second},
		log:    log,
	}
}

var textExtensions = map[string]bool{
	"txt":  true,
	"md":   true,
	"json": true,
}

// Load extracts every source independently. One bad file never aborts the
// others; each gets its own Result in input order.
func (e *Extractor) Load(ctx context.Context, fileUrls []string) []Result {
	results := make([]Result, 0, len(fileUrls))

	for index, fileUrl := range fileUrls {
		result := Result{Index: index, FileUrl: fileUrl}

		if !e.isValidSource(ctx, fileUrl) {
			result.Message = "has invalid URL"
			e.log.Info("extract", "file has invalid URL", map[string]interface{}{"file_url": fileUrl})
			results = append(results, result)
			continue
		}

		extension := extensionOf(fileUrl)
		if !textExtensions[extension] {
			result.Message = "has unsupported extension"
			e.log.Info("extract", "file has unsupported extension", map[string]interface{}{
				"file_url":  fileUrl,
				"extension": extension,
			})
			results = append(results, result)
			continue
		}

		content, err := e.readSource(ctx, fileUrl)
		if err != nil {
			result.Message = fmt.Sprintf("could not be read: %v", err)
			e.log.Error("extract", "failed to read file", map[string]interface{}{
				"file_url": fileUrl,
				"error":    err.Error(),
			})
			results = append(results, result)
			continue
		}

		if strings.TrimSpace(content) == "" {
			result.Message = "is empty"
			e.log.Info("extract", "file is empty", map[string]interface{}{"file_url": fileUrl})
			results = append(results, result)
			continue
		}

		result.Success = true
		result.Message = "is successfully uploaded"
		result.Content = Normalize(content)
		results = append(results, result)
	}

	return results
}

// Normalize collapses runs of spaces and blank lines so the splitter sees
// uniform whitespace.
func Normalize(raw string) string {
	processed := spaceRuns.ReplaceAllString(raw, " ")
	processed = blankRuns.ReplaceAllString(processed, "\n")
	return strings.TrimSpace(processed)
}

func (e *Extractor) isValidSource(ctx context.Context, fileUrl string) bool {
	parsed, err := url.Parse(fileUrl)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		// HEAD is enough to validate; the body is only fetched once,
		// in readSource.
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, fileUrl, nil)
		if err != nil {
			return false
		}
		resp, err := e.client.Do(req)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}

	info, err := os.Stat(fileUrl)
	return err == nil && info.Mode().IsRegular()
}

func (e *Extractor) readSource(ctx context.Context, fileUrl string) (string, error) {
	parsed, err := url.Parse(fileUrl)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileUrl, nil)
		if err != nil {
			return "", err
		}
		resp, err := e.client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	body, err := os.ReadFile(fileUrl)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func extensionOf(fileUrl string) string {
	trimmed := fileUrl
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[len(parts)-1])
}
