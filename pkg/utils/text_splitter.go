package utils

import "strings"

var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// ChunkMetadata carries the origin of a chunk through the ingestion pipeline.
type ChunkMetadata struct {
	FileId   string
	FileName string
	FileUrl  string
	CourseId string
}

// Chunk is a bounded slice of a source document, before embedding.
// ChunkOrder is 1-based and unique within a FileId.
type Chunk struct {
	Text       string
	Metadata   ChunkMetadata
	ChunkOrder int
}

// SplitText splits a long string into chunks of at most 'chunkSize'
// characters with an 'overlap' between consecutive chunks. It seeks natural
// boundaries first (paragraph, line, word) and falls back to a hard character
// cut only when a fragment has no boundary to break at.
func SplitText(text string, chunkSize int, overlap int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= chunkSize {
		return []string{text}
	}
	return splitRecursive(text, chunkSize, overlap, defaultSeparators)
}

// SplitDocuments splits each document and pairs every chunk with the metadata
// of its origin, by position. The output interleaves documents in input
// order; ChunkOrder is re-derived afterwards per FileId, since a single pass
// over the output mixes chunks from multiple files.
func SplitDocuments(documents []string, metadatas []ChunkMetadata, chunkSize int, overlap int) []Chunk {
	var chunks []Chunk
	for i, doc := range documents {
		var meta ChunkMetadata
		if i < len(metadatas) {
			meta = metadatas[i]
		}
		for _, text := range SplitText(doc, chunkSize, overlap) {
			chunks = append(chunks, Chunk{Text: text, Metadata: meta})
		}
	}

	// 1-based order scoped to the originating file
	orderByFile := make(map[string]int)
	for i := range chunks {
		fileId := chunks[i].Metadata.FileId
		orderByFile[fileId]++
		chunks[i].ChunkOrder = orderByFile[fileId]
	}

	return chunks
}

func splitRecursive(text string, chunkSize int, overlap int, separators []string) []string {
	separator := separators[len(separators)-1]
	var remaining []string
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	if separator == "" {
		return splitRunes(text, chunkSize, overlap)
	}

	var pieces []string
	for _, part := range strings.Split(text, separator) {
		if part == "" {
			continue
		}
		if len(part) > chunkSize {
			pieces = append(pieces, splitRecursive(part, chunkSize, overlap, remaining)...)
		} else {
			pieces = append(pieces, part)
		}
	}

	return mergePieces(pieces, separator, chunkSize, overlap)
}

// mergePieces joins boundary fragments back into chunks of at most chunkSize,
// carrying a tail of up to 'overlap' characters into the next chunk.
func mergePieces(pieces []string, separator string, chunkSize int, overlap int) []string {
	var chunks []string
	var current []string
	currentLen := 0

	for _, piece := range pieces {
		pieceLen := len(piece) + len(separator)
		if currentLen+pieceLen > chunkSize && currentLen > 0 {
			chunks = append(chunks, strings.Join(current, separator))
			for len(current) > 0 && (currentLen > overlap || currentLen+pieceLen > chunkSize) {
				currentLen -= len(current[0]) + len(separator)
				current = current[1:]
			}
		}
		current = append(current, piece)
		currentLen += pieceLen
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, separator))
	}

	return chunks
}

// splitRunes is the hard-cut fallback for text without any boundary.
func splitRunes(text string, chunkSize int, overlap int) []string {
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize
	}

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
