package embedding

import "context"

// Provider converts text into fixed-length vectors. EmbedDocuments is
// order-preserving: one vector per input, in input order. Dimensionality is
// fixed by configuration; the store, not the gateway, detects mismatches.
type Provider interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}
