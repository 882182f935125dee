package embedding

import "context"

// Result carries the embedding values together with a degradation flag.
// Degraded is true when the values came from the deterministic fallback
// instead of the remote provider.
type Result struct {
	Values   []float32
	Degraded bool
}

// Provider defines the interface for generating text embeddings
type Provider interface {
	Generate(ctx context.Context, text string) (*Result, error)
	GenerateBatch(ctx context.Context, texts []string) ([]*Result, error)
}
