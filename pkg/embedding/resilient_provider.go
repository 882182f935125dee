package embedding

import "context"

// ResilientProvider wraps a primary Provider and substitutes the
// deterministic fallback on any primary failure. It never returns an
// error: callers observe degradation through Result.Degraded instead.
type ResilientProvider struct {
	primary Provider
	dim     int
}

func NewResilientProvider(primary Provider, dim int) Provider {
	return &ResilientProvider{
		primary: primary,
		dim:     dim,
	}
}

func (p *ResilientProvider) Generate(ctx context.Context, text string) (*Result, error) {
	results, _ := p.GenerateBatch(ctx, []string{text})
	return results[0], nil
}

// GenerateBatch falls back for the whole batch, never partially: a mixed
// vector space would make similarity scores between chunks meaningless.
func (p *ResilientProvider) GenerateBatch(ctx context.Context, texts []string) ([]*Result, error) {
	results, err := p.primary.GenerateBatch(ctx, texts)
	if err == nil && p.dimensionsMatch(results) {
		return results, nil
	}

	fallback := make([]*Result, len(texts))
	for i, text := range texts {
		fallback[i] = &Result{
			Values:   FallbackVector(text, p.dim),
			Degraded: true,
		}
	}
	return fallback, nil
}

func (p *ResilientProvider) dimensionsMatch(results []*Result) bool {
	for _, r := range results {
		if r == nil || len(r.Values) != p.dim {
			return false
		}
	}
	return true
}
