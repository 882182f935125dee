package embedding

import (
	"context"
	"testing"
	"time"
)

type countingProvider struct {
	stubProvider
	batchCalls int
}

func (c *countingProvider) GenerateBatch(ctx context.Context, texts []string) ([]*Result, error) {
	c.batchCalls++
	out := make([]*Result, len(texts))
	for i := range texts {
		out[i] = &Result{Values: FallbackVector(texts[i], 8)}
	}
	return out, nil
}

func (c *countingProvider) Generate(ctx context.Context, text string) (*Result, error) {
	results, err := c.GenerateBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

func TestCachedProviderMemoizesByText(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachedProvider(inner, time.Minute)

	ctx := context.Background()
	first, err := p.Generate(ctx, "repeated query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.Generate(ctx, "repeated query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.batchCalls != 1 {
		t.Errorf("inner called %d times, want 1", inner.batchCalls)
	}
	if first != second {
		t.Error("expected the cached result instance")
	}
}

func TestCachedProviderBatchFetchesOnlyMisses(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachedProvider(inner, time.Minute)
	ctx := context.Background()

	if _, err := p.Generate(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := p.GenerateBatch(ctx, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r == nil || len(r.Values) != 8 {
			t.Errorf("result %d malformed: %+v", i, r)
		}
	}
	// One call for "a", one batched call for "b" and "c".
	if inner.batchCalls != 2 {
		t.Errorf("inner called %d times, want 2", inner.batchCalls)
	}
}

func TestCachedProviderSkipsDegradedResults(t *testing.T) {
	degraded := &stubProvider{results: []*Result{{Values: make([]float32, 8), Degraded: true}}}
	p := NewCachedProvider(degraded, time.Minute)
	ctx := context.Background()

	if _, err := p.Generate(ctx, "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recovered provider must be consulted again for the same text.
	recovered := &countingProvider{}
	p2 := p.(*CachedProvider)
	p2.inner = recovered
	if _, err := p2.Generate(ctx, "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recovered.batchCalls != 1 {
		t.Errorf("degraded result was cached; recovered provider not consulted")
	}
}
