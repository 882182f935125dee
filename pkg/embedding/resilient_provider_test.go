package embedding

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	results []*Result
	err     error
}

func (s *stubProvider) Generate(ctx context.Context, text string) (*Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results[0], nil
}

func (s *stubProvider) GenerateBatch(ctx context.Context, texts []string) ([]*Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func TestResilientProviderPassesThrough(t *testing.T) {
	primary := &stubProvider{results: []*Result{
		{Values: make([]float32, 8)},
		{Values: make([]float32, 8)},
	}}
	p := NewResilientProvider(primary, 8)

	results, err := p.GenerateBatch(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range results {
		if r.Degraded {
			t.Errorf("result %d marked degraded on healthy primary", i)
		}
	}
}

func TestResilientProviderFallsBackOnError(t *testing.T) {
	primary := &stubProvider{err: errors.New("quota exceeded")}
	p := NewResilientProvider(primary, 16)

	results, err := p.GenerateBatch(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("fallback must absorb the error, got: %v", err)
	}
	for i, r := range results {
		if !r.Degraded {
			t.Errorf("result %d not marked degraded", i)
		}
		if len(r.Values) != 16 {
			t.Errorf("result %d has dimension %d, want 16", i, len(r.Values))
		}
	}
}

func TestResilientProviderFallsBackOnDimensionMismatch(t *testing.T) {
	// A remote vector of the wrong width would poison the similarity space.
	primary := &stubProvider{results: []*Result{
		{Values: make([]float32, 8)},
		{Values: make([]float32, 4)},
	}}
	p := NewResilientProvider(primary, 8)

	results, err := p.GenerateBatch(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Whole batch falls back, never partially.
	for i, r := range results {
		if !r.Degraded {
			t.Errorf("result %d not marked degraded", i)
		}
		if len(r.Values) != 8 {
			t.Errorf("result %d has dimension %d, want 8", i, len(r.Values))
		}
	}
}

func TestResilientProviderGenerateNeverErrors(t *testing.T) {
	primary := &stubProvider{err: errors.New("timeout")}
	p := NewResilientProvider(primary, 8)

	result, err := p.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Degraded {
		t.Error("result not marked degraded")
	}
}
