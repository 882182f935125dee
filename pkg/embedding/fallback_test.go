package embedding

import (
	"math"
	"testing"
)

func TestFallbackVectorDeterministic(t *testing.T) {
	a := FallbackVector("senior golang engineer", 1536)
	b := FallbackVector("senior golang engineer", 1536)

	if len(a) != 1536 {
		t.Fatalf("got dimension %d, want 1536", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at slot %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFallbackVectorNormalized(t *testing.T) {
	vec := FallbackVector("some resume text to embed", 1536)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)

	if math.Abs(norm-1) > 1e-5 {
		t.Errorf("got norm %v, want 1", norm)
	}
}

func TestFallbackVectorEmptyText(t *testing.T) {
	vec := FallbackVector("", 1536)

	if len(vec) != 1536 {
		t.Fatalf("got dimension %d, want 1536", len(vec))
	}
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("slot %d is %v, want zero vector", i, v)
		}
	}
}

func TestFallbackVectorWrapsAroundDimension(t *testing.T) {
	// 5 characters into a 3-slot vector: positions 3 and 4 wrap to 0 and 1.
	vec := FallbackVector("aaaaa", 3)

	if vec[0] <= vec[2] || vec[1] <= vec[2] {
		t.Errorf("expected wrapped slots to accumulate more: %v", vec)
	}
}

func TestFallbackVectorDistinctTexts(t *testing.T) {
	a := FallbackVector("first text", 64)
	b := FallbackVector("second text", 64)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct texts produced identical vectors")
	}
}
