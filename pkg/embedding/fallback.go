package embedding

import "math"

// FallbackVector computes a deterministic embedding for text without any
// remote call. Each character code, divided by 1000, is accumulated into
// slot (position mod dim), and the result is L2-normalized. Identical text
// always yields a bit-identical vector; empty text yields the zero vector.
func FallbackVector(text string, dim int) []float32 {
	vec := make([]float32, dim)
	for i, r := range []rune(text) {
		vec[i%dim] += float32(r) / 1000
	}
	return normalizeVector(vec)
}

// normalizeVector normalizes a vector to unit length (magnitude = 1)
// This is REQUIRED for accurate cosine similarity calculation
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	// Avoid division by zero
	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
