package retrieval

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Chunk is one embedded slice of a document, in document order.
type Chunk struct {
	Index      int
	Text       string
	PageNumber int
	Embedding  []float32
}

// Document groups the chunks the index searches over.
type Document struct {
	Id     uuid.UUID
	Type   string
	Chunks []Chunk
}

// Match is a single retrieval hit, ranked by Similarity.
type Match struct {
	DocumentId   uuid.UUID
	DocumentType string
	ChunkIndex   int
	Text         string
	Similarity   float64
	PageNumber   int
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Zero-magnitude vectors and length mismatches score 0 instead of failing:
// a zero or foreign-dimension vector simply never ranks.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// FindTopK scores every chunk of every document against the query vector
// and returns the k best matches, highest similarity first. The sort is
// stable: equal scores keep document order, then chunk order.
func FindTopK(queryVector []float32, documents []Document, k int) []Match {
	var matches []Match
	for _, doc := range documents {
		for _, chunk := range doc.Chunks {
			matches = append(matches, Match{
				DocumentId:   doc.Id,
				DocumentType: doc.Type,
				ChunkIndex:   chunk.Index,
				Text:         chunk.Text,
				Similarity:   CosineSimilarity(queryVector, chunk.Embedding),
				PageNumber:   chunk.PageNumber,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
