package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is one uploaded resume or job description. A user holds at most
// one document per type; uploading again replaces the previous one.
type Document struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      string // constant.DocumentTypeResume | constant.DocumentTypeJobDescription
	Filename  string
	FileKey   string // opaque key in the file store
	FileURL   string
	FullText  string
	Chunks    []DocumentChunk // ordered by ChunkIndex
	CreatedAt time.Time
}

// DocumentChunk is a bounded slice of the document text paired with its
// embedding vector.
type DocumentChunk struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	ChunkIndex int
	PageNumber int // approximate, index/3 + 1
	Text       string
	Embedding  []float32
	CreatedAt  time.Time
}
