package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageCitation links a generated message to the retrieved chunk that
// grounded it. Text is the truncated chunk excerpt shown to the reader.
type MessageCitation struct {
	Id           uuid.UUID
	MessageId    uuid.UUID
	DocumentId   uuid.UUID
	DocumentType string
	ChunkIndex   int
	Text         string
	CreatedAt    time.Time
}
