package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadDocumentRequest carries the multipart form fields; the file itself
// arrives separately as the "file" part.
type UploadDocumentRequest struct {
	Type string `form:"type" validate:"required,oneof=resume job_description"`
}

type UploadDocumentResponse struct {
	Id          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Filename    string    `json:"filename"`
	ChunksCount int       `json:"chunks_count"`
	// Degraded is true when the chunk embeddings came from the offline
	// fallback instead of the remote model.
	Degraded  bool      `json:"degraded"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentListItemResponse struct {
	Id        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}
