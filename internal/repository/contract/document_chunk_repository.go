package contract

import (
	"context"

	"ai-mockinterview-be/internal/entity"

	"github.com/google/uuid"
)

// Chunks are only ever written or dropped alongside their document; reads
// go through DocumentRepository with the chunk preload.
type DocumentChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	DeleteByDocumentIdUnscoped(ctx context.Context, documentId uuid.UUID) error
}
