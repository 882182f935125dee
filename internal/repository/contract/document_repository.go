package contract

import (
	"context"

	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	// DeleteUnscoped hard-deletes a document; replace-on-upload must not leave
	// soft-deleted rows competing on the (user, type) pair.
	DeleteUnscoped(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
}
