package contract

import (
	"context"

	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterviewSessionRepository interface {
	Create(ctx context.Context, session *entity.InterviewSession) error
	// Update persists the session and touches UpdatedAt. The touch is part of
	// this contract, not an entity-level hook.
	Update(ctx context.Context, session *entity.InterviewSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewSession, error)
}
