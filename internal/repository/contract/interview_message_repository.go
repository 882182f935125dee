package contract

import (
	"context"

	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterviewMessageRepository interface {
	Create(ctx context.Context, message *entity.InterviewMessage) error
	CreateBulk(ctx context.Context, messages []*entity.InterviewMessage) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewMessage, error)

	CreateCitations(ctx context.Context, citations []*entity.MessageCitation) error
	FindCitationsByMessageIds(ctx context.Context, messageIds []uuid.UUID) ([]*entity.MessageCitation, error)
}
