package implementation

import (
	"context"

	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/mapper"
	"ai-mockinterview-be/internal/model"
	"ai-mockinterview-be/internal/repository/contract"
	"ai-mockinterview-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewInterviewMessageRepository(db *gorm.DB) contract.InterviewMessageRepository {
	return &InterviewMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *InterviewMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterviewMessageRepositoryImpl) Create(ctx context.Context, message *entity.InterviewMessage) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *InterviewMessageRepositoryImpl) CreateBulk(ctx context.Context, messages []*entity.InterviewMessage) error {
	if len(messages) == 0 {
		return nil
	}
	models := make([]*model.InterviewMessage, len(messages))
	for i, msg := range messages {
		models[i] = r.mapper.MessageToModel(msg)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*messages[i] = *r.mapper.MessageToEntity(m)
	}
	return nil
}

func (r *InterviewMessageRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.InterviewMessage{}).Error
}

func (r *InterviewMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewMessage, error) {
	var models []*model.InterviewMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.InterviewMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.MessageToEntity(m)
	}
	return entities, nil
}

func (r *InterviewMessageRepositoryImpl) CreateCitations(ctx context.Context, citations []*entity.MessageCitation) error {
	if len(citations) == 0 {
		return nil
	}
	models := make([]*model.MessageCitation, len(citations))
	for i, c := range citations {
		models[i] = r.mapper.CitationToModel(c)
	}
	return r.db.WithContext(ctx).Create(models).Error
}

func (r *InterviewMessageRepositoryImpl) FindCitationsByMessageIds(ctx context.Context, messageIds []uuid.UUID) ([]*entity.MessageCitation, error) {
	if len(messageIds) == 0 {
		return nil, nil
	}
	var models []*model.MessageCitation
	err := r.db.WithContext(ctx).
		Where("message_id IN ?", messageIds).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.MessageCitation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CitationToEntity(m)
	}
	return entities, nil
}
