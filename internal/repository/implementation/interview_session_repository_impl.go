package implementation

import (
	"context"
	"errors"
	"time"

	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/mapper"
	"ai-mockinterview-be/internal/model"
	"ai-mockinterview-be/internal/repository/contract"
	"ai-mockinterview-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewInterviewSessionRepository(db *gorm.DB) contract.InterviewSessionRepository {
	return &InterviewSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *InterviewSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterviewSessionRepositoryImpl) Create(ctx context.Context, session *entity.InterviewSession) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *InterviewSessionRepositoryImpl) Update(ctx context.Context, session *entity.InterviewSession) error {
	// Explicit touch: part of the save contract, not an entity hook.
	now := time.Now()
	session.UpdatedAt = &now

	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *InterviewSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InterviewSession{}, id).Error
}

func (r *InterviewSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewSession, error) {
	var m model.InterviewSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m), nil
}

func (r *InterviewSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewSession, error) {
	var models []*model.InterviewSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.InterviewSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SessionToEntity(m)
	}
	return entities, nil
}
