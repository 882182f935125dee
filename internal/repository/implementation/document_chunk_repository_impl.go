package implementation

import (
	"context"

	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/mapper"
	"ai-mockinterview-be/internal/model"
	"ai-mockinterview-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentChunkRepository(db *gorm.DB) contract.DocumentChunkRepository {
	return &DocumentChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.DocumentChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ChunkToModel(c)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*chunks[i] = *r.mapper.ChunkToEntity(m)
	}
	return nil
}

func (r *DocumentChunkRepositoryImpl) DeleteByDocumentIdUnscoped(ctx context.Context, documentId uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Where("document_id = ?", documentId).Delete(&model.DocumentChunk{}).Error
}
