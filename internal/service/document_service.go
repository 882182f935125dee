package service

import (
	"context"
	"fmt"
	"time"

	"ai-mockinterview-be/internal/constant"
	"ai-mockinterview-be/internal/dto"
	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/pkg/logger"
	"ai-mockinterview-be/internal/repository/specification"
	"ai-mockinterview-be/internal/repository/unitofwork"
	"ai-mockinterview-be/pkg/embedding"
	"ai-mockinterview-be/pkg/extract"
	"ai-mockinterview-be/pkg/filestore"
	"ai-mockinterview-be/pkg/utils"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Upload(ctx context.Context, userId uuid.UUID, docType, filename string, data []byte) (*dto.UploadDocumentResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.DocumentListItemResponse, error)
	Delete(ctx context.Context, userId, documentId uuid.UUID) error
}

type documentService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	fileStore         filestore.Store
	logger            logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	fileStore filestore.Store,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		fileStore:         fileStore,
		logger:            log,
	}
}

func (s *documentService) Upload(ctx context.Context, userId uuid.UUID, docType, filename string, data []byte) (*dto.UploadDocumentResponse, error) {
	if docType != constant.DocumentTypeResume && docType != constant.DocumentTypeJobDescription {
		return nil, dto.ErrInvalidDocumentType
	}

	fullText, err := extract.FromPDF(data)
	if err != nil {
		return nil, dto.ErrEmptyDocument
	}
	if fullText == "" {
		return nil, dto.ErrEmptyDocument
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A user holds at most one document per type. Uploading again replaces
	// the previous one, including its stored file.
	existing, err := uow.DocumentRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByDocumentType{Type: docType},
	)
	if err != nil {
		return nil, err
	}

	textChunks := utils.SplitWords(fullText, constant.ChunkMaxWords)
	s.logger.Info("DocumentService", fmt.Sprintf("Processing %d chunks for %s", len(textChunks), docType), map[string]interface{}{"user_id": userId})

	results, err := s.embeddingProvider.GenerateBatch(ctx, textChunks)
	if err != nil {
		return nil, err
	}

	degraded := false
	for _, r := range results {
		if r.Degraded {
			degraded = true
			break
		}
	}
	if degraded {
		s.logger.Warn("DocumentService", "Embedding provider degraded, using fallback vectors", map[string]interface{}{"user_id": userId, "type": docType})
	}

	fileKey := fmt.Sprintf("%s/%s_%d.pdf", userId, docType, time.Now().UnixMilli())
	fileURL, err := s.fileStore.Put(fileKey, data)
	if err != nil {
		return nil, err
	}

	document := &entity.Document{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      docType,
		Filename:  filename,
		FileKey:   fileKey,
		FileURL:   fileURL,
		FullText:  fullText,
		CreatedAt: time.Now(),
	}

	chunks := make([]*entity.DocumentChunk, len(textChunks))
	for i, text := range textChunks {
		chunks[i] = &entity.DocumentChunk{
			Id:         uuid.New(),
			DocumentId: document.Id,
			ChunkIndex: i,
			PageNumber: i/3 + 1,
			Text:       text,
			Embedding:  results[i].Values,
			CreatedAt:  time.Now(),
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if existing != nil {
		if err := uow.DocumentChunkRepository().DeleteByDocumentIdUnscoped(ctx, existing.Id); err != nil {
			return nil, err
		}
		if err := uow.DocumentRepository().DeleteUnscoped(ctx, existing.Id); err != nil {
			return nil, err
		}
	}

	if err := uow.DocumentRepository().Create(ctx, document); err != nil {
		return nil, err
	}
	if err := uow.DocumentChunkRepository().CreateBulk(ctx, chunks); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// The old file is removed only after the new document is committed, so a
	// failed upload never leaves the user without a stored document.
	if existing != nil {
		if err := s.fileStore.Delete(existing.FileKey); err != nil {
			s.logger.Warn("DocumentService", "Failed to delete replaced file", map[string]interface{}{"key": existing.FileKey, "error": err.Error()})
		}
	}

	return &dto.UploadDocumentResponse{
		Id:          document.Id,
		Type:        document.Type,
		Filename:    document.Filename,
		ChunksCount: len(chunks),
		Degraded:    degraded,
		CreatedAt:   document.CreatedAt,
	}, nil
}

func (s *documentService) List(ctx context.Context, userId uuid.UUID) ([]dto.DocumentListItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DocumentListItemResponse, len(documents))
	for i, doc := range documents {
		items[i] = dto.DocumentListItemResponse{
			Id:        doc.Id,
			Type:      doc.Type,
			Filename:  doc.Filename,
			CreatedAt: doc.CreatedAt,
		}
	}
	return items, nil
}

func (s *documentService) Delete(ctx context.Context, userId, documentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if document == nil {
		return dto.ErrDocumentNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByDocumentIdUnscoped(ctx, document.Id); err != nil {
		return err
	}
	if err := uow.DocumentRepository().DeleteUnscoped(ctx, document.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if err := s.fileStore.Delete(document.FileKey); err != nil {
		s.logger.Warn("DocumentService", "Failed to delete stored file", map[string]interface{}{"key": document.FileKey, "error": err.Error()})
	}

	return nil
}
