package mapper

import (
	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	chunks := make([]entity.DocumentChunk, len(d.Chunks))
	for i := range d.Chunks {
		chunks[i] = *m.ChunkToEntity(&d.Chunks[i])
	}

	return &entity.Document{
		Id:        d.Id,
		UserId:    d.UserId,
		Type:      d.Type,
		Filename:  d.Filename,
		FileKey:   d.FileKey,
		FileURL:   d.FileURL,
		FullText:  d.FullText,
		Chunks:    chunks,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	chunks := make([]model.DocumentChunk, len(d.Chunks))
	for i := range d.Chunks {
		chunks[i] = *m.ChunkToModel(&d.Chunks[i])
	}

	return &model.Document{
		Id:        d.Id,
		UserId:    d.UserId,
		Type:      d.Type,
		Filename:  d.Filename,
		FileKey:   d.FileKey,
		FileURL:   d.FileURL,
		FullText:  d.FullText,
		Chunks:    chunks,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DocumentMapper) ChunkToEntity(c *model.DocumentChunk) *entity.DocumentChunk {
	if c == nil {
		return nil
	}
	return &entity.DocumentChunk{
		Id:         c.Id,
		DocumentId: c.DocumentId,
		ChunkIndex: c.ChunkIndex,
		PageNumber: c.PageNumber,
		Text:       c.Text,
		Embedding:  c.Embedding.Slice(),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *DocumentMapper) ChunkToModel(c *entity.DocumentChunk) *model.DocumentChunk {
	if c == nil {
		return nil
	}
	return &model.DocumentChunk{
		Id:         c.Id,
		DocumentId: c.DocumentId,
		ChunkIndex: c.ChunkIndex,
		PageNumber: c.PageNumber,
		Text:       c.Text,
		Embedding:  pgvector.NewVector(c.Embedding),
		CreatedAt:  c.CreatedAt,
	}
}
