package mapper

import (
	"time"

	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/model"
)

type InterviewMapper struct{}

func NewInterviewMapper() *InterviewMapper {
	return &InterviewMapper{}
}

// Session Mappers

func (m *InterviewMapper) SessionToEntity(s *model.InterviewSession) *entity.InterviewSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.InterviewSession{
		Id:                       s.Id,
		UserId:                   s.UserId,
		ResumeDocumentId:         s.ResumeDocumentId,
		JobDescriptionDocumentId: s.JobDescriptionDocumentId,
		QuestionCount:            s.QuestionCount,
		IsActive:                 s.IsActive,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                updatedAt,
	}
}

func (m *InterviewMapper) SessionToModel(s *entity.InterviewSession) *model.InterviewSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.InterviewSession{
		Id:                       s.Id,
		UserId:                   s.UserId,
		ResumeDocumentId:         s.ResumeDocumentId,
		JobDescriptionDocumentId: s.JobDescriptionDocumentId,
		QuestionCount:            s.QuestionCount,
		IsActive:                 s.IsActive,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                updatedAt,
	}
}

// Message Mappers

func (m *InterviewMapper) MessageToEntity(msg *model.InterviewMessage) *entity.InterviewMessage {
	if msg == nil {
		return nil
	}
	return &entity.InterviewMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		Score:     msg.Score,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *InterviewMapper) MessageToModel(msg *entity.InterviewMessage) *model.InterviewMessage {
	if msg == nil {
		return nil
	}
	return &model.InterviewMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		Score:     msg.Score,
		CreatedAt: msg.CreatedAt,
	}
}

// Citation Mappers

func (m *InterviewMapper) CitationToEntity(c *model.MessageCitation) *entity.MessageCitation {
	if c == nil {
		return nil
	}
	return &entity.MessageCitation{
		Id:           c.Id,
		MessageId:    c.MessageId,
		DocumentId:   c.DocumentId,
		DocumentType: c.DocumentType,
		ChunkIndex:   c.ChunkIndex,
		Text:         c.Text,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *InterviewMapper) CitationToModel(c *entity.MessageCitation) *model.MessageCitation {
	if c == nil {
		return nil
	}
	return &model.MessageCitation{
		Id:           c.Id,
		MessageId:    c.MessageId,
		DocumentId:   c.DocumentId,
		DocumentType: c.DocumentType,
		ChunkIndex:   c.ChunkIndex,
		Text:         c.Text,
		CreatedAt:    c.CreatedAt,
	}
}
