package dto

import (
	"time"

	"github.com/google/uuid"
)

type MessageCitationDTO struct {
	Type       string `json:"type"`
	ChunkIndex int    `json:"chunk_index"`
	Text       string `json:"text"`
}

type InterviewMessageDTO struct {
	Role      string               `json:"role"`
	Content   string               `json:"content"`
	Score     *int                 `json:"score,omitempty"`
	Citations []MessageCitationDTO `json:"citations,omitempty"`
	CreatedAt time.Time            `json:"timestamp"`
}

type StartInterviewResponse struct {
	SessionId uuid.UUID             `json:"session_id"`
	Messages  []InterviewMessageDTO `json:"messages"`
}

type SubmitAnswerRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Message   string    `json:"message" validate:"required"`
}

// ResultCitationDTO is the candidate-facing citation shape; Relevance is the
// similarity score as a percentage.
type ResultCitationDTO struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Relevance int    `json:"relevance"`
}

type SubmitAnswerResponse struct {
	Response      string              `json:"response"`
	Score         *int                `json:"score,omitempty"`
	IsComplete    bool                `json:"is_complete"`
	QuestionCount int                 `json:"question_count"`
	Citations     []ResultCitationDTO `json:"citations,omitempty"`
}

type InterviewHistoryResponse struct {
	SessionId uuid.UUID             `json:"session_id"`
	IsActive  bool                  `json:"is_active"`
	Messages  []InterviewMessageDTO `json:"messages"`
}

type ResetInterviewResponse struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}
