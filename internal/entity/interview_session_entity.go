package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterviewSession tracks one 3-question interview attempt.
// QuestionCount is monotone and capped at the question limit; IsActive flips
// to false exactly once, when the final answer has been evaluated.
type InterviewSession struct {
	Id                       uuid.UUID
	UserId                   uuid.UUID
	ResumeDocumentId         uuid.UUID
	JobDescriptionDocumentId uuid.UUID
	QuestionCount            int
	IsActive                 bool
	CreatedAt                time.Time
	UpdatedAt                *time.Time
}
