package entity

import (
	"time"

	"github.com/google/uuid"
)

type InterviewMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string
	Content   string
	Score     *int // overall score, set only on the final evaluation message
	CreatedAt time.Time
}
