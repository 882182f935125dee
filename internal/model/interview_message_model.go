package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewMessage struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Role      string         `gorm:"type:text;not null"`
	Content   string         `gorm:"type:text;not null"`
	Score     *int           `gorm:"type:int"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (InterviewMessage) TableName() string {
	return "interview_messages"
}
