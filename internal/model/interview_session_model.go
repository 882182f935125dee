package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewSession struct {
	Id                       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId                   uuid.UUID      `gorm:"type:uuid;not null;index"`
	ResumeDocumentId         uuid.UUID      `gorm:"type:uuid;not null"`
	JobDescriptionDocumentId uuid.UUID      `gorm:"type:uuid;not null"`
	QuestionCount            int            `gorm:"not null;default:0"`
	IsActive                 bool           `gorm:"not null;default:true;index"`
	CreatedAt                time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                time.Time      `gorm:"autoUpdateTime"`
	DeletedAt                gorm.DeletedAt `gorm:"index"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
