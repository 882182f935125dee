package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageCitation struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MessageId    uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentId   uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentType string    `gorm:"type:text;not null"`
	ChunkIndex   int       `gorm:"not null;default:0"`
	Text         string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Message *InterviewMessage `gorm:"foreignKey:MessageId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (MessageCitation) TableName() string {
	return "message_citations"
}
