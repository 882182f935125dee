package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index:idx_documents_user_type"`
	Type      string         `gorm:"type:text;not null;index:idx_documents_user_type"`
	Filename  string         `gorm:"type:text;not null"`
	FileKey   string         `gorm:"type:text;not null"`
	FileURL   string         `gorm:"type:text;not null"`
	FullText  string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Chunks []DocumentChunk `gorm:"foreignKey:DocumentId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Document) TableName() string {
	return "documents"
}
