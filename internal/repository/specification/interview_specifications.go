package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters interview messages by their session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ActiveOnly filters interview sessions that have not completed
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
