package specification

import "gorm.io/gorm"

// ByDocumentType filters documents by resume / job_description
type ByDocumentType struct {
	Type string
}

func (s ByDocumentType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// WithChunks preloads document chunks in stable chunk order
type WithChunks struct{}

func (s WithChunks) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Chunks", func(db *gorm.DB) *gorm.DB {
		return db.Order("chunk_index ASC")
	})
}
