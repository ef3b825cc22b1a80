package models

import (
	"time"

	"github.com/google/uuid"
)

type VendorDocument struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName      string    `gorm:"type:varchar(255);not null"`
	FileSize      int64     `gorm:"not null"`
	FileType      string    `gorm:"type:varchar(100);not null"`
	FilePath      string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	ReviewerNotes *string   `gorm:"type:text"`
	UploadedAt    time.Time `gorm:"not null"`
	ReviewedAt    *time.Time
}
