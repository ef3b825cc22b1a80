package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorProfile struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID              *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BusinessName        string     `gorm:"type:varchar(255);not null"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	BusinessDescription *string    `gorm:"type:text"`
	PhoneNumber         *string    `gorm:"type:varchar(50)"`
	Address             *string    `gorm:"type:text"`
	ContactPerson       *string    `gorm:"type:varchar(100)"`
	VerificationStatus  string     `gorm:"type:varchar(50);not null;default:'PENDING'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}
