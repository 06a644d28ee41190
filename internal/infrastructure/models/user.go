package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(255);not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(20);not null"`
	Level          string    `gorm:"type:varchar(20);not null;default:'standard'"`
	XTokenBalance  int64     `gorm:"not null;default:0"`
	EmailConfirmed bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type TokenTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"`
	AmountToken int64     `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
