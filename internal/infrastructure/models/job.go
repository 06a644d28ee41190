package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	IsHighlight bool      `gorm:"not null;default:false"`
	IsHot       bool      `gorm:"not null;default:false"`
	IsUrgent    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	JobServices []JobService `gorm:"foreignKey:JobID"`
}

type Service struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Type           string    `gorm:"type:varchar(20);not null"`
	DurationInDays int       `gorm:"not null;default:0"`
	Price          int64     `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type JobService struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Service Service `gorm:"foreignKey:ServiceID"`
}
