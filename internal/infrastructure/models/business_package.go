package models

import (
	"time"

	"github.com/google/uuid"
)

type BusinessPackage struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	Tier                 string    `gorm:"type:varchar(20);not null"`
	Price                int64     `gorm:"not null"`
	DurationInDays       int       `gorm:"not null"`
	MonthlyXTokenRewards int64     `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type PurchasedPackage struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PackageID     uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive      bool      `gorm:"not null;default:false"`
	StartDate     *time.Time
	NextResetDate *time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User    User            `gorm:"foreignKey:UserID"`
	Package BusinessPackage `gorm:"foreignKey:PackageID"`
}
