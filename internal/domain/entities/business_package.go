package entities

import (
	"time"

	"github.com/google/uuid"
)

// PackageTier represents a business package tier
type PackageTier string

const (
	PackageTierPremium PackageTier = "premium"
	PackageTierElite   PackageTier = "elite"
)

// BusinessPackage represents a purchasable business subscription package
type BusinessPackage struct {
	ID                   uuid.UUID   `json:"id"`
	Name                 string      `json:"name"`
	Tier                 PackageTier `json:"tier"`
	Price                int64       `json:"price"`
	DurationInDays       int         `json:"durationInDays"`
	MonthlyXTokenRewards int64       `json:"monthlyXTokenRewards"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// PurchasedPackage links a user to a business package. Created inactive with
// the order and activated when the order settles.
type PurchasedPackage struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	PackageID     uuid.UUID  `json:"packageId"`
	IsActive      bool       `json:"isActive"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	NextResetDate *time.Time `json:"nextResetDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	User    *User            `json:"user,omitempty"`
	Package *BusinessPackage `json:"package,omitempty"`
}
