package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
)

// PurchasedPackageRepository defines purchased package data operations
type PurchasedPackageRepository interface {
	Create(ctx context.Context, pkg *entities.PurchasedPackage) error
	// GetByID loads the purchase with its User and BusinessPackage preloaded.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PurchasedPackage, error)
	Activate(ctx context.Context, id uuid.UUID, start, nextReset, end time.Time) error
}

// BusinessPackageRepository defines business package catalog operations
type BusinessPackageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessPackage, error)
}
