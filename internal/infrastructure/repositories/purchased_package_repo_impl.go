package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/infrastructure/models"
)

// PurchasedPackageRepository implements purchased package data operations
type PurchasedPackageRepository struct {
	db *gorm.DB
}

// NewPurchasedPackageRepository creates a new purchased package repository
func NewPurchasedPackageRepository(db *gorm.DB) *PurchasedPackageRepository {
	return &PurchasedPackageRepository{db: db}
}

// Create creates a new purchased package
func (r *PurchasedPackageRepository) Create(ctx context.Context, pkg *entities.PurchasedPackage) error {
	now := time.Now()
	m := &models.PurchasedPackage{
		ID:        pkg.ID,
		UserID:    pkg.UserID,
		PackageID: pkg.PackageID,
		IsActive:  pkg.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	pkg.ID = m.ID
	return nil
}

// GetByID gets a purchased package with its user and package preloaded
func (r *PurchasedPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PurchasedPackage, error) {
	var m models.PurchasedPackage
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("User").
		Preload("Package").
		Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Activate marks a purchased package active and sets its schedule dates
func (r *PurchasedPackageRepository) Activate(ctx context.Context, id uuid.UUID, start, nextReset, end time.Time) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.PurchasedPackage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":       true,
			"start_date":      start,
			"next_reset_date": nextReset,
			"end_date":        end,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PurchasedPackageRepository) toEntity(m *models.PurchasedPackage) *entities.PurchasedPackage {
	p := &entities.PurchasedPackage{
		ID:            m.ID,
		UserID:        m.UserID,
		PackageID:     m.PackageID,
		IsActive:      m.IsActive,
		StartDate:     m.StartDate,
		NextResetDate: m.NextResetDate,
		EndDate:       m.EndDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.User.ID != uuid.Nil {
		p.User = &entities.User{
			ID:            m.User.ID,
			Email:         m.User.Email,
			Name:          m.User.Name,
			Level:         entities.UserLevel(m.User.Level),
			XTokenBalance: m.User.XTokenBalance,
		}
	}
	if m.Package.ID != uuid.Nil {
		p.Package = &entities.BusinessPackage{
			ID:                   m.Package.ID,
			Name:                 m.Package.Name,
			Tier:                 entities.PackageTier(m.Package.Tier),
			Price:                m.Package.Price,
			DurationInDays:       m.Package.DurationInDays,
			MonthlyXTokenRewards: m.Package.MonthlyXTokenRewards,
		}
	}
	return p
}

// BusinessPackageRepository implements business package catalog operations
type BusinessPackageRepository struct {
	db *gorm.DB
}

// NewBusinessPackageRepository creates a new business package repository
func NewBusinessPackageRepository(db *gorm.DB) *BusinessPackageRepository {
	return &BusinessPackageRepository{db: db}
}

// GetByID gets a business package by ID
func (r *BusinessPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessPackage, error) {
	var m models.BusinessPackage
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.BusinessPackage{
		ID:                   m.ID,
		Name:                 m.Name,
		Tier:                 entities.PackageTier(m.Tier),
		Price:                m.Price,
		DurationInDays:       m.DurationInDays,
		MonthlyXTokenRewards: m.MonthlyXTokenRewards,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}, nil
}
