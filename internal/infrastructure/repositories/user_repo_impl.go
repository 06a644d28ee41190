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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// CreditTokens adds tokens to a user's balance atomically in SQL.
func (r *UserRepository) CreditTokens(ctx context.Context, id uuid.UUID, amount int64) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"x_token_balance": gorm.Expr("x_token_balance + ?", amount),
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

// SetLevel sets the user's account level
func (r *UserRepository) SetLevel(ctx context.Context, id uuid.UUID, level entities.UserLevel) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"level":      level,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:             m.ID,
		Email:          m.Email,
		Name:           m.Name,
		PasswordHash:   m.PasswordHash,
		Role:           entities.UserRole(m.Role),
		Level:          entities.UserLevel(m.Level),
		XTokenBalance:  m.XTokenBalance,
		EmailConfirmed: m.EmailConfirmed,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// TokenTransactionRepository implements token transaction data operations
type TokenTransactionRepository struct {
	db *gorm.DB
}

// NewTokenTransactionRepository creates a new token transaction repository
func NewTokenTransactionRepository(db *gorm.DB) *TokenTransactionRepository {
	return &TokenTransactionRepository{db: db}
}

// Create creates a new token transaction
func (r *TokenTransactionRepository) Create(ctx context.Context, txn *entities.TokenTransaction) error {
	now := time.Now()
	m := &models.TokenTransaction{
		ID:          txn.ID,
		UserID:      txn.UserID,
		Type:        string(txn.Type),
		AmountToken: txn.AmountToken,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	txn.ID = m.ID
	return nil
}

// GetByID gets a token transaction by ID
func (r *TokenTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TokenTransaction, error) {
	var m models.TokenTransaction
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.TokenTransaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entities.TokenTransactionType(m.Type),
		AmountToken: m.AmountToken,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
