package repositories

import (
	"context"

	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	CreditTokens(ctx context.Context, id uuid.UUID, amount int64) error
	SetLevel(ctx context.Context, id uuid.UUID, level entities.UserLevel) error
}

// TokenTransactionRepository defines token transaction data operations
type TokenTransactionRepository interface {
	Create(ctx context.Context, txn *entities.TokenTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TokenTransaction, error)
}
