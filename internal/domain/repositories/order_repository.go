package repositories

import (
	"context"

	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int, error)
	// MarkCompleted and MarkFailed transition pending orders only. They
	// return (false, nil) when the order was already terminal, making replay
	// a no-op under at-least-once callback delivery.
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID) (bool, error)
	ExpireStale(ctx context.Context, olderThanMinutes int, limit int) (int64, error)
}
