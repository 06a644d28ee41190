package repositories

import (
	"context"

	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
)

// PaymentRepository defines payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	GetByTransactionRef(ctx context.Context, ref string) (*entities.Payment, error)
	GetByCorrelationToken(ctx context.Context, token string) (*entities.Payment, error)
	// Settle persists the gateway response fields and transitions the payment
	// out of pending in a single conditional update. It returns (false, nil)
	// when the payment was already terminal.
	Settle(ctx context.Context, payment *entities.Payment, status entities.PaymentStatus) (bool, error)
	ExpireStale(ctx context.Context, olderThanMinutes int, limit int) (int64, error)
}
