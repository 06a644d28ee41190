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

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	now := time.Now()
	m := &models.Order{
		ID:        order.ID,
		UserID:    order.UserID,
		Type:      string(order.Type),
		TargetID:  order.TargetID,
		Amount:    order.Amount,
		Gateway:   string(order.Gateway),
		Status:    string(order.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.ID = m.ID
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets orders for a user with pagination
func (r *OrderRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var orders []*entities.Order
	for _, m := range ms {
		model := m
		orders = append(orders, r.toEntity(&model))
	}
	return orders, int(total), nil
}

// MarkCompleted transitions a pending order to completed. The WHERE clause
// on status makes the transition a compare-and-swap: a concurrent callback
// that lost the race sees zero rows affected and must skip effect application.
func (r *OrderRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.transition(ctx, id, entities.OrderStatusCompleted)
}

// MarkFailed transitions a pending order to failed.
func (r *OrderRepository) MarkFailed(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.transition(ctx, id, entities.OrderStatusFailed)
}

func (r *OrderRepository) transition(ctx context.Context, id uuid.UUID, status entities.OrderStatus) (bool, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, entities.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ExpireStale moves orders left pending beyond the timeout window into the
// expired terminal state so they stop accepting late callbacks.
func (r *OrderRepository) ExpireStale(ctx context.Context, olderThanMinutes int, limit int) (int64, error) {
	cutoff := time.Now().Add(-time.Duration(olderThanMinutes) * time.Minute)

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("status = ? AND created_at < ?", entities.OrderStatusPending, cutoff).
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id IN ? AND status = ?", ids, entities.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":     entities.OrderStatusExpired,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *OrderRepository) toEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.OrderType(m.Type),
		TargetID:  m.TargetID,
		Amount:    m.Amount,
		Gateway:   entities.Gateway(m.Gateway),
		Status:    entities.OrderStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
