package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/infrastructure/models"
)

// PaymentRepository implements payment data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	now := time.Now()
	m := &models.Payment{
		ID:               payment.ID,
		OrderID:          payment.OrderID,
		Gateway:          string(payment.Gateway),
		Amount:           payment.Amount,
		Status:           string(payment.Status),
		TransactionRef:   payment.TransactionRef.Ptr(),
		CorrelationToken: payment.CorrelationToken.Ptr(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	payment.ID = m.ID
	payment.CreatedAt = m.CreatedAt
	payment.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	return r.getWhere(ctx, "id = ?", id)
}

// GetByTransactionRef gets a payment by its VNPay transaction reference
func (r *PaymentRepository) GetByTransactionRef(ctx context.Context, ref string) (*entities.Payment, error) {
	return r.getWhere(ctx, "transaction_ref = ?", ref)
}

// GetByCorrelationToken gets a payment by its SePay correlation token
func (r *PaymentRepository) GetByCorrelationToken(ctx context.Context, token string) (*entities.Payment, error) {
	return r.getWhere(ctx, "correlation_token = ?", token)
}

func (r *PaymentRepository) getWhere(ctx context.Context, query string, arg interface{}) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Settle persists the gateway response fields onto the payment and moves it
// out of pending in one conditional update. Zero rows affected means another
// delivery of the same callback won the race; the caller treats that as an
// idempotent replay.
func (r *PaymentRepository) Settle(ctx context.Context, payment *entities.Payment, status entities.PaymentStatus) (bool, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", payment.ID, entities.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":              status,
			"response_code":       payment.ResponseCode.Ptr(),
			"bank_code":           payment.BankCode.Ptr(),
			"card_type":           payment.CardType.Ptr(),
			"pay_date":            payment.PayDate.Ptr(),
			"secure_hash":         payment.SecureHash.Ptr(),
			"gateway_txn_id":      payment.GatewayTxnID.Ptr(),
			"account_number":      payment.AccountNumber.Ptr(),
			"sub_account":         payment.SubAccount.Ptr(),
			"transaction_content": payment.TransactionContent.Ptr(),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		payment.Status = status
		return true, nil
	}
	return false, nil
}

// ExpireStale moves payments left pending beyond the timeout window into the
// expired terminal state.
func (r *PaymentRepository) ExpireStale(ctx context.Context, olderThanMinutes int, limit int) (int64, error) {
	cutoff := time.Now().Add(-time.Duration(olderThanMinutes) * time.Minute)

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("status = ? AND created_at < ?", entities.PaymentStatusPending, cutoff).
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id IN ? AND status = ?", ids, entities.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":     entities.PaymentStatusExpired,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *PaymentRepository) toEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:                 m.ID,
		OrderID:            m.OrderID,
		Gateway:            entities.Gateway(m.Gateway),
		Amount:             m.Amount,
		Status:             entities.PaymentStatus(m.Status),
		TransactionRef:     null.StringFromPtr(m.TransactionRef),
		CorrelationToken:   null.StringFromPtr(m.CorrelationToken),
		ResponseCode:       null.StringFromPtr(m.ResponseCode),
		BankCode:           null.StringFromPtr(m.BankCode),
		CardType:           null.StringFromPtr(m.CardType),
		PayDate:            null.StringFromPtr(m.PayDate),
		SecureHash:         null.StringFromPtr(m.SecureHash),
		GatewayTxnID:       null.StringFromPtr(m.GatewayTxnID),
		AccountNumber:      null.StringFromPtr(m.AccountNumber),
		SubAccount:         null.StringFromPtr(m.SubAccount),
		TransactionContent: null.StringFromPtr(m.TransactionContent),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
