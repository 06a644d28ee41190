package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/domain/repositories"
	"jobport.backend/internal/infrastructure/gateways"
	"jobport.backend/pkg/metrics"
)

// PaymentRequestOutput is the client-facing result of a payment request
type PaymentRequestOutput struct {
	PaymentID uuid.UUID `json:"paymentId"`
	OrderID   uuid.UUID `json:"orderId"`
	URL       string    `json:"url"`
}

// PaymentUsecase builds outbound payment requests. Each successful build
// records a pending payment carrying the correlation identifier the gateway
// will echo back on settlement.
type PaymentUsecase struct {
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepository
	gateways    map[entities.Gateway]gateways.PaymentGateway
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepository,
	gws ...gateways.PaymentGateway,
) *PaymentUsecase {
	byName := make(map[entities.Gateway]gateways.PaymentGateway, len(gws))
	for _, g := range gws {
		byName[g.Gateway()] = g
	}
	return &PaymentUsecase{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateways:    byName,
	}
}

// BuildPaymentRequest builds a redirect URL or QR link for a pending order
// owned by the caller. The order must have been created for the requested
// gateway.
func (u *PaymentUsecase) BuildPaymentRequest(ctx context.Context, userID, orderID uuid.UUID, gateway entities.Gateway) (*PaymentRequestOutput, error) {
	adapter, ok := u.gateways[gateway]
	if !ok {
		return nil, domainerrors.BadRequest("unsupported gateway: " + string(gateway))
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.Unauthorized("order does not belong to the caller")
	}
	if order.Status != entities.OrderStatusPending {
		return nil, domainerrors.NewAppError(400, "order is not pending", domainerrors.ErrOrderNotPending)
	}
	if order.Gateway != gateway {
		return nil, domainerrors.NewAppError(400, "order was created for a different gateway", domainerrors.ErrInvalidGateway)
	}

	built, err := adapter.BuildPaymentRequest(ctx, order)
	if err != nil {
		return nil, err
	}

	payment := &entities.Payment{
		ID:      uuid.New(),
		OrderID: order.ID,
		Gateway: gateway,
		Amount:  order.Amount,
		Status:  entities.PaymentStatusPending,
	}
	if built.TransactionRef != "" {
		payment.TransactionRef = null.StringFrom(built.TransactionRef)
	}
	if built.CorrelationToken != "" {
		payment.CorrelationToken = null.StringFrom(built.CorrelationToken)
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	metrics.PaymentRequestsTotal.WithLabelValues(string(gateway)).Inc()
	return &PaymentRequestOutput{
		PaymentID: payment.ID,
		OrderID:   order.ID,
		URL:       built.URL,
	}, nil
}

// GetPayment gets a payment whose order is owned by the caller
func (u *PaymentUsecase) GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*entities.Payment, error) {
	payment, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	order, err := u.orderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.Unauthorized("payment does not belong to the caller")
	}
	return payment, nil
}
