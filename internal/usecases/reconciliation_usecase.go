package usecases

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/domain/repositories"
	"jobport.backend/internal/infrastructure/gateways"
	"jobport.backend/pkg/logger"
	"jobport.backend/pkg/metrics"
)

// ReconciliationUsecase settles payments from gateway callbacks. The whole
// settlement, from the payment's pending-to-terminal transition to the
// order's side effects, runs in one transaction. Conditional updates on the
// pending status make replayed and concurrent callbacks no-ops.
type ReconciliationUsecase struct {
	orderRepo    repositories.OrderRepository
	paymentRepo  repositories.PaymentRepository
	userRepo     repositories.UserRepository
	tokenTxnRepo repositories.TokenTransactionRepository
	jobRepo      repositories.JobRepository
	purchaseRepo repositories.PurchasedPackageRepository
	vnpay        *gateways.VNPayGateway
	sepay        *gateways.SePayGateway
	uow          repositories.UnitOfWork
	now          func() time.Time
}

// NewReconciliationUsecase creates a new reconciliation usecase
func NewReconciliationUsecase(
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	tokenTxnRepo repositories.TokenTransactionRepository,
	jobRepo repositories.JobRepository,
	purchaseRepo repositories.PurchasedPackageRepository,
	vnpay *gateways.VNPayGateway,
	sepay *gateways.SePayGateway,
	uow repositories.UnitOfWork,
) *ReconciliationUsecase {
	return &ReconciliationUsecase{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		tokenTxnRepo: tokenTxnRepo,
		jobRepo:      jobRepo,
		purchaseRepo: purchaseRepo,
		vnpay:        vnpay,
		sepay:        sepay,
		uow:          uow,
		now:          time.Now,
	}
}

// ProcessVNPayCallback verifies and settles a VNPay redirect callback. A bad
// signature rejects the callback without touching any state.
func (u *ReconciliationUsecase) ProcessVNPayCallback(ctx context.Context, values url.Values) (*entities.CallbackOutcome, error) {
	parsed := u.vnpay.ParseCallback(values)

	if !parsed.IsValid {
		metrics.CallbacksTotal.WithLabelValues(string(entities.GatewayVNPay), "invalid_signature").Inc()
		logger.Warn(ctx, "vnpay callback signature mismatch",
			zap.String("txnRef", parsed.TransactionRef))
		return nil, domainerrors.NewAppError(400, "invalid signature", domainerrors.ErrInvalidSignature)
	}
	if parsed.TransactionRef == "" {
		return nil, domainerrors.BadRequest("missing transaction reference")
	}

	payment, err := u.paymentRepo.GetByTransactionRef(ctx, parsed.TransactionRef)
	if err != nil {
		metrics.CallbacksTotal.WithLabelValues(string(entities.GatewayVNPay), "not_found").Inc()
		return nil, err
	}
	return u.settle(ctx, entities.GatewayVNPay, payment, parsed)
}

// ProcessSePayWebhook settles a SePay bank-transfer webhook. Transfers whose
// content carries no correlation token, or a token no pending payment ever
// issued, are reported as unmatched.
func (u *ReconciliationUsecase) ProcessSePayWebhook(ctx context.Context, webhook *gateways.SePayWebhook) (*entities.CallbackOutcome, error) {
	parsed := u.sepay.ParseWebhook(webhook)

	if parsed.CorrelationToken == "" {
		metrics.CallbacksTotal.WithLabelValues(string(entities.GatewaySePay), "not_found").Inc()
		logger.Warn(ctx, "sepay webhook without correlation token",
			zap.Int64("webhookId", webhook.ID),
			zap.String("referenceCode", webhook.ReferenceCode))
		return nil, domainerrors.NewAppError(404, "no correlation token in transfer content", domainerrors.ErrCorrelationNotResolved)
	}

	payment, err := u.paymentRepo.GetByCorrelationToken(ctx, parsed.CorrelationToken)
	if err != nil {
		metrics.CallbacksTotal.WithLabelValues(string(entities.GatewaySePay), "not_found").Inc()
		return nil, err
	}
	return u.settle(ctx, entities.GatewaySePay, payment, parsed)
}

// settle runs the shared settlement path: short-circuit on replay, persist
// the gateway response, transition payment and order, apply side effects.
func (u *ReconciliationUsecase) settle(ctx context.Context, gateway entities.Gateway, payment *entities.Payment, parsed *gateways.ParsedCallback) (*entities.CallbackOutcome, error) {
	outcome := &entities.CallbackOutcome{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		IsValid:   parsed.IsValid,
	}

	if payment.Status.IsTerminal() {
		outcome.Status = payment.Status
		outcome.AlreadyProcessed = true
		metrics.CallbacksTotal.WithLabelValues(string(gateway), "replayed").Inc()
		return outcome, nil
	}

	applyRawFields(payment, parsed.RawFields)

	status := entities.PaymentStatusFailed
	if parsed.IsSuccess {
		status = entities.PaymentStatusCompleted
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		settled, err := u.paymentRepo.Settle(txCtx, payment, status)
		if err != nil {
			return err
		}
		if !settled {
			// Lost the race against another callback for the same payment.
			outcome.AlreadyProcessed = true
			current, err := u.paymentRepo.GetByID(txCtx, payment.ID)
			if err != nil {
				return err
			}
			outcome.Status = current.Status
			return nil
		}
		outcome.Status = status

		if status == entities.PaymentStatusCompleted {
			completed, err := u.orderRepo.MarkCompleted(txCtx, payment.OrderID)
			if err != nil {
				return err
			}
			if completed {
				return u.applyEffects(txCtx, payment.OrderID)
			}
			// The order settled through another payment attempt already;
			// this payment stays completed but triggers nothing.
			return nil
		}

		_, err = u.orderRepo.MarkFailed(txCtx, payment.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if outcome.AlreadyProcessed {
		metrics.CallbacksTotal.WithLabelValues(string(gateway), "replayed").Inc()
	} else {
		metrics.CallbacksTotal.WithLabelValues(string(gateway), string(outcome.Status)).Inc()
	}
	logger.Info(ctx, "payment callback settled",
		zap.String("gateway", string(gateway)),
		zap.String("paymentId", payment.ID.String()),
		zap.String("orderId", payment.OrderID.String()),
		zap.String("status", string(outcome.Status)),
		zap.Bool("alreadyProcessed", outcome.AlreadyProcessed))
	return outcome, nil
}

// applyEffects performs the order-type-specific side effects of a completed
// order. Runs inside the settlement transaction so a failed effect rolls the
// whole settlement back and the callback can be retried.
func (u *ReconciliationUsecase) applyEffects(ctx context.Context, orderID uuid.UUID) error {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	switch order.Type {
	case entities.OrderTypeTopUp:
		err = u.applyTopUp(ctx, order)
	case entities.OrderTypeJob:
		err = u.applyJobServices(ctx, order)
	case entities.OrderTypeBusiness:
		err = u.applyBusinessPackage(ctx, order)
	default:
		err = domainerrors.InternalError(fmt.Errorf("no effect applier for order type %q", order.Type))
	}
	if err != nil {
		return err
	}

	metrics.EffectsAppliedTotal.WithLabelValues(string(order.Type)).Inc()
	return nil
}

func (u *ReconciliationUsecase) applyTopUp(ctx context.Context, order *entities.Order) error {
	txn, err := u.tokenTxnRepo.GetByID(ctx, order.Target().TokenTransactionID)
	if err != nil {
		return err
	}
	return u.userRepo.CreditTokens(ctx, order.UserID, txn.AmountToken)
}

func (u *ReconciliationUsecase) applyJobServices(ctx context.Context, order *entities.Order) error {
	job, err := u.jobRepo.GetByID(ctx, order.Target().JobID)
	if err != nil {
		return err
	}

	highlight, hot, urgent := job.IsHighlight, job.IsHot, job.IsUrgent
	for _, js := range job.JobServices {
		if js.Service == nil {
			return domainerrors.InternalError(fmt.Errorf("job service %s has no service loaded", js.ID))
		}
		switch js.Service.Type {
		case entities.ServiceTypeHighlight:
			highlight = true
		case entities.ServiceTypeHot:
			hot = true
		case entities.ServiceTypeUrgent:
			urgent = true
		default:
			return domainerrors.InternalError(fmt.Errorf("%w: %q", domainerrors.ErrUnknownServiceType, js.Service.Type))
		}
	}

	if err := u.jobRepo.SetServiceFlags(ctx, job.ID, highlight, hot, urgent); err != nil {
		return err
	}
	return u.jobRepo.ActivateJobServices(ctx, job.ID)
}

func (u *ReconciliationUsecase) applyBusinessPackage(ctx context.Context, order *entities.Order) error {
	purchase, err := u.purchaseRepo.GetByID(ctx, order.Target().PurchasedPackageID)
	if err != nil {
		return err
	}
	if purchase.Package == nil {
		return domainerrors.InternalError(fmt.Errorf("purchased package %s has no package loaded", purchase.ID))
	}

	start := u.now()
	nextReset := start.AddDate(0, 0, 30)
	end := start.AddDate(0, 0, purchase.Package.DurationInDays)
	if err := u.purchaseRepo.Activate(ctx, purchase.ID, start, nextReset, end); err != nil {
		return err
	}

	if purchase.Package.MonthlyXTokenRewards > 0 {
		if err := u.userRepo.CreditTokens(ctx, purchase.UserID, purchase.Package.MonthlyXTokenRewards); err != nil {
			return err
		}
	}

	level := entities.UserLevelPremium
	if purchase.Package.Tier == entities.PackageTierElite {
		level = entities.UserLevelElite
	}
	return u.userRepo.SetLevel(ctx, purchase.UserID, level)
}

// applyRawFields copies gateway response fields onto the payment entity.
// Empty values leave the column null.
func applyRawFields(p *entities.Payment, fields map[string]string) {
	set := func(dst *null.String, key string) {
		if v, ok := fields[key]; ok && v != "" {
			*dst = null.StringFrom(v)
		}
	}
	set(&p.ResponseCode, "responseCode")
	set(&p.BankCode, "bankCode")
	set(&p.CardType, "cardType")
	set(&p.PayDate, "payDate")
	set(&p.SecureHash, "secureHash")
	set(&p.GatewayTxnID, "gatewayTxnId")
	set(&p.AccountNumber, "accountNumber")
	set(&p.SubAccount, "subAccount")
	set(&p.TransactionContent, "transactionContent")
}
