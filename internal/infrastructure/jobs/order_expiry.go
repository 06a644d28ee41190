// Package jobs holds the background workers driven off tickers.
package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"jobport.backend/pkg/logger"
	"jobport.backend/pkg/metrics"
)

const expiryBatchSize = 100

// stalePendingExpirer is the slice of the repositories the job needs.
type stalePendingExpirer interface {
	ExpireStale(ctx context.Context, olderThanMinutes int, limit int) (int64, error)
}

// OrderExpiryJob moves pending orders and payments past the payment timeout
// to expired. Expiry closes the reconciliation window: a callback arriving
// after the job ran hits a terminal payment and becomes a no-op.
type OrderExpiryJob struct {
	orders         stalePendingExpirer
	payments       stalePendingExpirer
	timeoutMinutes int
	interval       time.Duration
	stop           chan struct{}
}

func NewOrderExpiryJob(orders, payments stalePendingExpirer, timeoutMinutes int, interval time.Duration) *OrderExpiryJob {
	return &OrderExpiryJob{
		orders:         orders,
		payments:       payments,
		timeoutMinutes: timeoutMinutes,
		interval:       interval,
		stop:           make(chan struct{}),
	}
}

func (j *OrderExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting order expiry job",
		zap.Int("timeoutMinutes", j.timeoutMinutes),
		zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "order expiry job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "order expiry job stopped")
			return
		case <-ticker.C:
			j.expireStale(ctx)
		}
	}
}

func (j *OrderExpiryJob) Stop() {
	close(j.stop)
}

func (j *OrderExpiryJob) expireStale(ctx context.Context) {
	// Payments first so a callback racing the job cannot complete a payment
	// whose order was just expired.
	expiredPayments, err := j.payments.ExpireStale(ctx, j.timeoutMinutes, expiryBatchSize)
	if err != nil {
		logger.Error(ctx, "failed to expire stale payments", zap.Error(err))
		return
	}

	expiredOrders, err := j.orders.ExpireStale(ctx, j.timeoutMinutes, expiryBatchSize)
	if err != nil {
		logger.Error(ctx, "failed to expire stale orders", zap.Error(err))
		return
	}

	if expiredOrders == 0 && expiredPayments == 0 {
		return
	}

	metrics.OrdersExpiredTotal.Add(float64(expiredOrders))
	logger.Info(ctx, "expired stale payment records",
		zap.Int64("orders", expiredOrders),
		zap.Int64("payments", expiredPayments))
}
