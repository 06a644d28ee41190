// Package metrics exposes prometheus counters for the payment flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CallbacksTotal counts gateway callbacks by gateway and outcome
	// (completed, failed, not_found, replayed, invalid_signature).
	CallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_callbacks_total",
			Help: "Gateway callbacks processed, by gateway and outcome",
		},
		[]string{"gateway", "outcome"},
	)

	// EffectsAppliedTotal counts applied order effects by order type.
	EffectsAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_effects_applied_total",
			Help: "Order effects applied after successful settlement, by order type",
		},
		[]string{"order_type"},
	)

	// PaymentRequestsTotal counts outbound payment requests built per gateway.
	PaymentRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_requests_built_total",
			Help: "Outbound payment redirect URLs or QR codes built, by gateway",
		},
		[]string{"gateway"},
	)

	// OrdersExpiredTotal counts orders expired by the background job.
	OrdersExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_orders_expired_total",
			Help: "Orders moved to expired by the stale-order job",
		},
	)
)
