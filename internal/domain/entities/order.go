package entities

import (
	"time"

	"github.com/google/uuid"
)

// OrderType represents what an order pays for
type OrderType string

const (
	OrderTypeTopUp    OrderType = "topup"
	OrderTypeJob      OrderType = "job"
	OrderTypeBusiness OrderType = "business"
)

// OrderStatus represents order status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusExpired   OrderStatus = "expired"
)

// IsTerminal reports whether the status accepts no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusFailed || s == OrderStatusExpired
}

// Gateway represents a payment gateway
type Gateway string

const (
	GatewayVNPay Gateway = "vnpay"
	GatewaySePay Gateway = "sepay"
)

// Order represents intent to pay. Amount and Gateway are immutable after
// creation; only Status and UpdatedAt change.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Type      OrderType   `json:"type"`
	TargetID  uuid.UUID   `json:"targetId"`
	Amount    int64       `json:"amount"` // VND
	Gateway   Gateway     `json:"gateway"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	DeletedAt *time.Time  `json:"-"`
}

// OrderTarget is the typed view of Order.TargetID. Exactly one ID field is
// set, matching Type.
type OrderTarget struct {
	Type               OrderType
	TokenTransactionID uuid.UUID
	JobID              uuid.UUID
	PurchasedPackageID uuid.UUID
}

// Target interprets TargetID according to the order type.
func (o *Order) Target() OrderTarget {
	t := OrderTarget{Type: o.Type}
	switch o.Type {
	case OrderTypeTopUp:
		t.TokenTransactionID = o.TargetID
	case OrderTypeJob:
		t.JobID = o.TargetID
	case OrderTypeBusiness:
		t.PurchasedPackageID = o.TargetID
	}
	return t
}

// CreateTopUpOrderInput represents input for a token top-up order
type CreateTopUpOrderInput struct {
	Amount  int64  `json:"amount" binding:"required,gt=0"`
	Gateway string `json:"gateway" binding:"required"`
}

// CreateJobOrderInput represents input for a job service order
type CreateJobOrderInput struct {
	JobID      string   `json:"jobId" binding:"required"`
	ServiceIDs []string `json:"serviceIds" binding:"required,min=1"`
	Gateway    string   `json:"gateway" binding:"required"`
}

// CreateBusinessOrderInput represents input for a business package order
type CreateBusinessOrderInput struct {
	PackageID string `json:"packageId" binding:"required"`
	Gateway   string `json:"gateway" binding:"required"`
}
