package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusExpired   PaymentStatus = "expired"
)

// IsTerminal reports whether the status accepts no further transitions.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed || s == PaymentStatusExpired
}

// Payment represents one gateway-specific settlement attempt against an
// order. Created pending when a redirect URL or QR is built, mutated exactly
// once by the first callback that observes a terminal outcome, never deleted.
type Payment struct {
	ID      uuid.UUID     `json:"id"`
	OrderID uuid.UUID     `json:"orderId"`
	Gateway Gateway       `json:"gateway"`
	Amount  int64         `json:"amount"`
	Status  PaymentStatus `json:"status"`

	// Correlation: VNPay echoes TransactionRef as vnp_TxnRef, SePay embeds
	// CorrelationToken (PAY + 32 hex) in the transfer description.
	TransactionRef   null.String `json:"transactionRef,omitempty"`
	CorrelationToken null.String `json:"correlationToken,omitempty"`

	// Gateway response fields, persisted on callback.
	ResponseCode       null.String `json:"responseCode,omitempty"`
	BankCode           null.String `json:"bankCode,omitempty"`
	CardType           null.String `json:"cardType,omitempty"`
	PayDate            null.String `json:"payDate,omitempty"`
	SecureHash         null.String `json:"-"`
	GatewayTxnID       null.String `json:"gatewayTxnId,omitempty"`
	AccountNumber      null.String `json:"accountNumber,omitempty"`
	SubAccount         null.String `json:"subAccount,omitempty"`
	TransactionContent null.String `json:"transactionContent,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}

// CallbackOutcome is the result of processing one gateway callback.
type CallbackOutcome struct {
	PaymentID        uuid.UUID     `json:"paymentId"`
	OrderID          uuid.UUID     `json:"orderId"`
	Status           PaymentStatus `json:"status"`
	IsValid          bool          `json:"isValid"`
	AlreadyProcessed bool          `json:"alreadyProcessed"`
}
