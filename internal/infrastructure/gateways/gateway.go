// Package gateways implements the outbound request builders and inbound
// callback parsers for the supported payment gateways. Adapters are pure:
// they sign, format and parse, while persistence stays in the usecases.
package gateways

import (
	"context"
	"net/url"

	"jobport.backend/internal/domain/entities"
)

// BuiltRequest is the outward-facing link for a payment attempt together
// with the correlation identifiers the gateway will echo back.
type BuiltRequest struct {
	// URL is the redirect URL (VNPay) or QR image URL (SePay).
	URL string
	// TransactionRef is the VNPay vnp_TxnRef. Empty for SePay.
	TransactionRef string
	// CorrelationToken is the PAY<32hex> marker embedded in the SePay
	// transfer description. Empty for VNPay.
	CorrelationToken string
}

// ParsedCallback is the gateway-neutral view of an inbound callback.
type ParsedCallback struct {
	// TransactionRef or CorrelationToken identifies the payment, depending
	// on the gateway.
	TransactionRef   string
	CorrelationToken string
	// IsSuccess reports whether the gateway settled the payment.
	IsSuccess bool
	// IsValid reports whether the callback's authenticity check passed.
	// SePay carries no signature, so its callbacks are always IsValid.
	IsValid bool
	// RawFields holds the gateway response fields to persist on the payment.
	RawFields map[string]string
}

// PaymentGateway builds outbound payment requests for one gateway.
type PaymentGateway interface {
	Gateway() entities.Gateway
	BuildPaymentRequest(ctx context.Context, order *entities.Order) (*BuiltRequest, error)
}

// VNPayCallbackParser parses VNPay redirect query strings.
type VNPayCallbackParser interface {
	ParseCallback(values url.Values) *ParsedCallback
}
