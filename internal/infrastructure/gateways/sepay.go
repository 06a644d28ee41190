package gateways

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
)

// correlationPattern matches the PAY marker followed by a 32-hex-digit GUID
// embedded in the webhook's free-text transaction content.
var correlationPattern = regexp.MustCompile(`(?i)PAY([0-9a-f]{32})`)

// SePayConfig holds the bank account details rendered into the QR code
type SePayConfig struct {
	AccountNumber string
	BankCode      string
	QRBaseURL     string // e.g. https://qr.sepay.vn/img
	WebhookAPIKey string // optional shared secret; empty disables the check
}

// SePayWebhook is the inbound webhook body posted by SePay on a bank
// transfer. There is no signature; trust rests on URL secrecy and the
// optional API key header.
type SePayWebhook struct {
	ID              int64  `json:"id"`
	Gateway         string `json:"gateway"`
	TransactionDate string `json:"transactionDate"`
	AccountNumber   string `json:"accountNumber"`
	SubAccount      string `json:"subAccount"`
	TransferType    string `json:"transferType"` // "in" or "out"
	TransferAmount  int64  `json:"transferAmount"`
	Content         string `json:"content"`
	ReferenceCode   string `json:"referenceCode"`
}

// SePayGateway builds QR image links and recovers correlation tokens from
// webhook content.
type SePayGateway struct {
	cfg SePayConfig
}

// NewSePayGateway creates a new SePay gateway adapter
func NewSePayGateway(cfg SePayConfig) *SePayGateway {
	return &SePayGateway{cfg: cfg}
}

func (g *SePayGateway) Gateway() entities.Gateway {
	return entities.GatewaySePay
}

// BuildPaymentRequest generates a fresh correlation token and the QR image
// URL whose transfer description carries it.
func (g *SePayGateway) BuildPaymentRequest(_ context.Context, order *entities.Order) (*BuiltRequest, error) {
	token := NewCorrelationToken()

	q := url.Values{}
	q.Set("acc", g.cfg.AccountNumber)
	q.Set("bank", g.cfg.BankCode)
	q.Set("amount", fmt.Sprintf("%d", order.Amount))
	q.Set("des", token)

	return &BuiltRequest{
		URL:              g.cfg.QRBaseURL + "?" + q.Encode(),
		CorrelationToken: token,
	}, nil
}

// ParseWebhook recovers the correlation token from the transfer content.
// Content without a recognizable marker yields an empty token, not an error:
// unrelated transfers hit the same webhook endpoint.
func (g *SePayGateway) ParseWebhook(w *SePayWebhook) *ParsedCallback {
	return &ParsedCallback{
		CorrelationToken: ExtractCorrelationToken(w.Content),
		IsSuccess:        w.TransferType == "in" && w.TransferAmount > 0,
		IsValid:          true, // no signature scheme to verify
		RawFields: map[string]string{
			"accountNumber":      w.AccountNumber,
			"subAccount":         w.SubAccount,
			"transactionContent": w.Content,
			"gatewayTxnId":       w.ReferenceCode,
			"payDate":            w.TransactionDate,
		},
	}
}

// VerifyAPIKey checks the Authorization header against the configured shared
// secret. With no key configured the check is disabled and the endpoint
// relies on URL secrecy alone.
func (g *SePayGateway) VerifyAPIKey(authorization string) bool {
	if g.cfg.WebhookAPIKey == "" {
		return true
	}
	return authorization == "Apikey "+g.cfg.WebhookAPIKey
}

// NewCorrelationToken returns PAY followed by a dashless lowercase GUID.
func NewCorrelationToken() string {
	return "PAY" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// ExtractCorrelationToken finds the first PAY<32hex> marker in free text and
// returns it normalized (PAY upper, hex lower). Returns "" when absent.
func ExtractCorrelationToken(content string) string {
	m := correlationPattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "PAY" + strings.ToLower(m[1])
}

// CorrelationTokenToUUID converts the hex body of a correlation token back
// into the payment GUID it encodes.
func CorrelationTokenToUUID(token string) (uuid.UUID, bool) {
	m := correlationPattern.FindStringSubmatch(token)
	if m == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.ToLower(m[1]))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
