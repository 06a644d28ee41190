package gateways

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"jobport.backend/internal/domain/entities"
)

// VNPay response codes
const (
	VNPayResponseSuccess = "00"
	vnpaySecureHashField = "vnp_SecureHash"
	vnpayHashTypeField   = "vnp_SecureHashType"
)

// VNPayConfig holds the merchant credentials and endpoints for VNPay
type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	PaymentURL string
	ReturnURL  string
}

// VNPayGateway builds signed redirect URLs and verifies callback signatures
// using VNPay's query-string HMAC-SHA512 scheme.
type VNPayGateway struct {
	cfg VNPayConfig
	now func() time.Time
}

// NewVNPayGateway creates a new VNPay gateway adapter
func NewVNPayGateway(cfg VNPayConfig) *VNPayGateway {
	return &VNPayGateway{cfg: cfg, now: time.Now}
}

func (g *VNPayGateway) Gateway() entities.Gateway {
	return entities.GatewayVNPay
}

// BuildPaymentRequest builds the signed redirect URL for an order. The
// transaction reference is derived from the current time in nanoseconds so
// retries of the same order produce distinct payment attempts.
func (g *VNPayGateway) BuildPaymentRequest(_ context.Context, order *entities.Order) (*BuiltRequest, error) {
	now := g.now()
	txnRef := fmt.Sprintf("%d", now.UnixNano())

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    g.cfg.TmnCode,
		"vnp_Amount":     fmt.Sprintf("%d", order.Amount*100),
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     txnRef,
		"vnp_OrderInfo":  fmt.Sprintf("Thanh toan don hang %s", order.ID),
		"vnp_OrderType":  "other",
		"vnp_Locale":     "vn",
		"vnp_ReturnUrl":  g.cfg.ReturnURL,
		"vnp_IpAddr":     "127.0.0.1",
		"vnp_CreateDate": now.Format("20060102150405"),
		"vnp_ExpireDate": now.Add(15 * time.Minute).Format("20060102150405"),
	}

	query := signedQuery(params, g.cfg.HashSecret)
	return &BuiltRequest{
		URL:            g.cfg.PaymentURL + "?" + query,
		TransactionRef: txnRef,
	}, nil
}

// ParseCallback verifies the callback signature and extracts the settlement
// outcome. A hash mismatch does not abort parsing: the raw response is still
// recorded, with IsValid false so callers never treat it as authoritative.
func (g *VNPayGateway) ParseCallback(values url.Values) *ParsedCallback {
	received := values.Get(vnpaySecureHashField)

	fields := make(map[string]string)
	for key := range values {
		if key == vnpaySecureHashField || key == vnpayHashTypeField {
			continue
		}
		if v := values.Get(key); v != "" {
			fields[key] = v
		}
	}

	computed := hmacSHA512(g.cfg.HashSecret, hashData(fields))
	valid := received != "" && strings.EqualFold(computed, received)

	responseCode := values.Get("vnp_ResponseCode")
	return &ParsedCallback{
		TransactionRef: values.Get("vnp_TxnRef"),
		IsSuccess:      responseCode == VNPayResponseSuccess,
		IsValid:        valid,
		RawFields: map[string]string{
			"responseCode": responseCode,
			"bankCode":     values.Get("vnp_BankCode"),
			"cardType":     values.Get("vnp_CardType"),
			"payDate":      values.Get("vnp_PayDate"),
			"secureHash":   received,
			"gatewayTxnId": values.Get("vnp_TransactionNo"),
		},
	}
}

// hashData builds the canonical string to sign: non-empty parameters sorted
// by key, URL-encoded, joined as key=value pairs with '&'.
func hashData(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}

func hmacSHA512(secret, data string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// signedQuery returns the URL-encoded query string with vnp_SecureHash
// appended.
func signedQuery(params map[string]string, secret string) string {
	data := hashData(params)
	return data + "&" + vnpaySecureHashField + "=" + hmacSHA512(secret, data)
}
