package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/infrastructure/gateways"
	"jobport.backend/internal/interfaces/http/middleware"
	"jobport.backend/internal/interfaces/http/response"
	"jobport.backend/internal/usecases"
)

type PaymentService interface {
	BuildPaymentRequest(ctx context.Context, userID, orderID uuid.UUID, gateway entities.Gateway) (*usecases.PaymentRequestOutput, error)
	GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*entities.Payment, error)
}

type ReconciliationService interface {
	ProcessVNPayCallback(ctx context.Context, values url.Values) (*entities.CallbackOutcome, error)
	ProcessSePayWebhook(ctx context.Context, webhook *gateways.SePayWebhook) (*entities.CallbackOutcome, error)
}

// WebhookAuthenticator verifies the shared secret on webhook requests.
type WebhookAuthenticator interface {
	VerifyAPIKey(authorization string) bool
}

// CreatePaymentRequestInput represents the body for payment request endpoints
type CreatePaymentRequestInput struct {
	OrderID string `json:"orderId" binding:"required"`
}

// PaymentHandler handles payment request and callback endpoints
type PaymentHandler struct {
	paymentUsecase        PaymentService
	reconciliationUsecase ReconciliationService
	webhookAuth           WebhookAuthenticator
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase PaymentService, reconciliationUsecase ReconciliationService, webhookAuth WebhookAuthenticator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase:        paymentUsecase,
		reconciliationUsecase: reconciliationUsecase,
		webhookAuth:           webhookAuth,
	}
}

// CreateVNPayPaymentURL builds a signed VNPay redirect URL for a pending order
// POST /api/v1/payments/vn-pay/create-payment-url
func (h *PaymentHandler) CreateVNPayPaymentURL(c *gin.Context) {
	h.createPaymentRequest(c, entities.GatewayVNPay)
}

// CreateSePayPaymentQR builds a SePay QR image link for a pending order
// POST /api/v1/payments/se-pay/create-payment-qr
func (h *PaymentHandler) CreateSePayPaymentQR(c *gin.Context) {
	h.createPaymentRequest(c, entities.GatewaySePay)
}

func (h *PaymentHandler) createPaymentRequest(c *gin.Context, gateway entities.Gateway) {
	var input CreatePaymentRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	orderID, err := uuid.Parse(input.OrderID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	out, err := h.paymentUsecase.BuildPaymentRequest(c.Request.Context(), userID, orderID, gateway)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, out)
}

// VNPayCallback processes the VNPay redirect callback
// GET /api/v1/payments/vn-pay/call-back
func (h *PaymentHandler) VNPayCallback(c *gin.Context) {
	outcome, err := h.reconciliationUsecase.ProcessVNPayCallback(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		// Gateways retry on non-2xx. Acknowledge receipt; whether the
		// content was trusted is reported in the body.
		acknowledgeCallbackError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true, "outcome": outcome})
}

// SePayWebhook processes the SePay bank transfer webhook
// POST /api/v1/payments/se-pay/webhook
func (h *PaymentHandler) SePayWebhook(c *gin.Context) {
	if !h.webhookAuth.VerifyAPIKey(c.GetHeader("Authorization")) {
		response.Error(c, domainerrors.Unauthorized("Invalid API key"))
		return
	}

	var webhook gateways.SePayWebhook
	if err := c.ShouldBindJSON(&webhook); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	outcome, err := h.reconciliationUsecase.ProcessSePayWebhook(c.Request.Context(), &webhook)
	if err != nil {
		acknowledgeCallbackError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true, "outcome": outcome})
}

// acknowledgeCallbackError answers a gateway callback whose processing failed.
// Always 200: a non-2xx would make the gateway retry forever into an order
// that can never settle.
func acknowledgeCallbackError(c *gin.Context, err error) {
	message := "callback not processed"
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	response.Success(c, http.StatusOK, gin.H{"success": false, "message": message})
}

// GetPayment gets a payment by ID
// GET /api/v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid payment ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	payment, err := h.paymentUsecase.GetPayment(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": payment})
}
