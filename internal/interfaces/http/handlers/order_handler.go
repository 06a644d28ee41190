package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/interfaces/http/middleware"
	"jobport.backend/internal/interfaces/http/response"
	"jobport.backend/pkg/utils"
)

type OrderService interface {
	CreateTopUpOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateTopUpOrderInput) (*entities.Order, error)
	CreateJobOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateJobOrderInput) (*entities.Order, error)
	CreateBusinessOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateBusinessOrderInput) (*entities.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entities.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int, error)
}

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderUsecase OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase OrderService) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// CreateTopUpOrder creates a token top-up order
// POST /api/v1/orders/top-up
func (h *OrderHandler) CreateTopUpOrder(c *gin.Context) {
	var input entities.CreateTopUpOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	order, err := h.orderUsecase.CreateTopUpOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

// CreateJobOrder creates a job service order
// POST /api/v1/orders/job
func (h *OrderHandler) CreateJobOrder(c *gin.Context) {
	var input entities.CreateJobOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	order, err := h.orderUsecase.CreateJobOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

// CreateBusinessOrder creates a business package order
// POST /api/v1/orders/business
func (h *OrderHandler) CreateBusinessOrder(c *gin.Context) {
	var input entities.CreateBusinessOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	order, err := h.orderUsecase.CreateBusinessOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

// GetOrder gets an order by ID
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	order, err := h.orderUsecase.GetOrder(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// ListOrders lists the current user's orders
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	params := utils.GetPaginationParams(page, limit)

	orders, total, err := h.orderUsecase.ListOrders(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}
