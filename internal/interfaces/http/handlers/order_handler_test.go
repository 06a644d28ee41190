package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/interfaces/http/middleware"
)

type orderServiceStub struct {
	topUpFn    func(ctx context.Context, userID uuid.UUID, input *entities.CreateTopUpOrderInput) (*entities.Order, error)
	jobFn      func(ctx context.Context, userID uuid.UUID, input *entities.CreateJobOrderInput) (*entities.Order, error)
	businessFn func(ctx context.Context, userID uuid.UUID, input *entities.CreateBusinessOrderInput) (*entities.Order, error)
	getFn      func(ctx context.Context, userID, orderID uuid.UUID) (*entities.Order, error)
	listFn     func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int, error)
}

func (s orderServiceStub) CreateTopUpOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateTopUpOrderInput) (*entities.Order, error) {
	return s.topUpFn(ctx, userID, input)
}
func (s orderServiceStub) CreateJobOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateJobOrderInput) (*entities.Order, error) {
	return s.jobFn(ctx, userID, input)
}
func (s orderServiceStub) CreateBusinessOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateBusinessOrderInput) (*entities.Order, error) {
	return s.businessFn(ctx, userID, input)
}
func (s orderServiceStub) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entities.Order, error) {
	return s.getFn(ctx, userID, orderID)
}
func (s orderServiceStub) ListOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int, error) {
	return s.listFn(ctx, userID, limit, offset)
}

func newOrderRouter(service OrderService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(service)
	r := gin.New()
	withUser := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
	r.POST("/orders/top-up", withUser, h.CreateTopUpOrder)
	r.POST("/orders/job", withUser, h.CreateJobOrder)
	r.POST("/orders/business", withUser, h.CreateBusinessOrder)
	r.GET("/orders/:id", withUser, h.GetOrder)
	r.GET("/orders", withUser, h.ListOrders)
	return r
}

func TestOrderHandler_CreateTopUpOrder(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	service := orderServiceStub{
		topUpFn: func(_ context.Context, gotUserID uuid.UUID, input *entities.CreateTopUpOrderInput) (*entities.Order, error) {
			require.Equal(t, userID, gotUserID)
			require.Equal(t, int64(50000), input.Amount)
			require.Equal(t, "vnpay", input.Gateway)
			return &entities.Order{ID: orderID, UserID: gotUserID, Type: entities.OrderTypeTopUp, Status: entities.OrderStatusPending}, nil
		},
	}
	r := newOrderRouter(service, userID)

	body := []byte(`{"amount":50000,"gateway":"vnpay"}`)
	req := httptest.NewRequest(http.MethodPost, "/orders/top-up", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Order entities.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, orderID, resp.Order.ID)
}

func TestOrderHandler_CreateTopUpOrder_BadBody(t *testing.T) {
	r := newOrderRouter(orderServiceStub{}, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/orders/top-up", bytes.NewReader([]byte(`{"amount":0}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_CreateJobOrder(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()
	serviceID := uuid.New()
	service := orderServiceStub{
		jobFn: func(_ context.Context, _ uuid.UUID, input *entities.CreateJobOrderInput) (*entities.Order, error) {
			require.Equal(t, jobID.String(), input.JobID)
			require.Equal(t, []string{serviceID.String()}, input.ServiceIDs)
			return &entities.Order{ID: uuid.New(), Type: entities.OrderTypeJob}, nil
		},
	}
	r := newOrderRouter(service, userID)

	body, _ := json.Marshal(entities.CreateJobOrderInput{
		JobID:      jobID.String(),
		ServiceIDs: []string{serviceID.String()},
		Gateway:    "sepay",
	})
	req := httptest.NewRequest(http.MethodPost, "/orders/job", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestOrderHandler_CreateBusinessOrder_UsecaseErrorMapped(t *testing.T) {
	service := orderServiceStub{
		businessFn: func(_ context.Context, _ uuid.UUID, _ *entities.CreateBusinessOrderInput) (*entities.Order, error) {
			return nil, domainerrors.ErrNotFound
		},
	}
	r := newOrderRouter(service, uuid.New())

	body := []byte(`{"packageId":"` + uuid.NewString() + `","gateway":"vnpay"}`)
	req := httptest.NewRequest(http.MethodPost, "/orders/business", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	service := orderServiceStub{
		getFn: func(_ context.Context, gotUserID, gotOrderID uuid.UUID) (*entities.Order, error) {
			if gotOrderID == orderID {
				return &entities.Order{ID: orderID, UserID: gotUserID}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}
	r := newOrderRouter(service, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_ListOrders_Pagination(t *testing.T) {
	userID := uuid.New()
	service := orderServiceStub{
		listFn: func(_ context.Context, _ uuid.UUID, limit, offset int) ([]*entities.Order, int, error) {
			require.Equal(t, 5, limit)
			require.Equal(t, 5, offset)
			return []*entities.Order{{ID: uuid.New()}}, 11, nil
		},
	}
	r := newOrderRouter(service, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Orders     []json.RawMessage `json:"orders"`
		Pagination struct {
			TotalCount int64 `json:"totalCount"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	require.Equal(t, int64(11), resp.Pagination.TotalCount)
	require.Equal(t, 3, resp.Pagination.TotalPages)
}
