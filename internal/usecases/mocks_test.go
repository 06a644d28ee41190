package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"jobport.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Int(1), args.Error(2)
}

func (m *MockOrderRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) MarkFailed(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ExpireStale(ctx context.Context, olderThanMinutes int, limit int) (int64, error) {
	args := m.Called(ctx, olderThanMinutes, limit)
	return args.Get(0).(int64), args.Error(1)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByTransactionRef(ctx context.Context, ref string) (*entities.Payment, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByCorrelationToken(ctx context.Context, token string) (*entities.Payment, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Settle(ctx context.Context, payment *entities.Payment, status entities.PaymentStatus) (bool, error) {
	args := m.Called(ctx, payment, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) ExpireStale(ctx context.Context, olderThanMinutes int, limit int) (int64, error) {
	args := m.Called(ctx, olderThanMinutes, limit)
	return args.Get(0).(int64), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) CreditTokens(ctx context.Context, id uuid.UUID, amount int64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockUserRepository) SetLevel(ctx context.Context, id uuid.UUID, level entities.UserLevel) error {
	args := m.Called(ctx, id, level)
	return args.Error(0)
}

// Mock TokenTransactionRepository
type MockTokenTransactionRepository struct {
	mock.Mock
}

func (m *MockTokenTransactionRepository) Create(ctx context.Context, txn *entities.TokenTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTokenTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TokenTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TokenTransaction), args.Error(1)
}

// Mock JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Job), args.Error(1)
}

func (m *MockJobRepository) SetServiceFlags(ctx context.Context, id uuid.UUID, highlight, hot, urgent bool) error {
	args := m.Called(ctx, id, highlight, hot, urgent)
	return args.Error(0)
}

func (m *MockJobRepository) CreateJobServices(ctx context.Context, services []*entities.JobService) error {
	args := m.Called(ctx, services)
	return args.Error(0)
}

func (m *MockJobRepository) ActivateJobServices(ctx context.Context, jobID uuid.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// Mock ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Service), args.Error(1)
}

// Mock BusinessPackageRepository
type MockBusinessPackageRepository struct {
	mock.Mock
}

func (m *MockBusinessPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusinessPackage), args.Error(1)
}

// Mock PurchasedPackageRepository
type MockPurchasedPackageRepository struct {
	mock.Mock
}

func (m *MockPurchasedPackageRepository) Create(ctx context.Context, pkg *entities.PurchasedPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPurchasedPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PurchasedPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PurchasedPackage), args.Error(1)
}

func (m *MockPurchasedPackageRepository) Activate(ctx context.Context, id uuid.UUID, start, nextReset, end time.Time) error {
	args := m.Called(ctx, id, start, nextReset, end)
	return args.Error(0)
}
