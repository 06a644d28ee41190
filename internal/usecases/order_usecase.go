package usecases

import (
	"context"

	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/domain/repositories"
)

// OrderUsecase creates and reads orders. Each create operation also creates
// the order's target entity (token transaction, job service rows, purchased
// package) in the same transaction, so a pending order always points at a
// real row.
type OrderUsecase struct {
	orderRepo    repositories.OrderRepository
	tokenTxnRepo repositories.TokenTransactionRepository
	jobRepo      repositories.JobRepository
	serviceRepo  repositories.ServiceRepository
	packageRepo  repositories.BusinessPackageRepository
	purchaseRepo repositories.PurchasedPackageRepository
	uow          repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	tokenTxnRepo repositories.TokenTransactionRepository,
	jobRepo repositories.JobRepository,
	serviceRepo repositories.ServiceRepository,
	packageRepo repositories.BusinessPackageRepository,
	purchaseRepo repositories.PurchasedPackageRepository,
	uow repositories.UnitOfWork,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:    orderRepo,
		tokenTxnRepo: tokenTxnRepo,
		jobRepo:      jobRepo,
		serviceRepo:  serviceRepo,
		packageRepo:  packageRepo,
		purchaseRepo: purchaseRepo,
		uow:          uow,
	}
}

// ParseGateway validates a gateway name from client input
func ParseGateway(s string) (entities.Gateway, error) {
	switch entities.Gateway(s) {
	case entities.GatewayVNPay, entities.GatewaySePay:
		return entities.Gateway(s), nil
	default:
		return "", domainerrors.BadRequest("unsupported gateway: " + s)
	}
}

// CreateTopUpOrder creates a token transaction and a pending order paying
// for it. The token amount is the cash amount at the fixed conversion rate,
// rounded down.
func (u *OrderUsecase) CreateTopUpOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateTopUpOrderInput) (*entities.Order, error) {
	gateway, err := ParseGateway(input.Gateway)
	if err != nil {
		return nil, err
	}
	if input.Amount < entities.TokenRate {
		return nil, domainerrors.BadRequest("amount below minimum top-up")
	}

	order := &entities.Order{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    entities.OrderTypeTopUp,
		Amount:  input.Amount,
		Gateway: gateway,
		Status:  entities.OrderStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		txn := &entities.TokenTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        entities.TokenTransactionTypeTopUp,
			AmountToken: entities.TokensForCash(input.Amount),
		}
		if err := u.tokenTxnRepo.Create(txCtx, txn); err != nil {
			return err
		}
		order.TargetID = txn.ID
		return u.orderRepo.Create(txCtx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CreateJobOrder creates inactive job service rows and a pending order
// paying for them. The amount is the sum of the selected services' prices.
func (u *OrderUsecase) CreateJobOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateJobOrderInput) (*entities.Order, error) {
	gateway, err := ParseGateway(input.Gateway)
	if err != nil {
		return nil, err
	}

	jobID, err := uuid.Parse(input.JobID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid job ID")
	}
	serviceIDs := make([]uuid.UUID, 0, len(input.ServiceIDs))
	for _, s := range input.ServiceIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid service ID")
		}
		serviceIDs = append(serviceIDs, id)
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != userID {
		return nil, domainerrors.Forbidden("job does not belong to the caller")
	}

	services, err := u.serviceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, domainerrors.NotFound("one or more services not found")
	}

	var total int64
	jobServices := make([]*entities.JobService, 0, len(services))
	for _, svc := range services {
		total += svc.Price
		jobServices = append(jobServices, &entities.JobService{
			ID:        uuid.New(),
			JobID:     jobID,
			ServiceID: svc.ID,
			IsActive:  false,
		})
	}

	order := &entities.Order{
		ID:       uuid.New(),
		UserID:   userID,
		Type:     entities.OrderTypeJob,
		TargetID: jobID,
		Amount:   total,
		Gateway:  gateway,
		Status:   entities.OrderStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.jobRepo.CreateJobServices(txCtx, jobServices); err != nil {
			return err
		}
		return u.orderRepo.Create(txCtx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CreateBusinessOrder creates an inactive purchased package and a pending
// order paying for it.
func (u *OrderUsecase) CreateBusinessOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateBusinessOrderInput) (*entities.Order, error) {
	gateway, err := ParseGateway(input.Gateway)
	if err != nil {
		return nil, err
	}

	packageID, err := uuid.Parse(input.PackageID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid package ID")
	}

	pkg, err := u.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    entities.OrderTypeBusiness,
		Amount:  pkg.Price,
		Gateway: gateway,
		Status:  entities.OrderStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		purchase := &entities.PurchasedPackage{
			ID:        uuid.New(),
			UserID:    userID,
			PackageID: pkg.ID,
			IsActive:  false,
		}
		if err := u.purchaseRepo.Create(txCtx, purchase); err != nil {
			return err
		}
		order.TargetID = purchase.ID
		return u.orderRepo.Create(txCtx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder gets an order owned by the caller
func (u *OrderUsecase) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.Unauthorized("order does not belong to the caller")
	}
	return order, nil
}

// ListOrders lists the caller's orders with pagination
func (u *OrderUsecase) ListOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int, error) {
	return u.orderRepo.GetByUserID(ctx, userID, limit, offset)
}
