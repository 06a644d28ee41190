package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
)

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	createTokenTransactionTable(t, db)
	orderRepo := NewOrderRepository(db)
	txnRepo := NewTokenTransactionRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	userID := uuid.New()
	orderID := uuid.New()
	err := uow.Do(ctx, func(txCtx context.Context) error {
		txn := &entities.TokenTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        entities.TokenTransactionTypeTopUp,
			AmountToken: 10,
		}
		if err := txnRepo.Create(txCtx, txn); err != nil {
			return err
		}
		return orderRepo.Create(txCtx, &entities.Order{
			ID:       orderID,
			UserID:   userID,
			Type:     entities.OrderTypeTopUp,
			TargetID: txn.ID,
			Amount:   20000,
			Gateway:  entities.GatewayVNPay,
			Status:   entities.OrderStatusPending,
		})
	})
	require.NoError(t, err)

	_, err = orderRepo.GetByID(ctx, orderID)
	require.NoError(t, err)

	// A failing step rolls back everything created before it.
	rolledBack := uuid.New()
	boom := errors.New("boom")
	err = uow.Do(ctx, func(txCtx context.Context) error {
		if err := orderRepo.Create(txCtx, &entities.Order{
			ID:       rolledBack,
			UserID:   userID,
			Type:     entities.OrderTypeTopUp,
			TargetID: uuid.New(),
			Amount:   20000,
			Gateway:  entities.GatewayVNPay,
			Status:   entities.OrderStatusPending,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = orderRepo.GetByID(ctx, rolledBack)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUnitOfWork_NestedDoReusesTransaction(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	orderRepo := NewOrderRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	orderID := uuid.New()
	err := uow.Do(ctx, func(outer context.Context) error {
		return uow.Do(outer, func(inner context.Context) error {
			return orderRepo.Create(inner, &entities.Order{
				ID:       orderID,
				UserID:   uuid.New(),
				Type:     entities.OrderTypeTopUp,
				TargetID: uuid.New(),
				Amount:   20000,
				Gateway:  entities.GatewaySePay,
				Status:   entities.OrderStatusPending,
			})
		})
	})
	require.NoError(t, err)

	_, err = orderRepo.GetByID(ctx, orderID)
	require.NoError(t, err)
}
