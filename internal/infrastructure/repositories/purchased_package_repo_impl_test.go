package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
)

func TestPurchasedPackageRepository_CreateActivate(t *testing.T) {
	db := newTestDB(t)
	createPackageTables(t, db)
	createUserTable(t, db)
	repo := NewPurchasedPackageRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	pkgID := uuid.New()
	mustExec(t, db, `INSERT INTO users(id,email,name,password_hash,role,level,x_token_balance,email_confirmed,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?,?,?)`,
		userID.String(), "biz@example.com", "Biz", "hash", "business", "standard", 0, true, time.Now(), time.Now())
	mustExec(t, db, `INSERT INTO business_packages(id,name,tier,price,duration_in_days,monthly_x_token_rewards,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?)`,
		pkgID.String(), "Elite Annual", "elite", 5000000, 365, 100, time.Now(), time.Now())

	p := &entities.PurchasedPackage{
		ID:        uuid.New(),
		UserID:    userID,
		PackageID: pkgID,
	}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
	require.Nil(t, got.StartDate)
	require.NotNil(t, got.User)
	require.NotNil(t, got.Package)
	require.Equal(t, entities.PackageTierElite, got.Package.Tier)
	require.Equal(t, int64(100), got.Package.MonthlyXTokenRewards)

	start := time.Now()
	require.NoError(t, repo.Activate(ctx, p.ID, start, start.AddDate(0, 0, 30), start.AddDate(0, 0, 365)))

	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.IsActive)
	require.NotNil(t, got.StartDate)
	require.NotNil(t, got.NextResetDate)
	require.NotNil(t, got.EndDate)

	require.ErrorIs(t, repo.Activate(ctx, uuid.New(), start, start, start), domainerrors.ErrNotFound)
}

func TestBusinessPackageRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	createPackageTables(t, db)
	repo := NewBusinessPackageRepository(db)
	ctx := context.Background()

	pkgID := uuid.New()
	mustExec(t, db, `INSERT INTO business_packages(id,name,tier,price,duration_in_days,monthly_x_token_rewards,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?)`,
		pkgID.String(), "Premium Monthly", "premium", 500000, 30, 20, time.Now(), time.Now())

	got, err := repo.GetByID(ctx, pkgID)
	require.NoError(t, err)
	require.Equal(t, "Premium Monthly", got.Name)
	require.Equal(t, int64(500000), got.Price)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
