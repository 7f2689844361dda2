package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gigflow_backend/database"
	"gigflow_backend/internal/config"
	"gigflow_backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps each test isolated while letting
	// gorm's pooled connections see the same data. Foreign keys are
	// enforced so the suite behaves like the postgres deployment.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.MigrateModels(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func setupTestConfig(t *testing.T) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Payments.Currency = "USD"
	cfg.Payments.PlatformFeeRate = 0.10
	cfg.Payments.EscrowSweepHours = 6
	cfg.Orders.DefaultRevisions = 3

	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         models.UserRoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestGig(t *testing.T, db *gorm.DB, sellerID string, price float64) *models.Gig {
	t.Helper()

	gig := &models.Gig{
		UserID:       sellerID,
		Title:        "Logo design",
		Description:  "A custom logo drawn from your brief, two concepts included.",
		Category:     "design",
		Price:        price,
		DeliveryTime: 3,
		IsActive:     true,
	}
	require.NoError(t, db.Create(gig).Error)
	return gig
}

func createTestOrder(t *testing.T, db *gorm.DB, gig *models.Gig, buyerID string, status models.OrderStatus) *models.Order {
	t.Helper()

	order := &models.Order{
		GigID:       gig.ID,
		BuyerID:     buyerID,
		SellerID:    gig.UserID,
		TotalAmount: gig.Price,
		Status:      status,
	}
	if status == models.OrderStatusCompleted {
		order.IsCompleted = true
	}
	require.NoError(t, db.Create(order).Error)
	return order
}
