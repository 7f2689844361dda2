package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

func newOrderService() OrderService {
	return NewOrderService(
		repositories.NewOrderRepository(),
		repositories.NewGigRepository(),
		repositories.NewTransactionRepository(),
		repositories.NewMessageRepository(),
		repositories.NewAuditRepository(),
	)
}

func TestOrderService_Create_SnapshotsPriceAndHoldsEscrow(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 150)

	order, err := svc.Create(db, buyer.ID, &dto.CreateOrderRequest{GigID: gig.ID})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 150.0, order.TotalAmount)
	assert.Equal(t, 3, order.RevisionsAllowed)
	assert.False(t, order.IsCompleted)

	// Later gig price changes must not touch the order.
	gig.Price = 500
	require.NoError(t, db.Save(gig).Error)
	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, 150.0, got.TotalAmount)

	var payment models.Transaction
	require.NoError(t, db.First(&payment, "order_id = ?", order.ID).Error)
	assert.Equal(t, models.TransactionTypePayment, payment.Type)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
	assert.True(t, payment.IsEscrow)
	assert.Nil(t, payment.EscrowReleasedAt)
	assert.InDelta(t, 15.0, payment.PlatformFee, 0.001)
	assert.InDelta(t, 135.0, payment.SellerAmount, 0.001)
	assert.Equal(t, buyer.ID, payment.BuyerID)
	assert.Equal(t, seller.ID, payment.SellerID)
}

func TestOrderService_Create_RejectsOwnGig(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	gig := createTestGig(t, db, seller.ID, 100)

	_, err := svc.Create(db, seller.ID, &dto.CreateOrderRequest{GigID: gig.ID})
	assert.Error(t, err)
}

func TestOrderService_Create_RejectsInactiveGig(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	require.NoError(t, db.Model(gig).Update("is_active", false).Error)

	_, err := svc.Create(db, buyer.ID, &dto.CreateOrderRequest{GigID: gig.ID})
	assert.ErrorIs(t, err, apperrors.ErrGigInactive)
}

func TestOrderService_Update_FullLifecycleToCompletion(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 200)

	order, err := svc.Create(db, buyer.ID, &dto.CreateOrderRequest{GigID: gig.ID})
	require.NoError(t, err)

	// Seller accepts.
	order, err = svc.Update(db, seller.ID, order.ID, &dto.UpdateOrderRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, order.Status)

	// Seller delivers.
	order, err = svc.Update(db, seller.ID, order.ID, &dto.UpdateOrderRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)

	// Buyer accepts the delivery.
	order, err = svc.Update(db, buyer.ID, order.ID, &dto.UpdateOrderRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.True(t, order.IsCompleted)
	require.NotNil(t, order.CompletedAt)

	// Completion released the escrow to the seller, net of fee.
	var release models.Transaction
	require.NoError(t, db.First(&release, "order_id = ? AND type = ?", order.ID, models.TransactionTypeRelease).Error)
	assert.InDelta(t, 180.0, release.Amount, 0.001)
	assert.Equal(t, seller.ID, release.SellerID)

	var payment models.Transaction
	require.NoError(t, db.First(&payment, "order_id = ? AND type = ?", order.ID, models.TransactionTypePayment).Error)
	assert.NotNil(t, payment.EscrowReleasedAt)
}

func TestOrderService_Update_BuyerCannotDeliver(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusInProgress)

	_, err := svc.Update(db, buyer.ID, order.ID, &dto.UpdateOrderRequest{Status: "delivered"})
	assert.ErrorIs(t, err, apperrors.ErrRoleNotPermitted)
}

func TestOrderService_Update_SellerCannotComplete(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusDelivered)

	_, err := svc.Update(db, seller.ID, order.ID, &dto.UpdateOrderRequest{Status: "completed"})
	assert.ErrorIs(t, err, apperrors.ErrRoleNotPermitted)
}

func TestOrderService_Update_InvalidTransition(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusPending)

	_, err := svc.Update(db, buyer.ID, order.ID, &dto.UpdateOrderRequest{Status: "completed"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	// The failed transition left the order untouched.
	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestOrderService_Update_TerminalStatesAreFinal(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)

	completed := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCompleted)
	_, err := svc.Update(db, buyer.ID, completed.ID, &dto.UpdateOrderRequest{Status: "disputed"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	cancelled := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCancelled)
	_, err = svc.Update(db, seller.ID, cancelled.ID, &dto.UpdateOrderRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestOrderService_Update_DisputeResolution(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusDelivered)

	// Buyer disputes the delivery, then settles by completing.
	order2, err := svc.Update(db, buyer.ID, order.ID, &dto.UpdateOrderRequest{Status: "disputed"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDisputed, order2.Status)

	order3, err := svc.Update(db, buyer.ID, order.ID, &dto.UpdateOrderRequest{Status: "completed"})
	require.NoError(t, err)
	assert.True(t, order3.IsCompleted)
}

func TestOrderService_Update_CancellationRefundsBuyer(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 120)

	order, err := svc.Create(db, buyer.ID, &dto.CreateOrderRequest{GigID: gig.ID})
	require.NoError(t, err)

	_, err = svc.Update(db, seller.ID, order.ID, &dto.UpdateOrderRequest{Status: "cancelled"})
	require.NoError(t, err)

	var refund models.Transaction
	require.NoError(t, db.First(&refund, "order_id = ? AND type = ?", order.ID, models.TransactionTypeRefund).Error)
	assert.InDelta(t, 120.0, refund.Amount, 0.001)
	assert.Equal(t, buyer.ID, refund.BuyerID)

	var payment models.Transaction
	require.NoError(t, db.First(&payment, "order_id = ? AND type = ?", order.ID, models.TransactionTypePayment).Error)
	assert.Equal(t, models.PaymentStatusRefunded, payment.Status)
}

func TestOrderService_Update_RejectsNonParticipant(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	outsider := createTestUser(t, db, "Outsider", "outsider@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusPending)

	_, err := svc.Update(db, outsider.ID, order.ID, &dto.UpdateOrderRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, apperrors.ErrNotOrderParticipant)
}

func TestOrderService_Delete_OnlyWhilePending(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)

	pending := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusPending)
	require.NoError(t, svc.Delete(db, buyer.ID, pending.ID))

	active := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusInProgress)
	err := svc.Delete(db, buyer.ID, active.ID)
	assert.ErrorIs(t, err, apperrors.ErrOrderNotDeletable)
}

func TestOrderService_Delete_RemovesPaymentAndThread(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)

	// A real pending order already carries the escrowed payment, and a
	// thread may have started. The delete must not trip their foreign keys.
	order, err := svc.Create(db, buyer.ID, &dto.CreateOrderRequest{GigID: gig.ID})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Message{
		OrderID:     order.ID,
		SenderID:    buyer.ID,
		RecipientID: seller.ID,
		Body:        "any update?",
	}).Error)

	require.NoError(t, svc.Delete(db, buyer.ID, order.ID))

	var orders, txs, msgs int64
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).Count(&orders).Error)
	require.NoError(t, db.Model(&models.Transaction{}).Where("order_id = ?", order.ID).Count(&txs).Error)
	require.NoError(t, db.Model(&models.Message{}).Where("order_id = ?", order.ID).Count(&msgs).Error)
	assert.Zero(t, orders)
	assert.Zero(t, txs)
	assert.Zero(t, msgs)
}

func TestOrderService_Update_WritesAuditTrail(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)

	order, err := svc.Create(db, buyer.ID, &dto.CreateOrderRequest{GigID: gig.ID})
	require.NoError(t, err)

	_, err = svc.Update(db, seller.ID, order.ID, &dto.UpdateOrderRequest{Status: "in_progress"})
	require.NoError(t, err)

	var entries []models.AuditLog
	require.NoError(t, db.Where("entity_id = ?", order.ID).Order("created_at ASC").Find(&entries).Error)
	require.Len(t, entries, 2)
	assert.Equal(t, "order.created", entries[0].Action)
	assert.Equal(t, "order.updated", entries[1].Action)
}
