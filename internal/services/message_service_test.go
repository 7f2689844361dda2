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

func newMessageService() MessageService {
	return NewMessageService(repositories.NewMessageRepository(), repositories.NewOrderRepository())
}

func TestMessageService_Send_DerivesRecipient(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newMessageService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusInProgress)

	fromBuyer, err := svc.Send(db, buyer.ID, &dto.SendMessageRequest{OrderID: order.ID, Body: "How is it going?"})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, fromBuyer.RecipientID)

	fromSeller, err := svc.Send(db, seller.ID, &dto.SendMessageRequest{OrderID: order.ID, Body: "Nearly done."})
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, fromSeller.RecipientID)
}

func TestMessageService_Send_StoresAttachment(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newMessageService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusInProgress)

	sent, err := svc.Send(db, seller.ID, &dto.SendMessageRequest{
		OrderID:  order.ID,
		Body:     "First draft attached.",
		FileURL:  "https://cdn.example.com/drafts/logo-v1.png",
		FileName: "logo-v1.png",
		FileType: "image/png",
	})
	require.NoError(t, err)

	var got models.Message
	require.NoError(t, db.First(&got, "id = ?", sent.ID).Error)
	assert.Equal(t, "https://cdn.example.com/drafts/logo-v1.png", got.FileURL)
	assert.Equal(t, "logo-v1.png", got.FileName)
	assert.Equal(t, "image/png", got.FileType)
}

func TestMessageService_Send_RejectsNonParticipant(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newMessageService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	outsider := createTestUser(t, db, "Outsider", "outsider@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusInProgress)

	_, err := svc.Send(db, outsider.ID, &dto.SendMessageRequest{OrderID: order.ID, Body: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrNotOrderParticipant)
}

func TestMessageService_UnreadCountAndMarkRead(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newMessageService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusInProgress)

	for _, body := range []string{"one", "two", "three"} {
		_, err := svc.Send(db, buyer.ID, &dto.SendMessageRequest{OrderID: order.ID, Body: body})
		require.NoError(t, err)
	}

	count, err := svc.UnreadCount(db, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Reading as the sender changes nothing.
	n, err := svc.MarkRead(db, buyer.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = svc.MarkRead(db, seller.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	count, err = svc.UnreadCount(db, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMessageService_ListByOrder_ScopedToParticipants(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newMessageService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	outsider := createTestUser(t, db, "Outsider", "outsider@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusInProgress)

	_, err := svc.Send(db, buyer.ID, &dto.SendMessageRequest{OrderID: order.ID, Body: "hello"})
	require.NoError(t, err)

	resp, err := svc.ListByOrder(db, seller.ID, order.ID, dto.Pagination{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	_, err = svc.ListByOrder(db, outsider.ID, order.ID, dto.Pagination{Page: 1, Limit: 20})
	assert.ErrorIs(t, err, apperrors.ErrNotOrderParticipant)
}
