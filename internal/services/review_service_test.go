package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

func newReviewService() ReviewService {
	return NewReviewService(repositories.NewReviewRepository(), repositories.NewOrderRepository(), repositories.NewAuditRepository())
}

func TestReviewRepository_RecalculateRating_MissingGig(t *testing.T) {
	db := setupTestDB(t)

	// A recompute that matches no gig row is a data integrity problem
	// and must not pass silently.
	err := repositories.NewReviewRepository().RecalculateGigRating(db, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReviewService_Create_RecomputesRating(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	gig := createTestGig(t, db, seller.ID, 100)

	ratings := []int{5, 4, 3}
	for i, rating := range ratings {
		buyer := createTestUser(t, db, "Buyer", fmt.Sprintf("buyer%d@example.com", i))
		order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCompleted)

		_, err := svc.Create(db, buyer.ID, &dto.CreateReviewRequest{
			OrderID: order.ID,
			Rating:  rating,
			Comment: "Good work",
		})
		require.NoError(t, err)
	}

	var got models.Gig
	require.NoError(t, db.First(&got, "id = ?", gig.ID).Error)
	assert.Equal(t, 4.0, got.AverageRating)
	assert.Equal(t, int64(3), got.ReviewsCount)
}

func TestReviewService_Create_RoundsToOneDecimal(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	gig := createTestGig(t, db, seller.ID, 100)

	// 5 and 4 average to 4.5; adding 5 gives 4.666... which rounds to 4.7.
	for i, rating := range []int{5, 4, 5} {
		buyer := createTestUser(t, db, "Buyer", fmt.Sprintf("buyer%d@example.com", i))
		order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCompleted)

		_, err := svc.Create(db, buyer.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: rating})
		require.NoError(t, err)
	}

	var got models.Gig
	require.NoError(t, db.First(&got, "id = ?", gig.ID).Error)
	assert.Equal(t, 4.7, got.AverageRating)
}

func TestReviewService_Create_ExcludesPrivateReviews(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	gig := createTestGig(t, db, seller.ID, 100)

	private := false
	buyer1 := createTestUser(t, db, "Buyer", "buyer1@example.com")
	order1 := createTestOrder(t, db, gig, buyer1.ID, models.OrderStatusCompleted)
	_, err := svc.Create(db, buyer1.ID, &dto.CreateReviewRequest{
		OrderID:  order1.ID,
		Rating:   1,
		IsPublic: &private,
	})
	require.NoError(t, err)

	buyer2 := createTestUser(t, db, "Buyer", "buyer2@example.com")
	order2 := createTestOrder(t, db, gig, buyer2.ID, models.OrderStatusCompleted)
	_, err = svc.Create(db, buyer2.ID, &dto.CreateReviewRequest{OrderID: order2.ID, Rating: 5})
	require.NoError(t, err)

	var got models.Gig
	require.NoError(t, db.First(&got, "id = ?", gig.ID).Error)
	assert.Equal(t, 5.0, got.AverageRating)
	assert.Equal(t, int64(1), got.ReviewsCount)
}

func TestReviewService_Create_RejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCompleted)

	_, err := svc.Create(db, buyer.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 5})
	require.NoError(t, err)

	_, err = svc.Create(db, buyer.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 4})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)
}

func TestReviewService_Create_RejectsIncompleteOrder(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusDelivered)

	_, err := svc.Create(db, buyer.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 5})
	assert.ErrorIs(t, err, apperrors.ErrIncompleteOrder)
}

func TestReviewService_Create_RejectsNonBuyer(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCompleted)

	_, err := svc.Create(db, seller.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 5})
	assert.ErrorIs(t, err, apperrors.ErrOnlyBuyerCanReview)
}

func TestReviewService_Update_RecomputesRating(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCompleted)

	review, err := svc.Create(db, buyer.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 5})
	require.NoError(t, err)

	newRating := 2
	_, err = svc.Update(db, buyer.ID, review.ID, &dto.UpdateReviewRequest{Rating: &newRating})
	require.NoError(t, err)

	var got models.Gig
	require.NoError(t, db.First(&got, "id = ?", gig.ID).Error)
	assert.Equal(t, 2.0, got.AverageRating)
	assert.Equal(t, int64(1), got.ReviewsCount)
}

func TestReviewService_Update_RejectsNonAuthor(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCompleted)

	review, err := svc.Create(db, buyer.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 5})
	require.NoError(t, err)

	newRating := 1
	_, err = svc.Update(db, seller.ID, review.ID, &dto.UpdateReviewRequest{Rating: &newRating})
	assert.ErrorIs(t, err, apperrors.ErrNotReviewer)
}

func TestReviewService_Delete_ResetsRatingWhenLastReviewGone(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newReviewService()

	seller := createTestUser(t, db, "Seller", "seller@example.com")
	buyer := createTestUser(t, db, "Buyer", "buyer@example.com")
	gig := createTestGig(t, db, seller.ID, 100)
	order := createTestOrder(t, db, gig, buyer.ID, models.OrderStatusCompleted)

	review, err := svc.Create(db, buyer.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 5})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(db, buyer.ID, review.ID))

	var got models.Gig
	require.NoError(t, db.First(&got, "id = ?", gig.ID).Error)
	assert.Equal(t, 0.0, got.AverageRating)
	assert.Equal(t, int64(0), got.ReviewsCount)
}
