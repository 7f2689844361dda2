package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigflow_backend/internal/config"
	"gigflow_backend/internal/lifecycle"
	"gigflow_backend/internal/logger"
	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type OrderService interface {
	Create(db *gorm.DB, buyerID string, req *dto.CreateOrderRequest) (*models.Order, error)
	GetByID(db *gorm.DB, userID, orderID string) (*models.Order, error)
	Update(db *gorm.DB, userID, orderID string, req *dto.UpdateOrderRequest) (*models.Order, error)
	Delete(db *gorm.DB, userID, orderID string) error
	ListForUser(db *gorm.DB, userID string, query *dto.OrderListQuery, p dto.Pagination) (*dto.PaginatedResponse, error)
}

type orderService struct {
	orderRepo *repositories.OrderRepository
	gigRepo   *repositories.GigRepository
	txRepo    *repositories.TransactionRepository
	msgRepo   *repositories.MessageRepository
	auditRepo *repositories.AuditRepository
}

func NewOrderService(
	orderRepo *repositories.OrderRepository,
	gigRepo *repositories.GigRepository,
	txRepo *repositories.TransactionRepository,
	msgRepo *repositories.MessageRepository,
	auditRepo *repositories.AuditRepository,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		gigRepo:   gigRepo,
		txRepo:    txRepo,
		msgRepo:   msgRepo,
		auditRepo: auditRepo,
	}
}

func (s *orderService) Create(db *gorm.DB, buyerID string, req *dto.CreateOrderRequest) (*models.Order, error) {
	gig, err := s.gigRepo.GetByID(db, req.GigID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !gig.IsActive {
		return nil, apperrors.ErrGigInactive
	}
	if gig.UserID == buyerID {
		return nil, apperrors.NewBadRequestError("cannot order your own gig")
	}

	cfg := config.GetConfig()
	order := &models.Order{
		GigID:             gig.ID,
		BuyerID:           buyerID,
		SellerID:          gig.UserID,
		TotalAmount:       gig.Price,
		Status:            models.OrderStatusPending,
		DeliveryDate:      time.Now().AddDate(0, 0, gig.DeliveryTime),
		Requirements:      req.Requirements,
		BuyerInstructions: req.BuyerInstructions,
		RevisionsAllowed:  cfg.Orders.DefaultRevisions,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}
		fee := order.TotalAmount * cfg.Payments.PlatformFeeRate
		payment := &models.Transaction{
			OrderID:      order.ID,
			BuyerID:      order.BuyerID,
			SellerID:     order.SellerID,
			Type:         models.TransactionTypePayment,
			Status:       models.PaymentStatusPaid,
			Amount:       order.TotalAmount,
			PlatformFee:  fee,
			SellerAmount: order.TotalAmount - fee,
			Currency:     cfg.Payments.Currency,
			Reference:    uuid.NewString(),
			IsEscrow:     true,
			Notes:        "payment held in escrow",
		}
		if err := s.txRepo.Create(tx, payment); err != nil {
			return err
		}
		return s.audit(tx, buyerID, "order.created", order.ID, nil, order)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("order created", "order_id", order.ID, "gig_id", gig.ID, "buyer_id", buyerID)
	return order, nil
}

func (s *orderService) GetByID(db *gorm.DB, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDFull(db, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !order.IsParticipant(userID) {
		return nil, apperrors.ErrNotOrderParticipant
	}
	return order, nil
}

func (s *orderService) Update(db *gorm.DB, userID, orderID string, req *dto.UpdateOrderRequest) (*models.Order, error) {
	var updated *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.GetByIDForUpdate(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound(err)
		}
		if err != nil {
			return apperrors.InternalError(err)
		}
		if !order.IsParticipant(userID) {
			return apperrors.ErrNotOrderParticipant
		}

		before := *order

		if req.Status != "" {
			requested := models.OrderStatus(req.Status)
			if err := s.transition(tx, order, requested, userID); err != nil {
				return err
			}
		}
		if req.Requirements != nil {
			order.Requirements = *req.Requirements
		}
		if req.BuyerInstructions != nil {
			if order.BuyerID != userID {
				return apperrors.ErrNotOrderParticipant
			}
			order.BuyerInstructions = *req.BuyerInstructions
		}
		if req.SellerNotes != nil {
			if order.SellerID != userID {
				return apperrors.ErrNotOrderParticipant
			}
			order.SellerNotes = *req.SellerNotes
		}

		if err := s.orderRepo.Update(tx, order); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.audit(tx, userID, "order.updated", order.ID, &before, order); err != nil {
			return apperrors.InternalError(err)
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// transition applies one status change inside the caller's transaction.
// Side effects of reaching a terminal state ride along: completion
// flags the order and releases escrow, cancellation refunds the buyer.
func (s *orderService) transition(tx *gorm.DB, order *models.Order, requested models.OrderStatus, userID string) error {
	isBuyer := order.BuyerID == userID
	if err := lifecycle.Transition(order.Status, requested, isBuyer); err != nil {
		return err
	}

	from := order.Status
	order.Status = requested

	switch requested {
	case models.OrderStatusCompleted:
		now := time.Now()
		order.IsCompleted = true
		order.CompletedAt = &now
		if err := s.releaseEscrow(tx, order); err != nil {
			return err
		}
	case models.OrderStatusCancelled:
		if err := s.refund(tx, order); err != nil {
			return err
		}
	}

	logger.Info("order status changed",
		"order_id", order.ID, "from", from, "to", requested, "actor_id", userID)
	return nil
}

func (s *orderService) releaseEscrow(tx *gorm.DB, order *models.Order) error {
	payment, err := s.txRepo.GetHeldPayment(tx, order.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.InternalError(err)
	}

	now := time.Now()
	payment.EscrowReleasedAt = &now
	if err := s.txRepo.Update(tx, payment); err != nil {
		return apperrors.InternalError(err)
	}

	release := &models.Transaction{
		OrderID:      order.ID,
		BuyerID:      order.BuyerID,
		SellerID:     order.SellerID,
		Type:         models.TransactionTypeRelease,
		Status:       models.PaymentStatusPaid,
		Amount:       payment.SellerAmount,
		SellerAmount: payment.SellerAmount,
		Currency:     payment.Currency,
		Reference:    uuid.NewString(),
		Notes:        "escrow release to seller",
	}
	if err := s.txRepo.Create(tx, release); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *orderService) refund(tx *gorm.DB, order *models.Order) error {
	payment, err := s.txRepo.GetHeldPayment(tx, order.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.InternalError(err)
	}

	now := time.Now()
	payment.Status = models.PaymentStatusRefunded
	payment.EscrowReleasedAt = &now
	if err := s.txRepo.Update(tx, payment); err != nil {
		return apperrors.InternalError(err)
	}

	refund := &models.Transaction{
		OrderID:   order.ID,
		BuyerID:   order.BuyerID,
		SellerID:  order.SellerID,
		Type:      models.TransactionTypeRefund,
		Status:    models.PaymentStatusPaid,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Reference: uuid.NewString(),
		Notes:     "refund to buyer",
	}
	if err := s.txRepo.Create(tx, refund); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *orderService) Delete(db *gorm.DB, userID, orderID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.GetByIDForUpdate(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound(err)
		}
		if err != nil {
			return apperrors.InternalError(err)
		}
		if !order.IsParticipant(userID) {
			return apperrors.ErrNotOrderParticipant
		}
		if order.Status != models.OrderStatusPending {
			return apperrors.ErrOrderNotDeletable
		}

		// Dependent rows go first or the order delete trips their
		// foreign keys. The held payment is voided with the order;
		// the audit entry keeps the snapshot.
		if err := s.msgRepo.DeleteByOrder(tx, orderID); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.txRepo.DeleteByOrder(tx, orderID); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.orderRepo.Delete(tx, orderID); err != nil {
			return apperrors.InternalError(err)
		}
		return s.audit(tx, userID, "order.deleted", order.ID, order, nil)
	})
}

func (s *orderService) ListForUser(db *gorm.DB, userID string, query *dto.OrderListQuery, p dto.Pagination) (*dto.PaginatedResponse, error) {
	orders, total, err := s.orderRepo.ListForUser(db, userID, query.Role, models.OrderStatus(query.Status), p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(orders, total, p), nil
}

func (s *orderService) audit(tx *gorm.DB, userID, action, entityID string, oldValue, newValue interface{}) error {
	entry := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: "order",
		EntityID:   entityID,
	}
	if oldValue != nil {
		entry.OldValues, _ = json.Marshal(oldValue)
	}
	if newValue != nil {
		entry.NewValues, _ = json.Marshal(newValue)
	}
	return s.auditRepo.Create(tx, entry)
}
