package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gigflow_backend/internal/logger"
	"gigflow_backend/internal/repositories"
)

// EscrowWorker sweeps up escrow payments whose orders completed but
// whose release never landed, and prunes expired refresh tokens.
type EscrowWorker struct {
	db        *gorm.DB
	tokenRepo *repositories.RefreshTokenRepository
	interval  time.Duration
}

func NewEscrowWorker(db *gorm.DB, tokenRepo *repositories.RefreshTokenRepository, interval time.Duration) *EscrowWorker {
	return &EscrowWorker{db: db, tokenRepo: tokenRepo, interval: interval}
}

func (w *EscrowWorker) Start(ctx context.Context) {
	go w.sweepEscrow(ctx)
	go w.pruneRefreshTokens(ctx)
}

func (w *EscrowWorker) sweepEscrow(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("escrow worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE transactions
				SET escrow_released_at = NOW(), updated_at = NOW()
				WHERE is_escrow = true
				AND escrow_released_at IS NULL
				AND status = 'paid'
				AND order_id IN (
					SELECT id FROM orders WHERE status = 'completed'
				)
			`)
			if result.Error != nil {
				logger.Error("escrow sweep failed", "error", result.Error)
			} else if result.RowsAffected > 0 {
				logger.Info("released stale escrow payments", "count", result.RowsAffected)
			}
		}
	}
}

func (w *EscrowWorker) pruneRefreshTokens(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.tokenRepo.DeleteExpired(w.db)
			if err != nil {
				logger.Error("refresh token prune failed", "error", err)
			} else if count > 0 {
				logger.Info("pruned expired refresh tokens", "count", count)
			}
		}
	}
}
