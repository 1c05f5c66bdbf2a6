package repositories

import (
	"context"
	"time"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdjustmentRepositoryFacade defines the append-only adjustment audit trail.
type AdjustmentRepositoryFacade interface {
	// SaveAdjustment inserts the adjustment and updates the owning closing's
	// computed_result/variance within one database transaction, so a crash
	// cannot leave an adjustment without the matching closing update.
	SaveAdjustment(ctx context.Context, adjustment domain.Adjustment, newResult, newVariance decimal.Decimal, updatedByUserID string, updatedAt time.Time) error

	// FindAdjustmentsByClosing retrieves a closing's adjustments newest-first.
	FindAdjustmentsByClosing(ctx context.Context, closingID string) ([]domain.Adjustment, error)
}
