package repositories

import (
	"context"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines the read-only aggregation contract against the
// transaction ledger. Date bounds are optional calendar-date strings
// (YYYY-MM-DD, inclusive); nil means no bound on that side. Every query
// considers active transactions only.
type LedgerReader interface {
	// SumActiveByType sums active transactions of a type across all
	// providers (the pooled sum).
	SumActiveByType(ctx context.Context, transactionTypeID string, startDate, endDate *string) (decimal.Decimal, error)

	// SumActiveByProviderAndType sums active transactions of a type for one
	// provider only.
	SumActiveByProviderAndType(ctx context.Context, providerID, transactionTypeID string, startDate, endDate *string) (decimal.Decimal, error)

	// FindEntriesByProviderAndDateRange retrieves a provider's active ledger
	// entries (type and value) in one pass.
	FindEntriesByProviderAndDateRange(ctx context.Context, providerID string, startDate, endDate *string) ([]domain.LedgerEntry, error)
}
