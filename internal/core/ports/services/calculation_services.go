package services

import (
	"context"

	"github.com/agentdesk/agent_closings_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CalculationSvcFacade is the formula evaluation engine.
//
// ComputeResult deliberately returns a plain decimal with no error: the
// calculation path is best-effort summary math and degrades to zero on any
// lookup failure, unlike the strict write-path services.
type CalculationSvcFacade interface {
	// ComputeResult evaluates a provider's formula sheet over an optional
	// calendar date range. Nil bounds mean all-time-active.
	ComputeResult(ctx context.Context, providerID string, startDate, endDate *string) decimal.Decimal

	// ComputeResultsByCategory evaluates every active provider of a category.
	// Pooled sums are provider-independent and are fetched once per
	// transaction type for the whole batch.
	ComputeResultsByCategory(ctx context.Context, categoryName string, startDate, endDate *string) ([]dto.ProviderCalculationResult, error)
}
