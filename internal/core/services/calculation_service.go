package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/dto"
	"github.com/agentdesk/agent_closings_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// calculationService evaluates formula sheets against the transaction ledger.
//
// Every lookup failure inside a calculation degrades to a zero contribution
// instead of propagating: the calculation is best-effort summary math, and
// report aggregation must stay resilient to stale provider references. Write
// operations (closing creation and updates) do their own strict validation
// before trusting a computed value.
type calculationService struct {
	providerRepo portsrepo.ProviderReader
	formulaRepo  portsrepo.FormulaConfigReader
	ledgerRepo   portsrepo.LedgerReader
}

// NewCalculationService creates a new CalculationService.
func NewCalculationService(providerRepo portsrepo.ProviderReader, formulaRepo portsrepo.FormulaConfigReader, ledgerRepo portsrepo.LedgerReader) portssvc.CalculationSvcFacade {
	return &calculationService{
		providerRepo: providerRepo,
		formulaRepo:  formulaRepo,
		ledgerRepo:   ledgerRepo,
	}
}

var _ portssvc.CalculationSvcFacade = (*calculationService)(nil)

// ComputeResult evaluates one provider's formula sheet over an optional date
// range. An unknown provider contributes zero rather than failing.
func (s *calculationService) ComputeResult(ctx context.Context, providerID string, startDate, endDate *string) decimal.Decimal {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.providerRepo.FindProviderByID(ctx, providerID); err != nil {
		logger.Warn("Provider lookup failed during calculation, contributing zero",
			slog.String("provider_id", providerID), slog.String("error", err.Error()))
		return decimal.Zero
	}

	configs, err := s.formulaRepo.FindFormulaConfigsByProvider(ctx, providerID)
	if err != nil {
		logger.Warn("Formula config lookup failed during calculation, contributing zero",
			slog.String("provider_id", providerID), slog.String("error", err.Error()))
		return decimal.Zero
	}

	// Pooled sums are not shared with any other provider here, a fresh
	// cache per call is enough.
	return s.evaluate(ctx, providerID, configs, startDate, endDate, make(map[string]decimal.Decimal))
}

// ComputeResultsByCategory evaluates every active provider of a category with
// a single pooled-sum fetch per transaction type. The pooled values are
// snapshotted for the whole batch, so one report generation sees one
// consistent pooled sum per type even if the ledger moves underneath it.
func (s *calculationService) ComputeResultsByCategory(ctx context.Context, categoryName string, startDate, endDate *string) ([]dto.ProviderCalculationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	providers, err := s.providerRepo.ListProvidersByCategory(ctx, categoryName, true)
	if err != nil {
		logger.Error("Failed to list providers for batch calculation",
			slog.String("category", categoryName), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list providers for category %s: %w", categoryName, err)
	}

	pooledSums := make(map[string]decimal.Decimal)
	results := make([]dto.ProviderCalculationResult, 0, len(providers))
	for _, provider := range providers {
		configs, cfgErr := s.formulaRepo.FindFormulaConfigsByProvider(ctx, provider.ProviderID)
		if cfgErr != nil {
			logger.Warn("Formula config lookup failed during batch calculation, contributing zero",
				slog.String("provider_id", provider.ProviderID), slog.String("error", cfgErr.Error()))
			results = append(results, dto.ProviderCalculationResult{
				ProviderID:   provider.ProviderID,
				ProviderName: provider.Name,
				Result:       decimal.Zero,
			})
			continue
		}
		results = append(results, dto.ProviderCalculationResult{
			ProviderID:   provider.ProviderID,
			ProviderName: provider.Name,
			Result:       s.evaluate(ctx, provider.ProviderID, configs, startDate, endDate, pooledSums),
		})
	}

	return results, nil
}

// evaluate applies the included configs of one provider. pooledSums caches
// the provider-independent pooled sum per transaction type across calls.
// Intermediate sums keep full precision; monetary rounding belongs to
// display/export, never to the calculation.
func (s *calculationService) evaluate(ctx context.Context, providerID string, configs []domain.FormulaConfig, startDate, endDate *string, pooledSums map[string]decimal.Decimal) decimal.Decimal {
	logger := middleware.GetLoggerFromCtx(ctx)

	total := decimal.Zero
	individualMultipliers := make(map[string]decimal.Decimal)

	for _, cfg := range configs {
		if !cfg.IncludeInCalculation {
			continue
		}
		if !cfg.Pooled {
			individualMultipliers[cfg.TransactionTypeID] = cfg.Multiplier
			continue
		}

		sum, cached := pooledSums[cfg.TransactionTypeID]
		if !cached {
			var err error
			sum, err = s.ledgerRepo.SumActiveByType(ctx, cfg.TransactionTypeID, startDate, endDate)
			if err != nil {
				logger.Warn("Pooled sum failed during calculation, contributing zero",
					slog.String("transaction_type_id", cfg.TransactionTypeID), slog.String("error", err.Error()))
				sum = decimal.Zero
			}
			pooledSums[cfg.TransactionTypeID] = sum
		}
		total = total.Add(sum.Mul(cfg.Multiplier))
	}

	if len(individualMultipliers) == 0 {
		return total
	}

	// One pass over the provider's own entries covers every individual
	// config at once.
	entries, err := s.ledgerRepo.FindEntriesByProviderAndDateRange(ctx, providerID, startDate, endDate)
	if err != nil {
		logger.Warn("Ledger entry fetch failed during calculation, contributing zero",
			slog.String("provider_id", providerID), slog.String("error", err.Error()))
		return total
	}
	for _, entry := range entries {
		multiplier, included := individualMultipliers[entry.TransactionTypeID]
		if !included {
			continue
		}
		total = total.Add(entry.Value.Mul(multiplier))
	}

	return total
}
