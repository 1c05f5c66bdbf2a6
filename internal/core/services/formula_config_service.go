package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/dto"
	"github.com/agentdesk/agent_closings_app/internal/middleware"
)

// formulaConfigService manages the per-(provider, transaction type) formula
// sheet the calculation engine evaluates.
type formulaConfigService struct {
	providerRepo portsrepo.ProviderReader
	txTypeRepo   portsrepo.TransactionTypeReader
	formulaRepo  portsrepo.FormulaConfigRepositoryFacade
}

// NewFormulaConfigService creates a new FormulaConfigService.
func NewFormulaConfigService(
	providerRepo portsrepo.ProviderReader,
	txTypeRepo portsrepo.TransactionTypeReader,
	formulaRepo portsrepo.FormulaConfigRepositoryFacade,
) portssvc.FormulaConfigSvcFacade {
	return &formulaConfigService{
		providerRepo: providerRepo,
		txTypeRepo:   txTypeRepo,
		formulaRepo:  formulaRepo,
	}
}

var _ portssvc.FormulaConfigSvcFacade = (*formulaConfigService)(nil)

// validateReferences checks that the provider and transaction type exist.
func (s *formulaConfigService) validateReferences(ctx context.Context, providerID, transactionTypeID string) error {
	if _, err := s.providerRepo.FindProviderByID(ctx, providerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("provider %s not found: %w", providerID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to resolve provider %s: %w", providerID, err)
	}
	if _, err := s.txTypeRepo.FindTransactionTypeByID(ctx, transactionTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("transaction type %s not found: %w", transactionTypeID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to resolve transaction type %s: %w", transactionTypeID, err)
	}
	return nil
}

// checkPairUniqueness rejects a second config for the same
// (provider, transaction type) pair, excluding excludeID when re-checking on
// update.
func (s *formulaConfigService) checkPairUniqueness(ctx context.Context, providerID, transactionTypeID string, excludeID *string) error {
	_, err := s.formulaRepo.FindFormulaConfigByPair(ctx, providerID, transactionTypeID, excludeID)
	if err == nil {
		return fmt.Errorf("%w: a formula config already exists for provider %s and transaction type %s", apperrors.ErrDuplicate, providerID, transactionTypeID)
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("failed to check formula config uniqueness: %w", err)
}

// CreateFormulaConfig creates a formula config for a (provider, transaction
// type) pair.
func (s *formulaConfigService) CreateFormulaConfig(ctx context.Context, req dto.CreateFormulaConfigRequest, creatorUserID string) (*domain.FormulaConfig, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateReferences(ctx, req.ProviderID, req.TransactionTypeID); err != nil {
		return nil, err
	}
	if err := s.checkPairUniqueness(ctx, req.ProviderID, req.TransactionTypeID, nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	config := domain.FormulaConfig{
		FormulaConfigID:      uuid.NewString(),
		ProviderID:           req.ProviderID,
		TransactionTypeID:    req.TransactionTypeID,
		IncludeInCalculation: req.IncludeInCalculation,
		Multiplier:           req.Multiplier,
		Pooled:               req.Pooled,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.formulaRepo.SaveFormulaConfig(ctx, config); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a formula config already exists for provider %s and transaction type %s", apperrors.ErrDuplicate, req.ProviderID, req.TransactionTypeID)
		}
		logger.Error("Failed to save formula config", slog.String("provider_id", req.ProviderID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save formula config: %w", err)
	}

	logger.Info("Formula config created",
		slog.String("formula_config_id", config.FormulaConfigID),
		slog.String("provider_id", config.ProviderID),
		slog.String("transaction_type_id", config.TransactionTypeID))
	return &config, nil
}

// GetFormulaConfigByID retrieves a single formula config.
func (s *formulaConfigService) GetFormulaConfigByID(ctx context.Context, formulaConfigID string) (*domain.FormulaConfig, error) {
	config, err := s.formulaRepo.FindFormulaConfigByID(ctx, formulaConfigID)
	if err != nil {
		return nil, fmt.Errorf("failed to find formula config %s: %w", formulaConfigID, err)
	}
	return config, nil
}

// ListFormulaConfigs retrieves all formula configs.
func (s *formulaConfigService) ListFormulaConfigs(ctx context.Context) ([]domain.FormulaConfig, error) {
	configs, err := s.formulaRepo.ListFormulaConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list formula configs: %w", err)
	}
	return configs, nil
}

// ListFormulaConfigsByProvider retrieves one provider's formula sheet.
func (s *formulaConfigService) ListFormulaConfigsByProvider(ctx context.Context, providerID string) ([]domain.FormulaConfig, error) {
	configs, err := s.formulaRepo.FindFormulaConfigsByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list formula configs for provider %s: %w", providerID, err)
	}
	return configs, nil
}

// UpdateFormulaConfig applies a partial update to a formula config.
func (s *formulaConfigService) UpdateFormulaConfig(ctx context.Context, formulaConfigID string, req dto.UpdateFormulaConfigRequest, updaterUserID string) (*domain.FormulaConfig, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.formulaRepo.FindFormulaConfigByID(ctx, formulaConfigID)
	if err != nil {
		return nil, fmt.Errorf("failed to find formula config %s: %w", formulaConfigID, err)
	}

	updated := *existing
	pairChanged := false

	if req.ProviderID != nil && *req.ProviderID != existing.ProviderID {
		updated.ProviderID = *req.ProviderID
		pairChanged = true
	}
	if req.TransactionTypeID != nil && *req.TransactionTypeID != existing.TransactionTypeID {
		updated.TransactionTypeID = *req.TransactionTypeID
		pairChanged = true
	}
	if pairChanged {
		if err := s.validateReferences(ctx, updated.ProviderID, updated.TransactionTypeID); err != nil {
			return nil, err
		}
		if err := s.checkPairUniqueness(ctx, updated.ProviderID, updated.TransactionTypeID, &formulaConfigID); err != nil {
			return nil, err
		}
	}
	if req.IncludeInCalculation != nil {
		updated.IncludeInCalculation = *req.IncludeInCalculation
	}
	if req.Multiplier != nil {
		updated.Multiplier = *req.Multiplier
	}
	if req.Pooled != nil {
		updated.Pooled = *req.Pooled
	}

	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = updaterUserID

	if err := s.formulaRepo.UpdateFormulaConfig(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a formula config already exists for provider %s and transaction type %s", apperrors.ErrDuplicate, updated.ProviderID, updated.TransactionTypeID)
		}
		logger.Error("Failed to update formula config", slog.String("formula_config_id", formulaConfigID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update formula config %s: %w", formulaConfigID, err)
	}

	logger.Info("Formula config updated", slog.String("formula_config_id", formulaConfigID))
	return &updated, nil
}

// DeleteFormulaConfig removes a formula config.
func (s *formulaConfigService) DeleteFormulaConfig(ctx context.Context, formulaConfigID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.formulaRepo.DeleteFormulaConfig(ctx, formulaConfigID); err != nil {
		return fmt.Errorf("failed to delete formula config %s: %w", formulaConfigID, err)
	}

	logger.Info("Formula config deleted", slog.String("formula_config_id", formulaConfigID))
	return nil
}

// BulkUpsertFormulaConfigs applies a provider's whole formula sheet in one
// call. Entries are applied independently; each result reports its own
// outcome, so a bad row never blocks the rest of the sheet.
func (s *formulaConfigService) BulkUpsertFormulaConfigs(ctx context.Context, providerID string, entries []dto.FormulaConfigEntry, updaterUserID string) ([]dto.FormulaConfigUpsertResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.providerRepo.FindProviderByID(ctx, providerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("provider %s not found: %w", providerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve provider %s: %w", providerID, err)
	}

	results := make([]dto.FormulaConfigUpsertResult, 0, len(entries))
	for _, entry := range entries {
		config, err := s.upsertEntry(ctx, providerID, entry, updaterUserID)
		result := dto.FormulaConfigUpsertResult{TransactionTypeID: entry.TransactionTypeID}
		if err != nil {
			result.Error = err.Error()
		} else {
			resp := dto.ToFormulaConfigResponse(config)
			result.Config = &resp
		}
		results = append(results, result)
	}

	logger.Info("Formula sheet upserted",
		slog.String("provider_id", providerID),
		slog.Int("entries", len(entries)))
	return results, nil
}

// upsertEntry creates or updates the config for one transaction type of the
// provider's sheet.
func (s *formulaConfigService) upsertEntry(ctx context.Context, providerID string, entry dto.FormulaConfigEntry, updaterUserID string) (*domain.FormulaConfig, error) {
	if _, err := s.txTypeRepo.FindTransactionTypeByID(ctx, entry.TransactionTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("transaction type %s not found: %w", entry.TransactionTypeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve transaction type %s: %w", entry.TransactionTypeID, err)
	}

	now := time.Now().UTC()

	existing, err := s.formulaRepo.FindFormulaConfigByPair(ctx, providerID, entry.TransactionTypeID, nil)
	switch {
	case err == nil:
		updated := *existing
		updated.IncludeInCalculation = entry.IncludeInCalculation
		updated.Multiplier = entry.Multiplier
		updated.Pooled = entry.Pooled
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = updaterUserID
		if err := s.formulaRepo.UpdateFormulaConfig(ctx, updated); err != nil {
			return nil, fmt.Errorf("failed to update formula config for transaction type %s: %w", entry.TransactionTypeID, err)
		}
		return &updated, nil

	case errors.Is(err, apperrors.ErrNotFound):
		config := domain.FormulaConfig{
			FormulaConfigID:      uuid.NewString(),
			ProviderID:           providerID,
			TransactionTypeID:    entry.TransactionTypeID,
			IncludeInCalculation: entry.IncludeInCalculation,
			Multiplier:           entry.Multiplier,
			Pooled:               entry.Pooled,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     updaterUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: updaterUserID,
			},
		}
		if err := s.formulaRepo.SaveFormulaConfig(ctx, config); err != nil {
			return nil, fmt.Errorf("failed to save formula config for transaction type %s: %w", entry.TransactionTypeID, err)
		}
		return &config, nil

	default:
		return nil, fmt.Errorf("failed to look up formula config for transaction type %s: %w", entry.TransactionTypeID, err)
	}
}
