package services

import (
	"context"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/agentdesk/agent_closings_app/internal/dto"
)

// FormulaConfigSvcFacade manages per-(provider, transaction type) formula
// configuration.
type FormulaConfigSvcFacade interface {
	// CreateFormulaConfig creates a config. ErrNotFound when the provider or
	// transaction type is unknown; ErrDuplicate when the pair already has one.
	CreateFormulaConfig(ctx context.Context, req dto.CreateFormulaConfigRequest, creatorUserID string) (*domain.FormulaConfig, error)

	// GetFormulaConfigByID retrieves a single config.
	GetFormulaConfigByID(ctx context.Context, formulaConfigID string) (*domain.FormulaConfig, error)

	// ListFormulaConfigs retrieves all configs.
	ListFormulaConfigs(ctx context.Context) ([]domain.FormulaConfig, error)

	// ListFormulaConfigsByProvider retrieves one provider's configs.
	ListFormulaConfigsByProvider(ctx context.Context, providerID string) ([]domain.FormulaConfig, error)

	// UpdateFormulaConfig applies a partial update, re-checking pair
	// uniqueness (excluding the row itself) when the pair changes.
	UpdateFormulaConfig(ctx context.Context, formulaConfigID string, req dto.UpdateFormulaConfigRequest, updaterUserID string) (*domain.FormulaConfig, error)

	// DeleteFormulaConfig removes a config.
	DeleteFormulaConfig(ctx context.Context, formulaConfigID string) error

	// BulkUpsertFormulaConfigs applies a provider's whole formula sheet:
	// update-in-place per transaction type when a config exists, create
	// otherwise. Entries are applied independently; the per-entry results
	// report which succeeded and which failed.
	BulkUpsertFormulaConfigs(ctx context.Context, providerID string, entries []dto.FormulaConfigEntry, updaterUserID string) ([]dto.FormulaConfigUpsertResult, error)
}
