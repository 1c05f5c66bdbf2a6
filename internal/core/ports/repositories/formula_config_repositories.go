package repositories

import (
	"context"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
)

// FormulaConfigReader defines read operations for formula configuration data.
type FormulaConfigReader interface {
	// FindFormulaConfigByID retrieves a formula config by its identifier.
	FindFormulaConfigByID(ctx context.Context, formulaConfigID string) (*domain.FormulaConfig, error)

	// FindFormulaConfigsByProvider retrieves every config of one provider.
	FindFormulaConfigsByProvider(ctx context.Context, providerID string) ([]domain.FormulaConfig, error)

	// FindFormulaConfigByPair retrieves the config for a (provider, transaction
	// type) pair, excluding excludeID when non-nil (used by uniqueness
	// re-checks on update). Returns ErrNotFound when no such config exists.
	FindFormulaConfigByPair(ctx context.Context, providerID, transactionTypeID string, excludeID *string) (*domain.FormulaConfig, error)

	// ListFormulaConfigs retrieves all formula configs.
	ListFormulaConfigs(ctx context.Context) ([]domain.FormulaConfig, error)
}

// FormulaConfigWriter defines write operations for formula configuration data.
type FormulaConfigWriter interface {
	// SaveFormulaConfig inserts a new config. A duplicate
	// (provider, transaction type) pair surfaces as ErrDuplicate.
	SaveFormulaConfig(ctx context.Context, config domain.FormulaConfig) error

	// UpdateFormulaConfig persists the full state of an existing config.
	UpdateFormulaConfig(ctx context.Context, config domain.FormulaConfig) error

	// DeleteFormulaConfig removes a config. Returns ErrNotFound when absent.
	DeleteFormulaConfig(ctx context.Context, formulaConfigID string) error
}

// FormulaConfigRepositoryFacade combines all formula config repository interfaces.
type FormulaConfigRepositoryFacade interface {
	FormulaConfigReader
	FormulaConfigWriter
}
