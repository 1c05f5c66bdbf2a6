package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	"github.com/agentdesk/agent_closings_app/internal/models"
	"github.com/agentdesk/agent_closings_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFormulaConfigRepository struct {
	BaseRepository
}

// newPgxFormulaConfigRepository creates a new repository for formula config data.
func newPgxFormulaConfigRepository(pool *pgxpool.Pool) portsrepo.FormulaConfigRepositoryFacade {
	return &PgxFormulaConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FormulaConfigRepositoryFacade = (*PgxFormulaConfigRepository)(nil)

func scanFormulaConfig(row pgx.Row) (models.FormulaConfig, error) {
	var config models.FormulaConfig
	err := row.Scan(
		&config.FormulaConfigID,
		&config.ProviderID,
		&config.TransactionTypeID,
		&config.IncludeInCalculation,
		&config.Multiplier,
		&config.Pooled,
		&config.CreatedAt,
		&config.CreatedBy,
		&config.LastUpdatedAt,
		&config.LastUpdatedBy,
	)
	return config, err
}

const formulaConfigColumns = `formula_config_id, provider_id, transaction_type_id, include_in_calculation, multiplier, pooled, created_at, created_by, last_updated_at, last_updated_by`

// SaveFormulaConfig inserts a new formula config.
func (r *PgxFormulaConfigRepository) SaveFormulaConfig(ctx context.Context, config domain.FormulaConfig) error {
	modelCfg := mapping.ToModelFormulaConfig(config)

	query := `
		INSERT INTO formula_configs (` + formulaConfigColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCfg.FormulaConfigID,
		modelCfg.ProviderID,
		modelCfg.TransactionTypeID,
		modelCfg.IncludeInCalculation,
		modelCfg.Multiplier,
		modelCfg.Pooled,
		modelCfg.CreatedAt,
		modelCfg.CreatedBy,
		modelCfg.LastUpdatedAt,
		modelCfg.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: formula config for provider %s and transaction type %s already exists", apperrors.ErrDuplicate, modelCfg.ProviderID, modelCfg.TransactionTypeID)
		}
		return fmt.Errorf("failed to save formula config %s: %w", modelCfg.FormulaConfigID, err)
	}
	return nil
}

// FindFormulaConfigByID retrieves a formula config by its identifier.
func (r *PgxFormulaConfigRepository) FindFormulaConfigByID(ctx context.Context, formulaConfigID string) (*domain.FormulaConfig, error) {
	query := `
		SELECT ` + formulaConfigColumns + `
		FROM formula_configs
		WHERE formula_config_id = $1;
	`
	modelCfg, err := scanFormulaConfig(r.Pool.QueryRow(ctx, query, formulaConfigID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find formula config by id %s: %w", formulaConfigID, err)
	}

	domainCfg := mapping.ToDomainFormulaConfig(modelCfg)
	return &domainCfg, nil
}

// FindFormulaConfigByPair retrieves the config for a (provider, transaction
// type) pair, skipping excludeID when non-nil.
func (r *PgxFormulaConfigRepository) FindFormulaConfigByPair(ctx context.Context, providerID, transactionTypeID string, excludeID *string) (*domain.FormulaConfig, error) {
	query := `
		SELECT ` + formulaConfigColumns + `
		FROM formula_configs
		WHERE provider_id = $1
		  AND transaction_type_id = $2
		  AND ($3::text IS NULL OR formula_config_id <> $3);
	`
	modelCfg, err := scanFormulaConfig(r.Pool.QueryRow(ctx, query, providerID, transactionTypeID, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find formula config for provider %s and transaction type %s: %w", providerID, transactionTypeID, err)
	}

	domainCfg := mapping.ToDomainFormulaConfig(modelCfg)
	return &domainCfg, nil
}

// FindFormulaConfigsByProvider retrieves every config of one provider.
func (r *PgxFormulaConfigRepository) FindFormulaConfigsByProvider(ctx context.Context, providerID string) ([]domain.FormulaConfig, error) {
	query := `
		SELECT ` + formulaConfigColumns + `
		FROM formula_configs
		WHERE provider_id = $1
		ORDER BY transaction_type_id;
	`
	rows, err := r.Pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query formula configs for provider %s: %w", providerID, err)
	}
	defer rows.Close()

	modelConfigs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FormulaConfig, error) {
		return scanFormulaConfig(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.FormulaConfig{}, nil
		}
		return nil, fmt.Errorf("failed to scan formula configs: %w", err)
	}

	return mapping.ToDomainFormulaConfigSlice(modelConfigs), nil
}

// ListFormulaConfigs retrieves all formula configs.
func (r *PgxFormulaConfigRepository) ListFormulaConfigs(ctx context.Context) ([]domain.FormulaConfig, error) {
	query := `
		SELECT ` + formulaConfigColumns + `
		FROM formula_configs
		ORDER BY provider_id, transaction_type_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query formula configs: %w", err)
	}
	defer rows.Close()

	modelConfigs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FormulaConfig, error) {
		return scanFormulaConfig(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.FormulaConfig{}, nil
		}
		return nil, fmt.Errorf("failed to scan formula configs: %w", err)
	}

	return mapping.ToDomainFormulaConfigSlice(modelConfigs), nil
}

// UpdateFormulaConfig persists the full state of an existing config.
func (r *PgxFormulaConfigRepository) UpdateFormulaConfig(ctx context.Context, config domain.FormulaConfig) error {
	modelCfg := mapping.ToModelFormulaConfig(config)

	query := `
		UPDATE formula_configs
		SET provider_id = $2,
			transaction_type_id = $3,
			include_in_calculation = $4,
			multiplier = $5,
			pooled = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE formula_config_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelCfg.FormulaConfigID,
		modelCfg.ProviderID,
		modelCfg.TransactionTypeID,
		modelCfg.IncludeInCalculation,
		modelCfg.Multiplier,
		modelCfg.Pooled,
		modelCfg.LastUpdatedAt,
		modelCfg.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: formula config for provider %s and transaction type %s already exists", apperrors.ErrDuplicate, modelCfg.ProviderID, modelCfg.TransactionTypeID)
		}
		return fmt.Errorf("failed to update formula config %s: %w", modelCfg.FormulaConfigID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFormulaConfig removes a formula config.
func (r *PgxFormulaConfigRepository) DeleteFormulaConfig(ctx context.Context, formulaConfigID string) error {
	query := `DELETE FROM formula_configs WHERE formula_config_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, formulaConfigID)
	if err != nil {
		return fmt.Errorf("failed to delete formula config %s: %w", formulaConfigID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
