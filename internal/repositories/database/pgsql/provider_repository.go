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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProviderRepository struct {
	BaseRepository
}

// newPgxProviderRepository creates a new repository for provider directory reads.
func newPgxProviderRepository(pool *pgxpool.Pool) portsrepo.ProviderReader {
	return &PgxProviderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProviderReader = (*PgxProviderRepository)(nil)

// FindProviderByID retrieves a provider by its identifier.
func (r *PgxProviderRepository) FindProviderByID(ctx context.Context, providerID string) (*domain.Provider, error) {
	query := `
		SELECT provider_id, name, category_name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM providers
		WHERE provider_id = $1;
	`
	var modelProv models.Provider
	err := r.Pool.QueryRow(ctx, query, providerID).Scan(
		&modelProv.ProviderID,
		&modelProv.Name,
		&modelProv.CategoryName,
		&modelProv.IsActive,
		&modelProv.CreatedAt,
		&modelProv.CreatedBy,
		&modelProv.LastUpdatedAt,
		&modelProv.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find provider by id %s: %w", providerID, err)
	}

	domainProv := mapping.ToDomainProvider(modelProv)
	return &domainProv, nil
}

// ListProvidersByCategory retrieves providers of a category, optionally
// restricted to active ones.
func (r *PgxProviderRepository) ListProvidersByCategory(ctx context.Context, categoryName string, activeOnly bool) ([]domain.Provider, error) {
	query := `
		SELECT provider_id, name, category_name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM providers
		WHERE category_name = $1 AND ($2 = false OR is_active = true)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, categoryName, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers for category %s: %w", categoryName, err)
	}
	defer rows.Close()

	modelProviders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Provider, error) {
		var provider models.Provider
		err := row.Scan(
			&provider.ProviderID,
			&provider.Name,
			&provider.CategoryName,
			&provider.IsActive,
			&provider.CreatedAt,
			&provider.CreatedBy,
			&provider.LastUpdatedAt,
			&provider.LastUpdatedBy,
		)
		return provider, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Provider{}, nil
		}
		return nil, fmt.Errorf("failed to scan providers: %w", err)
	}

	return mapping.ToDomainProviderSlice(modelProviders), nil
}

type PgxTransactionTypeRepository struct {
	BaseRepository
}

// newPgxTransactionTypeRepository creates a new repository for transaction type reads.
func newPgxTransactionTypeRepository(pool *pgxpool.Pool) portsrepo.TransactionTypeReader {
	return &PgxTransactionTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionTypeReader = (*PgxTransactionTypeRepository)(nil)

// FindTransactionTypeByID retrieves a transaction type by its identifier.
func (r *PgxTransactionTypeRepository) FindTransactionTypeByID(ctx context.Context, transactionTypeID string) (*domain.TransactionType, error) {
	query := `
		SELECT transaction_type_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM transaction_types
		WHERE transaction_type_id = $1;
	`
	var modelType models.TransactionType
	err := r.Pool.QueryRow(ctx, query, transactionTypeID).Scan(
		&modelType.TransactionTypeID,
		&modelType.Name,
		&modelType.IsActive,
		&modelType.CreatedAt,
		&modelType.CreatedBy,
		&modelType.LastUpdatedAt,
		&modelType.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction type by id %s: %w", transactionTypeID, err)
	}

	domainType := mapping.ToDomainTransactionType(modelType)
	return &domainType, nil
}
