package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new read-only repository over the
// agent_transactions ledger.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerReader {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// SumActiveByType sums active transactions of one type across all providers.
// Nil date bounds are open ends; transaction_date is TEXT, so the range
// comparisons are lexicographic and therefore chronological.
func (r *PgxLedgerRepository) SumActiveByType(ctx context.Context, transactionTypeID string, startDate, endDate *string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(value), 0)
		FROM agent_transactions
		WHERE transaction_type_id = $1
		  AND is_active = true
		  AND ($2::text IS NULL OR transaction_date >= $2)
		  AND ($3::text IS NULL OR transaction_date <= $3);
	`
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, transactionTypeID, startDate, endDate).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions for type %s: %w", transactionTypeID, err)
	}
	return sum, nil
}

// SumActiveByProviderAndType sums active transactions of one type for one
// provider.
func (r *PgxLedgerRepository) SumActiveByProviderAndType(ctx context.Context, providerID, transactionTypeID string, startDate, endDate *string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(value), 0)
		FROM agent_transactions
		WHERE provider_id = $1
		  AND transaction_type_id = $2
		  AND is_active = true
		  AND ($3::text IS NULL OR transaction_date >= $3)
		  AND ($4::text IS NULL OR transaction_date <= $4);
	`
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, providerID, transactionTypeID, startDate, endDate).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions for provider %s and type %s: %w", providerID, transactionTypeID, err)
	}
	return sum, nil
}

// FindEntriesByProviderAndDateRange retrieves a provider's active ledger
// entries (type and value only) in one pass.
func (r *PgxLedgerRepository) FindEntriesByProviderAndDateRange(ctx context.Context, providerID string, startDate, endDate *string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT transaction_type_id, value
		FROM agent_transactions
		WHERE provider_id = $1
		  AND is_active = true
		  AND ($2::text IS NULL OR transaction_date >= $2)
		  AND ($3::text IS NULL OR transaction_date <= $3);
	`
	rows, err := r.Pool.Query(ctx, query, providerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for provider %s: %w", providerID, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		var entry domain.LedgerEntry
		err := row.Scan(&entry.TransactionTypeID, &entry.Value)
		return entry, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.LedgerEntry{}, nil
		}
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}

	return entries, nil
}
