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

type PgxClosingRepository struct {
	BaseRepository
}

// newPgxClosingRepository creates a new repository for closing data.
func newPgxClosingRepository(pool *pgxpool.Pool) portsrepo.ClosingRepositoryFacade {
	return &PgxClosingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClosingRepositoryFacade = (*PgxClosingRepository)(nil)

const closingColumns = `closing_id, provider_id, closing_date, shift_id, opening_balance, additional_amount, computed_result, closing_balance, variance, status, created_at, created_by, last_updated_at, last_updated_by`

func scanClosing(row pgx.Row) (models.Closing, error) {
	var closing models.Closing
	err := row.Scan(
		&closing.ClosingID,
		&closing.ProviderID,
		&closing.ClosingDate,
		&closing.ShiftID,
		&closing.OpeningBalance,
		&closing.AdditionalAmount,
		&closing.ComputedResult,
		&closing.ClosingBalance,
		&closing.Variance,
		&closing.Status,
		&closing.CreatedAt,
		&closing.CreatedBy,
		&closing.LastUpdatedAt,
		&closing.LastUpdatedBy,
	)
	return closing, err
}

// SaveClosing inserts a new closing. The partial unique index on
// (provider_id, closing_date, COALESCE(shift_id, '')) turns a concurrent
// duplicate into ErrDuplicate.
func (r *PgxClosingRepository) SaveClosing(ctx context.Context, closing domain.Closing) error {
	modelClosing := mapping.ToModelClosing(closing)

	query := `
		INSERT INTO closings (` + closingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelClosing.ClosingID,
		modelClosing.ProviderID,
		modelClosing.ClosingDate,
		modelClosing.ShiftID,
		modelClosing.OpeningBalance,
		modelClosing.AdditionalAmount,
		modelClosing.ComputedResult,
		modelClosing.ClosingBalance,
		modelClosing.Variance,
		modelClosing.Status,
		modelClosing.CreatedAt,
		modelClosing.CreatedBy,
		modelClosing.LastUpdatedAt,
		modelClosing.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: closing for provider %s on %s already exists", apperrors.ErrDuplicate, modelClosing.ProviderID, modelClosing.ClosingDate)
		}
		return fmt.Errorf("failed to save closing %s: %w", modelClosing.ClosingID, err)
	}
	return nil
}

// FindClosingByID retrieves a closing by its identifier.
func (r *PgxClosingRepository) FindClosingByID(ctx context.Context, closingID string) (*domain.Closing, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM closings
		WHERE closing_id = $1;
	`
	modelClosing, err := scanClosing(r.Pool.QueryRow(ctx, query, closingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closing by id %s: %w", closingID, err)
	}

	domainClosing := mapping.ToDomainClosing(modelClosing)
	return &domainClosing, nil
}

// FindClosingByKey retrieves the closing for (provider, date, shift). A nil
// shiftID matches only rows without a shift; COALESCE keeps the comparison
// aligned with the unique index expression.
func (r *PgxClosingRepository) FindClosingByKey(ctx context.Context, providerID, closingDate string, shiftID *string, excludeID *string) (*domain.Closing, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM closings
		WHERE provider_id = $1
		  AND closing_date = $2
		  AND COALESCE(shift_id, '') = COALESCE($3::text, '')
		  AND ($4::text IS NULL OR closing_id <> $4);
	`
	modelClosing, err := scanClosing(r.Pool.QueryRow(ctx, query, providerID, closingDate, shiftID, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closing for provider %s on %s: %w", providerID, closingDate, err)
	}

	domainClosing := mapping.ToDomainClosing(modelClosing)
	return &domainClosing, nil
}

// ListClosings retrieves closings, optionally bounded by an inclusive
// calendar date range. Dates are TEXT, so the comparisons are lexicographic
// and therefore chronological.
func (r *PgxClosingRepository) ListClosings(ctx context.Context, startDate, endDate *string) ([]domain.Closing, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM closings
		WHERE ($1::text IS NULL OR closing_date >= $1)
		  AND ($2::text IS NULL OR closing_date <= $2)
		ORDER BY closing_date DESC, provider_id;
	`
	rows, err := r.Pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query closings: %w", err)
	}
	defer rows.Close()

	modelClosings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Closing, error) {
		return scanClosing(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Closing{}, nil
		}
		return nil, fmt.Errorf("failed to scan closings: %w", err)
	}

	return mapping.ToDomainClosingSlice(modelClosings), nil
}

// UpdateClosing persists the full state of an existing closing.
func (r *PgxClosingRepository) UpdateClosing(ctx context.Context, closing domain.Closing) error {
	modelClosing := mapping.ToModelClosing(closing)

	query := `
		UPDATE closings
		SET provider_id = $2,
			closing_date = $3,
			shift_id = $4,
			opening_balance = $5,
			additional_amount = $6,
			computed_result = $7,
			closing_balance = $8,
			variance = $9,
			status = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE closing_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelClosing.ClosingID,
		modelClosing.ProviderID,
		modelClosing.ClosingDate,
		modelClosing.ShiftID,
		modelClosing.OpeningBalance,
		modelClosing.AdditionalAmount,
		modelClosing.ComputedResult,
		modelClosing.ClosingBalance,
		modelClosing.Variance,
		modelClosing.Status,
		modelClosing.LastUpdatedAt,
		modelClosing.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: closing for provider %s on %s already exists", apperrors.ErrDuplicate, modelClosing.ProviderID, modelClosing.ClosingDate)
		}
		return fmt.Errorf("failed to update closing %s: %w", modelClosing.ClosingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClosing hard-deletes a closing; the adjustments FK cascades.
func (r *PgxClosingRepository) DeleteClosing(ctx context.Context, closingID string) error {
	query := `DELETE FROM closings WHERE closing_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, closingID)
	if err != nil {
		return fmt.Errorf("failed to delete closing %s: %w", closingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateClosingStatusByShift sets status on every closing of a shift. Zero
// affected rows is not an error; a shift may simply have no closings.
func (r *PgxClosingRepository) UpdateClosingStatusByShift(ctx context.Context, shiftID string, status bool) (int64, error) {
	query := `
		UPDATE closings
		SET status = $2, last_updated_at = now()
		WHERE shift_id = $1 AND status <> $2;
	`
	tag, err := r.Pool.Exec(ctx, query, shiftID, status)
	if err != nil {
		return 0, fmt.Errorf("failed to update closing status for shift %s: %w", shiftID, err)
	}
	return tag.RowsAffected(), nil
}
