package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	"github.com/agentdesk/agent_closings_app/internal/models"
	"github.com/agentdesk/agent_closings_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAdjustmentRepository struct {
	BaseRepository
}

// newPgxAdjustmentRepository creates a new repository for the adjustment
// audit trail.
func newPgxAdjustmentRepository(pool *pgxpool.Pool) portsrepo.AdjustmentRepositoryFacade {
	return &PgxAdjustmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AdjustmentRepositoryFacade = (*PgxAdjustmentRepository)(nil)

// SaveAdjustment inserts the audit entry and applies the new result and
// variance to the owning closing inside one transaction. Either both rows
// land or neither does.
func (r *PgxAdjustmentRepository) SaveAdjustment(ctx context.Context, adjustment domain.Adjustment, newResult, newVariance decimal.Decimal, updatedByUserID string, updatedAt time.Time) error {
	modelAdj := mapping.ToModelAdjustment(adjustment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	insertQuery := `
		INSERT INTO adjustments (adjustment_id, closing_id, amount, previous_result, new_result, previous_variance, new_variance, justification, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelAdj.AdjustmentID,
		modelAdj.ClosingID,
		modelAdj.Amount,
		modelAdj.PreviousResult,
		modelAdj.NewResult,
		modelAdj.PreviousVariance,
		modelAdj.NewVariance,
		modelAdj.Justification,
		modelAdj.CreatedAt,
		modelAdj.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert adjustment %s: %w", modelAdj.AdjustmentID, err)
	}

	updateQuery := `
		UPDATE closings
		SET computed_result = $2, variance = $3, last_updated_at = $4, last_updated_by = $5
		WHERE closing_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		modelAdj.ClosingID,
		newResult,
		newVariance,
		updatedAt,
		updatedByUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to apply adjustment to closing %s: %w", modelAdj.ClosingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindAdjustmentsByClosing retrieves a closing's adjustments newest-first.
func (r *PgxAdjustmentRepository) FindAdjustmentsByClosing(ctx context.Context, closingID string) ([]domain.Adjustment, error) {
	query := `
		SELECT adjustment_id, closing_id, amount, previous_result, new_result, previous_variance, new_variance, justification, created_at, created_by
		FROM adjustments
		WHERE closing_id = $1
		ORDER BY created_at DESC, adjustment_id;
	`
	rows, err := r.Pool.Query(ctx, query, closingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments for closing %s: %w", closingID, err)
	}
	defer rows.Close()

	modelAdjustments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Adjustment, error) {
		var adj models.Adjustment
		err := row.Scan(
			&adj.AdjustmentID,
			&adj.ClosingID,
			&adj.Amount,
			&adj.PreviousResult,
			&adj.NewResult,
			&adj.PreviousVariance,
			&adj.NewVariance,
			&adj.Justification,
			&adj.CreatedAt,
			&adj.CreatedBy,
		)
		return adj, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Adjustment{}, nil
		}
		return nil, fmt.Errorf("failed to scan adjustments: %w", err)
	}

	return mapping.ToDomainAdjustmentSlice(modelAdjustments), nil
}
