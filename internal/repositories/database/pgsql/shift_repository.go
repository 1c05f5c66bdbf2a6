package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new read-only repository over the shifts
// table maintained by the external shift subsystem.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftReader {
	return &PgxShiftRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ShiftReader = (*PgxShiftRepository)(nil)

// HasActiveShift reports whether the user currently has an open shift.
func (r *PgxShiftRepository) HasActiveShift(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM shifts WHERE user_id = $1 AND is_active = true);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active shift for user %s: %w", userID, err)
	}
	return exists, nil
}
