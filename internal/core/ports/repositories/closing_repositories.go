package repositories

import (
	"context"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
)

// ClosingReader defines read operations for closing data.
type ClosingReader interface {
	// FindClosingByID retrieves a closing by its identifier.
	FindClosingByID(ctx context.Context, closingID string) (*domain.Closing, error)

	// FindClosingByKey retrieves the closing matching (provider, closingDate,
	// shiftID), where a nil shiftID matches only rows without a shift.
	// excludeID, when non-nil, skips that row (uniqueness re-checks on
	// update). Returns ErrNotFound when no closing matches.
	FindClosingByKey(ctx context.Context, providerID, closingDate string, shiftID *string, excludeID *string) (*domain.Closing, error)

	// ListClosings retrieves closings, optionally bounded by a calendar date
	// range (inclusive). Nil bounds are open ends.
	ListClosings(ctx context.Context, startDate, endDate *string) ([]domain.Closing, error)
}

// ClosingWriter defines write operations for closing data.
type ClosingWriter interface {
	// SaveClosing inserts a new closing. A violation of the
	// (provider, date, shift) unique index surfaces as ErrDuplicate.
	SaveClosing(ctx context.Context, closing domain.Closing) error

	// UpdateClosing persists the full state of an existing closing.
	// Returns ErrNotFound when the row is absent, ErrDuplicate when the
	// update would violate the unique index.
	UpdateClosing(ctx context.Context, closing domain.Closing) error

	// DeleteClosing hard-deletes a closing; its adjustments cascade.
	DeleteClosing(ctx context.Context, closingID string) error

	// UpdateClosingStatusByShift sets status on every closing of a shift and
	// returns the number of rows affected.
	UpdateClosingStatusByShift(ctx context.Context, shiftID string, status bool) (int64, error)
}

// ClosingRepositoryFacade combines all closing repository interfaces.
type ClosingRepositoryFacade interface {
	ClosingReader
	ClosingWriter
}
