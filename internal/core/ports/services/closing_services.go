package services

import (
	"context"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/agentdesk/agent_closings_app/internal/dto"
)

// ClosingSvcFacade owns the closing lifecycle and its adjustment audit trail.
type ClosingSvcFacade interface {
	// CreateClosing creates an active closing. ErrUnauthorized when the
	// creating user has no active shift; ErrNotFound when the provider is
	// unknown; ErrConflict when the provider is not an agent; ErrDuplicate
	// when a closing already exists for (provider, date[, shift]).
	CreateClosing(ctx context.Context, req dto.CreateClosingRequest, creatorUserID string) (*domain.Closing, error)

	// GetClosingByID retrieves a single closing.
	GetClosingByID(ctx context.Context, closingID string) (*domain.Closing, error)

	// ListClosings retrieves closings, optionally bounded by date range.
	ListClosings(ctx context.Context, params dto.ListClosingsParams) ([]domain.Closing, error)

	// UpdateClosing applies a partial update with the recomputation policy:
	// an explicit computedResult always wins; otherwise a changed date or
	// provider triggers recomputation; otherwise a changed closingBalance
	// re-derives variance from the stored result.
	UpdateClosing(ctx context.Context, closingID string, req dto.UpdateClosingRequest, updaterUserID string) (*domain.Closing, error)

	// DeleteClosing hard-deletes a closing and cascades its adjustments.
	DeleteClosing(ctx context.Context, closingID string) error

	// BulkSetStatusByShift sets the status of every closing belonging to a
	// shift and returns the number affected. ErrValidation when shiftID is
	// not a well-formed identifier.
	BulkSetStatusByShift(ctx context.Context, shiftID string, status bool) (int64, error)

	// AdjustClosing appends a correction to an inactive closing and updates
	// its result/variance. ErrConflict when the closing is still active.
	AdjustClosing(ctx context.Context, closingID string, req dto.CreateAdjustmentRequest, adjusterUserID string) (*domain.Closing, error)

	// ListAdjustments retrieves a closing's audit trail, newest first.
	ListAdjustments(ctx context.Context, closingID string) ([]domain.Adjustment, error)
}
