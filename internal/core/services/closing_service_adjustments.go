package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/agentdesk/agent_closings_app/internal/dto"
	"github.com/agentdesk/agent_closings_app/internal/middleware"
)

// AdjustClosing appends an adjustment to an inactive closing and applies the
// delta to the closing's computed result and variance. The audit entry and the
// closing update are persisted in one transaction.
func (s *closingService) AdjustClosing(ctx context.Context, closingID string, req dto.CreateAdjustmentRequest, adjusterUserID string) (*domain.Closing, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	closing, err := s.closingRepo.FindClosingByID(ctx, closingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find closing %s: %w", closingID, err)
	}
	if closing.Status {
		return nil, fmt.Errorf("%w: closing %s is still active, only inactive closings may be adjusted", apperrors.ErrConflict, closingID)
	}
	if len(req.Justification) < domain.MinJustificationLength {
		return nil, fmt.Errorf("%w: justification must be at least %d characters", apperrors.ErrValidation, domain.MinJustificationLength)
	}

	newResult := closing.ComputedResult.Add(req.Amount)
	newVariance := domain.DeriveVariance(closing.ClosingBalance, newResult)
	now := time.Now().UTC()

	adjustment := domain.Adjustment{
		AdjustmentID:     uuid.NewString(),
		ClosingID:        closingID,
		Amount:           req.Amount,
		PreviousResult:   closing.ComputedResult,
		NewResult:        newResult,
		PreviousVariance: closing.Variance,
		NewVariance:      newVariance,
		Justification:    req.Justification,
		CreatedAt:        now,
		CreatedBy:        adjusterUserID,
	}

	if err := s.adjustmentRepo.SaveAdjustment(ctx, adjustment, newResult, newVariance, adjusterUserID, now); err != nil {
		logger.Error("Failed to save adjustment", slog.String("closing_id", closingID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save adjustment for closing %s: %w", closingID, err)
	}

	closing.ComputedResult = newResult
	closing.Variance = newVariance
	closing.LastUpdatedAt = now
	closing.LastUpdatedBy = adjusterUserID

	logger.Info("Closing adjusted",
		slog.String("closing_id", closingID),
		slog.String("adjustment_id", adjustment.AdjustmentID),
		slog.String("amount", req.Amount.String()))
	return closing, nil
}

// ListAdjustments retrieves a closing's adjustment history, newest first.
// The closing must exist; an empty history returns an empty slice.
func (s *closingService) ListAdjustments(ctx context.Context, closingID string) ([]domain.Adjustment, error) {
	if _, err := s.closingRepo.FindClosingByID(ctx, closingID); err != nil {
		return nil, fmt.Errorf("failed to find closing %s: %w", closingID, err)
	}

	adjustments, err := s.adjustmentRepo.FindAdjustmentsByClosing(ctx, closingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments for closing %s: %w", closingID, err)
	}
	return adjustments, nil
}
