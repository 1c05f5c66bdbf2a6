package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/dto"
	"github.com/agentdesk/agent_closings_app/internal/middleware"
	"github.com/agentdesk/agent_closings_app/internal/utils/dates"
)

// closingService owns the closing lifecycle: creation behind the active-shift
// gate, the one-closing-per-(provider, date[, shift]) invariant, the
// recomputation policy on update, and bulk status transitions by shift.
type closingService struct {
	providerRepo   portsrepo.ProviderReader
	closingRepo    portsrepo.ClosingRepositoryFacade
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade
	shiftRepo      portsrepo.ShiftReader
	calculationSvc portssvc.CalculationSvcFacade
}

// NewClosingService creates a new ClosingService.
func NewClosingService(
	providerRepo portsrepo.ProviderReader,
	closingRepo portsrepo.ClosingRepositoryFacade,
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade,
	shiftRepo portsrepo.ShiftReader,
	calculationSvc portssvc.CalculationSvcFacade,
) portssvc.ClosingSvcFacade {
	return &closingService{
		providerRepo:   providerRepo,
		closingRepo:    closingRepo,
		adjustmentRepo: adjustmentRepo,
		shiftRepo:      shiftRepo,
		calculationSvc: calculationSvc,
	}
}

var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

// duplicateClosingError builds the Conflict error for a duplicate
// (provider, date[, shift]) key. The two messages differ deliberately: the
// shiftless one tells the caller the ambiguity is resolvable by specifying a
// shift.
func duplicateClosingError(closingDate string, shiftID *string) error {
	if shiftID == nil {
		return fmt.Errorf("%w: a closing already exists for this provider on %s with no shift; specify a shift id to record another closing for the same date", apperrors.ErrDuplicate, closingDate)
	}
	return fmt.Errorf("%w: a closing already exists for this provider on %s for shift %s", apperrors.ErrDuplicate, closingDate, *shiftID)
}

// resolveAgentProvider fetches a provider and enforces the agent-category rule.
func (s *closingService) resolveAgentProvider(ctx context.Context, providerID string) (*domain.Provider, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("provider %s not found: %w", providerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve provider %s: %w", providerID, err)
	}
	if !provider.IsAgent() {
		return nil, fmt.Errorf("%w: provider %s belongs to category %q, closings require an agent provider", apperrors.ErrConflict, providerID, provider.CategoryName)
	}
	return provider, nil
}

// checkUniqueness runs the pre-insert existence check for the closing key.
// The storage layer's unique index is the real guarantee against concurrent
// creates; this check exists to produce the guiding Conflict message.
func (s *closingService) checkUniqueness(ctx context.Context, providerID, closingDate string, shiftID *string, excludeID *string) error {
	_, err := s.closingRepo.FindClosingByKey(ctx, providerID, closingDate, shiftID, excludeID)
	if err == nil {
		return duplicateClosingError(closingDate, shiftID)
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("failed to check closing uniqueness: %w", err)
}

// CreateClosing creates an active closing for an agent provider.
func (s *closingService) CreateClosing(ctx context.Context, req dto.CreateClosingRequest, creatorUserID string) (*domain.Closing, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hasShift, err := s.shiftRepo.HasActiveShift(ctx, creatorUserID)
	if err != nil {
		logger.Error("Failed to check active shift", slog.String("user_id", creatorUserID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check active shift: %w", err)
	}
	if !hasShift {
		return nil, fmt.Errorf("%w: an active shift is required to create a closing", apperrors.ErrUnauthorized)
	}

	if err := dates.Validate(req.ClosingDate); err != nil {
		return nil, err
	}

	if _, err := s.resolveAgentProvider(ctx, req.ProviderID); err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(ctx, req.ProviderID, req.ClosingDate, req.ShiftID, nil); err != nil {
		return nil, err
	}

	computedResult := req.ComputedResult
	if computedResult == nil {
		// Default range is first-of-month through the closing date.
		firstOfMonth, fmErr := dates.FirstOfMonth(req.ClosingDate)
		if fmErr != nil {
			return nil, fmErr
		}
		result := s.calculationSvc.ComputeResult(ctx, req.ProviderID, &firstOfMonth, &req.ClosingDate)
		computedResult = &result
	}
	// Variance is always derived, never taken from the caller.
	variance := domain.DeriveVariance(req.ClosingBalance, *computedResult)

	now := time.Now().UTC()
	closing := domain.Closing{
		ClosingID:        uuid.NewString(),
		ProviderID:       req.ProviderID,
		ClosingDate:      req.ClosingDate,
		ShiftID:          req.ShiftID,
		OpeningBalance:   req.OpeningBalance,
		AdditionalAmount: req.AdditionalAmount,
		ComputedResult:   *computedResult,
		ClosingBalance:   req.ClosingBalance,
		Variance:         variance,
		Status:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.closingRepo.SaveClosing(ctx, closing); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Unique index backstop for the check-then-insert race.
			return nil, duplicateClosingError(req.ClosingDate, req.ShiftID)
		}
		logger.Error("Failed to save closing", slog.String("provider_id", req.ProviderID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save closing: %w", err)
	}

	logger.Info("Closing created",
		slog.String("closing_id", closing.ClosingID),
		slog.String("provider_id", closing.ProviderID),
		slog.String("closing_date", closing.ClosingDate))
	return &closing, nil
}

// GetClosingByID retrieves a single closing.
func (s *closingService) GetClosingByID(ctx context.Context, closingID string) (*domain.Closing, error) {
	closing, err := s.closingRepo.FindClosingByID(ctx, closingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find closing %s: %w", closingID, err)
	}
	return closing, nil
}

// ListClosings retrieves closings, optionally bounded by a calendar date range.
func (s *closingService) ListClosings(ctx context.Context, params dto.ListClosingsParams) ([]domain.Closing, error) {
	if err := dates.ValidateRange(params.StartDate, params.EndDate); err != nil {
		return nil, err
	}
	closings, err := s.closingRepo.ListClosings(ctx, params.StartDate, params.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list closings: %w", err)
	}
	return closings, nil
}

// UpdateClosing applies a partial update.
//
// The recomputation branches are mutually exclusive and order-sensitive: an
// explicit computedResult always wins; otherwise a changed date or provider
// (or shift) triggers recomputation; otherwise a changed closingBalance
// re-derives the variance from the stored result.
func (s *closingService) UpdateClosing(ctx context.Context, closingID string, req dto.UpdateClosingRequest, updaterUserID string) (*domain.Closing, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.closingRepo.FindClosingByID(ctx, closingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find closing %s: %w", closingID, err)
	}

	updated := *existing
	providerChanged := false
	dateChanged := false
	shiftChanged := false
	balanceChanged := false

	if req.ProviderID != nil && *req.ProviderID != existing.ProviderID {
		if _, err := s.resolveAgentProvider(ctx, *req.ProviderID); err != nil {
			return nil, err
		}
		updated.ProviderID = *req.ProviderID
		providerChanged = true
	}
	if req.ClosingDate != nil && *req.ClosingDate != existing.ClosingDate {
		if err := dates.Validate(*req.ClosingDate); err != nil {
			return nil, err
		}
		updated.ClosingDate = *req.ClosingDate
		dateChanged = true
	}
	if req.ShiftID != nil && (existing.ShiftID == nil || *req.ShiftID != *existing.ShiftID) {
		updated.ShiftID = req.ShiftID
		shiftChanged = true
	}
	if req.OpeningBalance != nil {
		updated.OpeningBalance = *req.OpeningBalance
	}
	if req.AdditionalAmount != nil {
		updated.AdditionalAmount = *req.AdditionalAmount
	}
	if req.ClosingBalance != nil && !req.ClosingBalance.Equal(existing.ClosingBalance) {
		updated.ClosingBalance = *req.ClosingBalance
		balanceChanged = true
	}

	if providerChanged || dateChanged || shiftChanged {
		if err := s.checkUniqueness(ctx, updated.ProviderID, updated.ClosingDate, updated.ShiftID, &closingID); err != nil {
			return nil, err
		}
	}

	switch {
	case req.ComputedResult != nil:
		// An explicit value always wins over recomputation.
		updated.ComputedResult = *req.ComputedResult
		updated.Variance = domain.DeriveVariance(updated.ClosingBalance, updated.ComputedResult)
	case providerChanged || dateChanged:
		firstOfMonth, fmErr := dates.FirstOfMonth(updated.ClosingDate)
		if fmErr != nil {
			return nil, fmErr
		}
		updated.ComputedResult = s.calculationSvc.ComputeResult(ctx, updated.ProviderID, &firstOfMonth, &updated.ClosingDate)
		updated.Variance = domain.DeriveVariance(updated.ClosingBalance, updated.ComputedResult)
	case balanceChanged:
		updated.Variance = domain.DeriveVariance(updated.ClosingBalance, existing.ComputedResult)
	}

	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = updaterUserID

	if err := s.closingRepo.UpdateClosing(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, duplicateClosingError(updated.ClosingDate, updated.ShiftID)
		}
		logger.Error("Failed to update closing", slog.String("closing_id", closingID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update closing %s: %w", closingID, err)
	}

	logger.Info("Closing updated", slog.String("closing_id", closingID))
	return &updated, nil
}

// DeleteClosing hard-deletes a closing; adjustments cascade at the storage
// layer.
func (s *closingService) DeleteClosing(ctx context.Context, closingID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.closingRepo.DeleteClosing(ctx, closingID); err != nil {
		return fmt.Errorf("failed to delete closing %s: %w", closingID, err)
	}

	logger.Info("Closing deleted", slog.String("closing_id", closingID))
	return nil
}

// BulkSetStatusByShift sets status on every closing of a shift. Invoked by
// the shift-closure event consumer and by the admin endpoint.
func (s *closingService) BulkSetStatusByShift(ctx context.Context, shiftID string, status bool) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := uuid.Parse(shiftID); err != nil {
		return 0, fmt.Errorf("%w: shift id %q is not a well-formed identifier", apperrors.ErrValidation, shiftID)
	}

	affected, err := s.closingRepo.UpdateClosingStatusByShift(ctx, shiftID, status)
	if err != nil {
		logger.Error("Failed to bulk update closing status", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to update closings for shift %s: %w", shiftID, err)
	}

	logger.Info("Closing status updated by shift",
		slog.String("shift_id", shiftID),
		slog.Bool("status", status),
		slog.Int64("affected", affected))
	return affected, nil
}
