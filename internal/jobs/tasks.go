package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/middleware"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeShiftClose is emitted by the shift subsystem when a shift ends.
	TaskTypeShiftClose = "shift:close"
)

// ShiftClosePayload carries the identifier of the shift that just ended.
type ShiftClosePayload struct {
	ShiftID string `json:"shiftID"`
}

// NewShiftCloseTask constructs an Asynq task for a closed shift.
func NewShiftCloseTask(payload ShiftClosePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeShiftClose, data), nil
}

// NewShiftCloseHandler processes TaskTypeShiftClose tasks by deactivating
// every closing recorded under the shift. A malformed payload is dropped; a
// service failure is retried by the queue.
func NewShiftCloseHandler(closingService portssvc.ClosingSvcFacade, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ShiftClosePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error("Malformed shift close payload, dropping task", slog.String("error", err.Error()))
			return asynq.SkipRetry
		}

		taskLogger := logger.With(slog.String("shift_id", payload.ShiftID), slog.String("task", TaskTypeShiftClose))
		ctx = middleware.ContextWithLogger(ctx, taskLogger)

		updated, err := closingService.BulkSetStatusByShift(ctx, payload.ShiftID, false)
		if err != nil {
			taskLogger.Error("Failed to deactivate closings for shift", slog.String("error", err.Error()))
			return err
		}

		taskLogger.Info("Closings deactivated for closed shift", slog.Int64("updated", updated))
		return nil
	}
}
