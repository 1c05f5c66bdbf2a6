package repositories

import "context"

// ShiftReader exposes the single fact this core consumes from the external
// shift subsystem: whether a user currently has an active shift.
type ShiftReader interface {
	HasActiveShift(ctx context.Context, userID string) (bool, error)
}
