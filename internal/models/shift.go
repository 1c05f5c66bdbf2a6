package models

import "time"

// Shift represents a row in the shifts table. The shift subsystem itself is
// external; this model only backs the active-shift gate consulted before
// closing creation.
type Shift struct {
	ShiftID  string     `db:"shift_id"`
	UserID   string     `db:"user_id"`
	IsActive bool       `db:"is_active"`
	OpenedAt time.Time  `db:"opened_at"`
	ClosedAt *time.Time `db:"closed_at"`
}
