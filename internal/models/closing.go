package models

import "github.com/shopspring/decimal"

// Closing represents a row in the closings table.
// closing_date is TEXT (YYYY-MM-DD); the unique index on
// (provider_id, closing_date, COALESCE(shift_id, '')) enforces the
// one-closing-per-key invariant at the storage layer.
type Closing struct {
	ClosingID        string          `db:"closing_id"`
	ProviderID       string          `db:"provider_id"`
	ClosingDate      string          `db:"closing_date"`
	ShiftID          *string         `db:"shift_id"`
	OpeningBalance   decimal.Decimal `db:"opening_balance"`
	AdditionalAmount decimal.Decimal `db:"additional_amount"`
	ComputedResult   decimal.Decimal `db:"computed_result"`
	ClosingBalance   decimal.Decimal `db:"closing_balance"`
	Variance         decimal.Decimal `db:"variance"`
	Status           bool            `db:"status"`
	AuditFields
}
