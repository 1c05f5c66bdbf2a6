package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment represents a row in the adjustments table. Rows are append-only.
type Adjustment struct {
	AdjustmentID     string          `db:"adjustment_id"`
	ClosingID        string          `db:"closing_id"`
	Amount           decimal.Decimal `db:"amount"`
	PreviousResult   decimal.Decimal `db:"previous_result"`
	NewResult        decimal.Decimal `db:"new_result"`
	PreviousVariance decimal.Decimal `db:"previous_variance"`
	NewVariance      decimal.Decimal `db:"new_variance"`
	Justification    string          `db:"justification"`
	CreatedAt        time.Time       `db:"created_at"`
	CreatedBy        string          `db:"created_by"`
}
