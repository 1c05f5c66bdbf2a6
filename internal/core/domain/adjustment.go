package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinJustificationLength is the minimum number of characters required in an
// adjustment justification.
const MinJustificationLength = 10

// Adjustment is an immutable, justification-required correction applied to an
// already-inactive closing. Adjustments are owned history entries of their
// closing and are never edited or deleted independently.
type Adjustment struct {
	AdjustmentID     string          `json:"adjustmentID"`
	ClosingID        string          `json:"closingID"`
	Amount           decimal.Decimal `json:"amount"`
	PreviousResult   decimal.Decimal `json:"previousResult"`
	NewResult        decimal.Decimal `json:"newResult"`
	PreviousVariance decimal.Decimal `json:"previousVariance"`
	NewVariance      decimal.Decimal `json:"newVariance"`
	Justification    string          `json:"justification"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}
