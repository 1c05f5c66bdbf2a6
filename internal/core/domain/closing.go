package domain

import "github.com/shopspring/decimal"

// Closing is the per-provider, per-date (and optionally per-shift) snapshot
// reconciling an expected computed result against an actual closing balance.
//
// ClosingDate is a calendar date string (YYYY-MM-DD), never a timestamp.
// Storing and comparing the date as a string avoids off-by-one-day drift from
// timezone conversion.
type Closing struct {
	ClosingID        string          `json:"closingID"`
	ProviderID       string          `json:"providerID"`
	ClosingDate      string          `json:"closingDate"`
	ShiftID          *string         `json:"shiftID,omitempty"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	AdditionalAmount decimal.Decimal `json:"additionalAmount"`
	ComputedResult   decimal.Decimal `json:"computedResult"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
	Variance         decimal.Decimal `json:"variance"`
	Status           bool            `json:"status"` // true = active, false = inactive
	AuditFields
}

// DeriveVariance returns closingBalance minus computedResult, the single
// definition of the reconciliation gap.
func DeriveVariance(closingBalance, computedResult decimal.Decimal) decimal.Decimal {
	return closingBalance.Sub(computedResult)
}
