package dto

import (
	"time"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClosingRequest defines the data needed to create a closing.
// ComputedResult is optional: when absent the calculation engine derives it
// over [first-of-month, closingDate]; when present it is trusted verbatim so
// the presentation layer can reuse numbers it already computed from the same
// transactions. Variance is always derived server-side.
type CreateClosingRequest struct {
	ProviderID       string           `json:"providerID" binding:"required"`
	ClosingDate      string           `json:"closingDate" binding:"required"`
	ShiftID          *string          `json:"shiftID"`
	OpeningBalance   decimal.Decimal  `json:"openingBalance"`
	AdditionalAmount decimal.Decimal  `json:"additionalAmount"`
	ClosingBalance   decimal.Decimal  `json:"closingBalance"`
	ComputedResult   *decimal.Decimal `json:"computedResult"`
}

// UpdateClosingRequest defines the fields allowed for a partial update.
// Pointers distinguish zero-value updates from fields not provided; absent
// fields are never overwritten.
type UpdateClosingRequest struct {
	ProviderID       *string          `json:"providerID"`
	ClosingDate      *string          `json:"closingDate"`
	ShiftID          *string          `json:"shiftID"`
	OpeningBalance   *decimal.Decimal `json:"openingBalance"`
	AdditionalAmount *decimal.Decimal `json:"additionalAmount"`
	ClosingBalance   *decimal.Decimal `json:"closingBalance"`
	ComputedResult   *decimal.Decimal `json:"computedResult"`
}

// ListClosingsParams defines query parameters for listing closings.
type ListClosingsParams struct {
	StartDate *string `form:"startDate"`
	EndDate   *string `form:"endDate"`
}

// SetStatusByShiftRequest carries the target status for a bulk transition.
type SetStatusByShiftRequest struct {
	Status *bool `json:"status" binding:"required"`
}

// SetStatusByShiftResponse reports how many closings were transitioned.
type SetStatusByShiftResponse struct {
	ShiftID string `json:"shiftID"`
	Updated int64  `json:"updated"`
}

// ClosingResponse defines the data returned for a closing.
type ClosingResponse struct {
	ClosingID        string          `json:"closingID"`
	ProviderID       string          `json:"providerID"`
	ClosingDate      string          `json:"closingDate"`
	ShiftID          *string         `json:"shiftID,omitempty"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	AdditionalAmount decimal.Decimal `json:"additionalAmount"`
	ComputedResult   decimal.Decimal `json:"computedResult"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
	Variance         decimal.Decimal `json:"variance"`
	Status           bool            `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

// ListClosingsResponse wraps a list of closings.
type ListClosingsResponse struct {
	Closings []ClosingResponse `json:"closings"`
}

// ToClosingResponse converts a domain.Closing to its response DTO.
func ToClosingResponse(c *domain.Closing) ClosingResponse {
	return ClosingResponse{
		ClosingID:        c.ClosingID,
		ProviderID:       c.ProviderID,
		ClosingDate:      c.ClosingDate,
		ShiftID:          c.ShiftID,
		OpeningBalance:   c.OpeningBalance,
		AdditionalAmount: c.AdditionalAmount,
		ComputedResult:   c.ComputedResult,
		ClosingBalance:   c.ClosingBalance,
		Variance:         c.Variance,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
		CreatedBy:        c.CreatedBy,
		LastUpdatedAt:    c.LastUpdatedAt,
		LastUpdatedBy:    c.LastUpdatedBy,
	}
}

// ToListClosingsResponse converts a slice of domain closings.
func ToListClosingsResponse(closings []domain.Closing) ListClosingsResponse {
	out := make([]ClosingResponse, len(closings))
	for i := range closings {
		out[i] = ToClosingResponse(&closings[i])
	}
	return ListClosingsResponse{Closings: out}
}
