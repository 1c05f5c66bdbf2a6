package dto

import (
	"time"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAdjustmentRequest defines the data needed to adjust an inactive
// closing. Amount may be negative (a correction downwards).
type CreateAdjustmentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Justification string          `json:"justification" binding:"required,min=10"`
}

// AdjustmentResponse defines the data returned for one audit trail entry.
type AdjustmentResponse struct {
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

// ListAdjustmentsResponse wraps a closing's adjustment history, newest first.
type ListAdjustmentsResponse struct {
	ClosingID   string               `json:"closingID"`
	Adjustments []AdjustmentResponse `json:"adjustments"`
}

// ToAdjustmentResponse converts a domain.Adjustment to its response DTO.
func ToAdjustmentResponse(a *domain.Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		AdjustmentID:     a.AdjustmentID,
		ClosingID:        a.ClosingID,
		Amount:           a.Amount,
		PreviousResult:   a.PreviousResult,
		NewResult:        a.NewResult,
		PreviousVariance: a.PreviousVariance,
		NewVariance:      a.NewVariance,
		Justification:    a.Justification,
		CreatedAt:        a.CreatedAt,
		CreatedBy:        a.CreatedBy,
	}
}

// ToListAdjustmentsResponse converts a closing's adjustment history.
func ToListAdjustmentsResponse(closingID string, adjustments []domain.Adjustment) ListAdjustmentsResponse {
	out := make([]AdjustmentResponse, len(adjustments))
	for i := range adjustments {
		out[i] = ToAdjustmentResponse(&adjustments[i])
	}
	return ListAdjustmentsResponse{ClosingID: closingID, Adjustments: out}
}
