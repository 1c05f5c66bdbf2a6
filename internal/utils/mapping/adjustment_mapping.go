package mapping

import (
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/agentdesk/agent_closings_app/internal/models"
)

// ToModelAdjustment converts a domain adjustment to its model representation.
func ToModelAdjustment(a domain.Adjustment) models.Adjustment {
	return models.Adjustment{
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

// ToDomainAdjustment converts an adjustment model to its domain representation.
func ToDomainAdjustment(m models.Adjustment) domain.Adjustment {
	return domain.Adjustment{
		AdjustmentID:     m.AdjustmentID,
		ClosingID:        m.ClosingID,
		Amount:           m.Amount,
		PreviousResult:   m.PreviousResult,
		NewResult:        m.NewResult,
		PreviousVariance: m.PreviousVariance,
		NewVariance:      m.NewVariance,
		Justification:    m.Justification,
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
	}
}

// ToDomainAdjustmentSlice converts a slice of adjustment models.
func ToDomainAdjustmentSlice(ms []models.Adjustment) []domain.Adjustment {
	out := make([]domain.Adjustment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAdjustment(m)
	}
	return out
}
