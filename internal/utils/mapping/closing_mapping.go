package mapping

import (
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/agentdesk/agent_closings_app/internal/models"
)

// ToModelClosing converts a domain closing to its model representation.
func ToModelClosing(c domain.Closing) models.Closing {
	return models.Closing{
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
		AuditFields:      ToModelAuditFields(c.AuditFields),
	}
}

// ToDomainClosing converts a closing model to its domain representation.
func ToDomainClosing(m models.Closing) domain.Closing {
	return domain.Closing{
		ClosingID:        m.ClosingID,
		ProviderID:       m.ProviderID,
		ClosingDate:      m.ClosingDate,
		ShiftID:          m.ShiftID,
		OpeningBalance:   m.OpeningBalance,
		AdditionalAmount: m.AdditionalAmount,
		ComputedResult:   m.ComputedResult,
		ClosingBalance:   m.ClosingBalance,
		Variance:         m.Variance,
		Status:           m.Status,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClosingSlice converts a slice of closing models.
func ToDomainClosingSlice(ms []models.Closing) []domain.Closing {
	out := make([]domain.Closing, len(ms))
	for i, m := range ms {
		out[i] = ToDomainClosing(m)
	}
	return out
}
