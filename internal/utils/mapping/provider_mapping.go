package mapping

import (
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/agentdesk/agent_closings_app/internal/models"
)

// ToDomainProvider converts a provider model to its domain representation.
func ToDomainProvider(m models.Provider) domain.Provider {
	return domain.Provider{
		ProviderID:   m.ProviderID,
		Name:         m.Name,
		CategoryName: m.CategoryName,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProviderSlice converts a slice of provider models.
func ToDomainProviderSlice(ms []models.Provider) []domain.Provider {
	out := make([]domain.Provider, len(ms))
	for i, m := range ms {
		out[i] = ToDomainProvider(m)
	}
	return out
}

// ToDomainTransactionType converts a transaction type model to its domain representation.
func ToDomainTransactionType(m models.TransactionType) domain.TransactionType {
	return domain.TransactionType{
		TransactionTypeID: m.TransactionTypeID,
		Name:              m.Name,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
