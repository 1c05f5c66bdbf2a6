package mapping

import (
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/agentdesk/agent_closings_app/internal/models"
)

// ToModelFormulaConfig converts a domain formula config to its model representation.
func ToModelFormulaConfig(c domain.FormulaConfig) models.FormulaConfig {
	return models.FormulaConfig{
		FormulaConfigID:      c.FormulaConfigID,
		ProviderID:           c.ProviderID,
		TransactionTypeID:    c.TransactionTypeID,
		IncludeInCalculation: c.IncludeInCalculation,
		Multiplier:           c.Multiplier,
		Pooled:               c.Pooled,
		AuditFields:          ToModelAuditFields(c.AuditFields),
	}
}

// ToDomainFormulaConfig converts a formula config model to its domain representation.
func ToDomainFormulaConfig(m models.FormulaConfig) domain.FormulaConfig {
	return domain.FormulaConfig{
		FormulaConfigID:      m.FormulaConfigID,
		ProviderID:           m.ProviderID,
		TransactionTypeID:    m.TransactionTypeID,
		IncludeInCalculation: m.IncludeInCalculation,
		Multiplier:           m.Multiplier,
		Pooled:               m.Pooled,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFormulaConfigSlice converts a slice of formula config models.
func ToDomainFormulaConfigSlice(ms []models.FormulaConfig) []domain.FormulaConfig {
	out := make([]domain.FormulaConfig, len(ms))
	for i, m := range ms {
		out[i] = ToDomainFormulaConfig(m)
	}
	return out
}
