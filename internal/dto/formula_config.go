package dto

import (
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFormulaConfigRequest defines the data needed to create a formula config.
type CreateFormulaConfigRequest struct {
	ProviderID           string          `json:"providerID" binding:"required"`
	TransactionTypeID    string          `json:"transactionTypeID" binding:"required"`
	IncludeInCalculation bool            `json:"includeInCalculation"`
	Multiplier           decimal.Decimal `json:"multiplier" binding:"required"`
	Pooled               bool            `json:"pooled"`
}

// UpdateFormulaConfigRequest defines the fields allowed for a partial update.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateFormulaConfigRequest struct {
	ProviderID           *string          `json:"providerID"`
	TransactionTypeID    *string          `json:"transactionTypeID"`
	IncludeInCalculation *bool            `json:"includeInCalculation"`
	Multiplier           *decimal.Decimal `json:"multiplier"`
	Pooled               *bool            `json:"pooled"`
}

// FormulaConfigEntry is one row of a provider's formula sheet, as edited in
// bulk by the presentation layer.
type FormulaConfigEntry struct {
	TransactionTypeID    string          `json:"transactionTypeID" binding:"required"`
	IncludeInCalculation bool            `json:"includeInCalculation"`
	Multiplier           decimal.Decimal `json:"multiplier" binding:"required"`
	Pooled               bool            `json:"pooled"`
}

// BulkUpsertFormulaConfigsRequest carries a provider's whole formula sheet.
type BulkUpsertFormulaConfigsRequest struct {
	Entries []FormulaConfigEntry `json:"entries" binding:"required,min=1,dive"`
}

// FormulaConfigResponse defines the data returned for a formula config.
type FormulaConfigResponse struct {
	FormulaConfigID      string          `json:"formulaConfigID"`
	ProviderID           string          `json:"providerID"`
	TransactionTypeID    string          `json:"transactionTypeID"`
	IncludeInCalculation bool            `json:"includeInCalculation"`
	Multiplier           decimal.Decimal `json:"multiplier"`
	Pooled               bool            `json:"pooled"`
}

// FormulaConfigUpsertResult reports the outcome of one bulk upsert entry.
// Entries are applied independently; a failed entry does not undo prior ones,
// so callers must inspect each result.
type FormulaConfigUpsertResult struct {
	TransactionTypeID string                 `json:"transactionTypeID"`
	Config            *FormulaConfigResponse `json:"config,omitempty"`
	Error             string                 `json:"error,omitempty"`
}

// ListFormulaConfigsResponse wraps a list of formula configs.
type ListFormulaConfigsResponse struct {
	Configs []FormulaConfigResponse `json:"configs"`
}

// ToFormulaConfigResponse converts a domain.FormulaConfig to its response DTO.
func ToFormulaConfigResponse(c *domain.FormulaConfig) FormulaConfigResponse {
	return FormulaConfigResponse{
		FormulaConfigID:      c.FormulaConfigID,
		ProviderID:           c.ProviderID,
		TransactionTypeID:    c.TransactionTypeID,
		IncludeInCalculation: c.IncludeInCalculation,
		Multiplier:           c.Multiplier,
		Pooled:               c.Pooled,
	}
}

// ToListFormulaConfigsResponse converts a slice of domain configs.
func ToListFormulaConfigsResponse(configs []domain.FormulaConfig) ListFormulaConfigsResponse {
	out := make([]FormulaConfigResponse, len(configs))
	for i := range configs {
		out[i] = ToFormulaConfigResponse(&configs[i])
	}
	return ListFormulaConfigsResponse{Configs: out}
}
