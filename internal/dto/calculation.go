package dto

import "github.com/shopspring/decimal"

// CalculationParams defines query parameters for ad-hoc calculation queries.
// Absent bounds mean all-time-active.
type CalculationParams struct {
	StartDate *string `form:"startDate"`
	EndDate   *string `form:"endDate"`
}

// CalculationResponse is the result of one provider's formula evaluation.
type CalculationResponse struct {
	ProviderID string          `json:"providerID"`
	StartDate  *string         `json:"startDate,omitempty"`
	EndDate    *string         `json:"endDate,omitempty"`
	Result     decimal.Decimal `json:"result"`
}

// ProviderCalculationResult is one provider's row in a batch evaluation.
type ProviderCalculationResult struct {
	ProviderID   string          `json:"providerID"`
	ProviderName string          `json:"providerName"`
	Result       decimal.Decimal `json:"result"`
}

// CategoryCalculationResponse is the result of a batch evaluation over every
// active provider of a category.
type CategoryCalculationResponse struct {
	Category  string                      `json:"category"`
	StartDate *string                     `json:"startDate,omitempty"`
	EndDate   *string                     `json:"endDate,omitempty"`
	Results   []ProviderCalculationResult `json:"results"`
}
