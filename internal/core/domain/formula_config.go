package domain

import "github.com/shopspring/decimal"

// FormulaConfig decides how one transaction type rolls up into a provider's
// computed result. At most one config exists per (provider, transaction type)
// pair.
//
// When Pooled is true the contribution is Multiplier times the sum of all
// active transactions of the type across every provider; otherwise it is
// Multiplier times the sum for the owning provider only. A negative
// Multiplier subtracts.
type FormulaConfig struct {
	FormulaConfigID      string          `json:"formulaConfigID"`
	ProviderID           string          `json:"providerID"`
	TransactionTypeID    string          `json:"transactionTypeID"`
	IncludeInCalculation bool            `json:"includeInCalculation"`
	Multiplier           decimal.Decimal `json:"multiplier"`
	Pooled               bool            `json:"pooled"`
	AuditFields
}
