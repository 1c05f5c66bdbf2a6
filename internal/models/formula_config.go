package models

import "github.com/shopspring/decimal"

// FormulaConfig represents a row in the formula_configs table.
// A unique constraint guards the (provider_id, transaction_type_id) pair.
type FormulaConfig struct {
	FormulaConfigID      string          `db:"formula_config_id"`
	ProviderID           string          `db:"provider_id"`
	TransactionTypeID    string          `db:"transaction_type_id"`
	IncludeInCalculation bool            `db:"include_in_calculation"`
	Multiplier           decimal.Decimal `db:"multiplier"`
	Pooled               bool            `db:"pooled"`
	AuditFields
}
