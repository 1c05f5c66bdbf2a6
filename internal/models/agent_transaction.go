package models

import "github.com/shopspring/decimal"

// AgentTransaction represents a row in the agent_transactions ledger table.
// The ledger is append/soft-delete storage; is_active=false rows are ignored
// by every aggregation query. transaction_date is TEXT (YYYY-MM-DD).
type AgentTransaction struct {
	TransactionID     string          `db:"transaction_id"`
	ProviderID        string          `db:"provider_id"`
	TransactionTypeID string          `db:"transaction_type_id"`
	Value             decimal.Decimal `db:"value"`
	TransactionDate   string          `db:"transaction_date"`
	IsActive          bool            `db:"is_active"`
	AuditFields
}
