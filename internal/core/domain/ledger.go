package domain

import "github.com/shopspring/decimal"

// LedgerEntry is the projection of an active ledger transaction the
// calculation engine consumes: its type and signed value.
type LedgerEntry struct {
	TransactionTypeID string          `json:"transactionTypeID"`
	Value             decimal.Decimal `json:"value"`
}
