package domain

// TransactionType is a categorical tag on ledger transactions (deposit,
// withdrawal, fee, ...) and the join key for formula configs.
type TransactionType struct {
	TransactionTypeID string `json:"transactionTypeID"`
	Name              string `json:"name"`
	IsActive          bool   `json:"isActive"`
	AuditFields
}
