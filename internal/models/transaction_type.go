package models

// TransactionType represents a row in the transaction_types table.
type TransactionType struct {
	TransactionTypeID string `db:"transaction_type_id"`
	Name              string `db:"name"`
	IsActive          bool   `db:"is_active"`
	AuditFields
}
