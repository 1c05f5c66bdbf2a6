package models

// Provider represents a row in the providers table.
type Provider struct {
	ProviderID   string `db:"provider_id"`
	Name         string `db:"name"`
	CategoryName string `db:"category_name"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
