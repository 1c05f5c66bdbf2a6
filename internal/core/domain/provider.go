package domain

// CategoryAgent is the provider category whose transactions are reconciled
// into closings. Only agent providers may own a closing.
const CategoryAgent = "agent"

// Provider represents an external party (agent) whose transactions are
// reconciled at shift end.
type Provider struct {
	ProviderID   string `json:"providerID"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// IsAgent reports whether the provider belongs to the agent category.
func (p Provider) IsAgent() bool {
	return p.CategoryName == CategoryAgent
}
