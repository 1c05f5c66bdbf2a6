package repositories

import (
	"context"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
)

// ProviderReader defines read operations against the provider directory.
// The directory itself is an external collaborator; this core only resolves
// providers and lists them by category.
type ProviderReader interface {
	// FindProviderByID retrieves a provider by its unique identifier.
	FindProviderByID(ctx context.Context, providerID string) (*domain.Provider, error)

	// ListProvidersByCategory retrieves providers of a category, optionally
	// restricted to active ones.
	ListProvidersByCategory(ctx context.Context, categoryName string, activeOnly bool) ([]domain.Provider, error)
}

// TransactionTypeReader defines read operations for transaction types.
type TransactionTypeReader interface {
	// FindTransactionTypeByID retrieves a transaction type by its identifier.
	FindTransactionTypeByID(ctx context.Context, transactionTypeID string) (*domain.TransactionType, error)
}
