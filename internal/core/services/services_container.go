package services

import (
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Calculation goes first since the closing lifecycle depends on it.
	container.Calculation = NewCalculationService(
		repos.Provider,
		repos.FormulaConfig,
		repos.Ledger,
	)

	container.FormulaConfig = NewFormulaConfigService(
		repos.Provider,
		repos.TransactionType,
		repos.FormulaConfig,
	)

	container.Closing = NewClosingService(
		repos.Provider,
		repos.Closing,
		repos.Adjustment,
		repos.Shift,
		container.Calculation,
	)

	return container
}
