package services

// ServiceContainer aggregates the service facades handed to the HTTP layer
// and the background worker.
type ServiceContainer struct {
	Calculation   CalculationSvcFacade
	FormulaConfig FormulaConfigSvcFacade
	Closing       ClosingSvcFacade
}
