package repositories

// RepositoryProvider aggregates all repository facades required to build the
// service container.
type RepositoryProvider struct {
	Provider        ProviderReader
	TransactionType TransactionTypeReader
	FormulaConfig   FormulaConfigRepositoryFacade
	Closing         ClosingRepositoryFacade
	Adjustment      AdjustmentRepositoryFacade
	Ledger          LedgerReader
	Shift           ShiftReader
}
