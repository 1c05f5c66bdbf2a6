package pgsql

import (
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Provider:        newPgxProviderRepository(dbPool),
		TransactionType: newPgxTransactionTypeRepository(dbPool),
		FormulaConfig:   newPgxFormulaConfigRepository(dbPool),
		Closing:         newPgxClosingRepository(dbPool),
		Adjustment:      newPgxAdjustmentRepository(dbPool),
		Ledger:          newPgxLedgerRepository(dbPool),
		Shift:           newPgxShiftRepository(dbPool),
	}
}
