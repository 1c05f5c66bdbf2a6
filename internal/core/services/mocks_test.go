package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portsrepo "github.com/agentdesk/agent_closings_app/internal/core/ports/repositories"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/dto"
	"github.com/shopspring/decimal"
)

// --- Mock ProviderReader ---
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindProviderByID(ctx context.Context, providerID string) (*domain.Provider, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) ListProvidersByCategory(ctx context.Context, categoryName string, activeOnly bool) ([]domain.Provider, error) {
	args := m.Called(ctx, categoryName, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

var _ portsrepo.ProviderReader = (*MockProviderRepository)(nil)

// --- Mock TransactionTypeReader ---
type MockTransactionTypeRepository struct {
	mock.Mock
}

func (m *MockTransactionTypeRepository) FindTransactionTypeByID(ctx context.Context, transactionTypeID string) (*domain.TransactionType, error) {
	args := m.Called(ctx, transactionTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionType), args.Error(1)
}

var _ portsrepo.TransactionTypeReader = (*MockTransactionTypeRepository)(nil)

// --- Mock FormulaConfigRepository ---
type MockFormulaConfigRepository struct {
	mock.Mock
}

func (m *MockFormulaConfigRepository) FindFormulaConfigByID(ctx context.Context, formulaConfigID string) (*domain.FormulaConfig, error) {
	args := m.Called(ctx, formulaConfigID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormulaConfig), args.Error(1)
}

func (m *MockFormulaConfigRepository) FindFormulaConfigsByProvider(ctx context.Context, providerID string) ([]domain.FormulaConfig, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FormulaConfig), args.Error(1)
}

func (m *MockFormulaConfigRepository) FindFormulaConfigByPair(ctx context.Context, providerID, transactionTypeID string, excludeID *string) (*domain.FormulaConfig, error) {
	args := m.Called(ctx, providerID, transactionTypeID, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormulaConfig), args.Error(1)
}

func (m *MockFormulaConfigRepository) ListFormulaConfigs(ctx context.Context) ([]domain.FormulaConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FormulaConfig), args.Error(1)
}

func (m *MockFormulaConfigRepository) SaveFormulaConfig(ctx context.Context, config domain.FormulaConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockFormulaConfigRepository) UpdateFormulaConfig(ctx context.Context, config domain.FormulaConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockFormulaConfigRepository) DeleteFormulaConfig(ctx context.Context, formulaConfigID string) error {
	args := m.Called(ctx, formulaConfigID)
	return args.Error(0)
}

var _ portsrepo.FormulaConfigRepositoryFacade = (*MockFormulaConfigRepository)(nil)

// --- Mock ClosingRepository ---
type MockClosingRepository struct {
	mock.Mock
}

func (m *MockClosingRepository) FindClosingByID(ctx context.Context, closingID string) (*domain.Closing, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Closing), args.Error(1)
}

func (m *MockClosingRepository) FindClosingByKey(ctx context.Context, providerID, closingDate string, shiftID *string, excludeID *string) (*domain.Closing, error) {
	args := m.Called(ctx, providerID, closingDate, shiftID, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Closing), args.Error(1)
}

func (m *MockClosingRepository) ListClosings(ctx context.Context, startDate, endDate *string) ([]domain.Closing, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Closing), args.Error(1)
}

func (m *MockClosingRepository) SaveClosing(ctx context.Context, closing domain.Closing) error {
	args := m.Called(ctx, closing)
	return args.Error(0)
}

func (m *MockClosingRepository) UpdateClosing(ctx context.Context, closing domain.Closing) error {
	args := m.Called(ctx, closing)
	return args.Error(0)
}

func (m *MockClosingRepository) DeleteClosing(ctx context.Context, closingID string) error {
	args := m.Called(ctx, closingID)
	return args.Error(0)
}

func (m *MockClosingRepository) UpdateClosingStatusByShift(ctx context.Context, shiftID string, status bool) (int64, error) {
	args := m.Called(ctx, shiftID, status)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.ClosingRepositoryFacade = (*MockClosingRepository)(nil)

// --- Mock AdjustmentRepository ---
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) SaveAdjustment(ctx context.Context, adjustment domain.Adjustment, newResult, newVariance decimal.Decimal, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, adjustment, newResult, newVariance, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) FindAdjustmentsByClosing(ctx context.Context, closingID string) ([]domain.Adjustment, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Adjustment), args.Error(1)
}

var _ portsrepo.AdjustmentRepositoryFacade = (*MockAdjustmentRepository)(nil)

// --- Mock LedgerReader ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SumActiveByType(ctx context.Context, transactionTypeID string, startDate, endDate *string) (decimal.Decimal, error) {
	args := m.Called(ctx, transactionTypeID, startDate, endDate)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) SumActiveByProviderAndType(ctx context.Context, providerID, transactionTypeID string, startDate, endDate *string) (decimal.Decimal, error) {
	args := m.Called(ctx, providerID, transactionTypeID, startDate, endDate)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByProviderAndDateRange(ctx context.Context, providerID string, startDate, endDate *string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, providerID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portsrepo.LedgerReader = (*MockLedgerRepository)(nil)

// --- Mock ShiftReader ---
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) HasActiveShift(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.ShiftReader = (*MockShiftRepository)(nil)

// --- Mock CalculationService ---
type MockCalculationService struct {
	mock.Mock
}

func (m *MockCalculationService) ComputeResult(ctx context.Context, providerID string, startDate, endDate *string) decimal.Decimal {
	args := m.Called(ctx, providerID, startDate, endDate)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockCalculationService) ComputeResultsByCategory(ctx context.Context, categoryName string, startDate, endDate *string) ([]dto.ProviderCalculationResult, error) {
	args := m.Called(ctx, categoryName, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProviderCalculationResult), args.Error(1)
}

var _ portssvc.CalculationSvcFacade = (*MockCalculationService)(nil)
