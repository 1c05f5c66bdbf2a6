package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/core/services"
)

// --- Test Suite ---
type CalculationServiceTestSuite struct {
	suite.Suite
	mockProviderRepo *MockProviderRepository
	mockFormulaRepo  *MockFormulaConfigRepository
	mockLedgerRepo   *MockLedgerRepository
	service          portssvc.CalculationSvcFacade
}

func (suite *CalculationServiceTestSuite) SetupTest() {
	suite.mockProviderRepo = new(MockProviderRepository)
	suite.mockFormulaRepo = new(MockFormulaConfigRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewCalculationService(suite.mockProviderRepo, suite.mockFormulaRepo, suite.mockLedgerRepo)
}

func (suite *CalculationServiceTestSuite) agentProvider(id string) *domain.Provider {
	return &domain.Provider{ProviderID: id, Name: "Agent " + id, CategoryName: domain.CategoryAgent, IsActive: true}
}

// --- Test Cases ---

func (suite *CalculationServiceTestSuite) TestComputeResult_PooledSheet() {
	ctx := context.Background()
	providerID := uuid.NewString()
	depositType := "type-deposit"
	feeType := "type-fee"

	configs := []domain.FormulaConfig{
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: depositType, IncludeInCalculation: true, Multiplier: decimal.NewFromInt(1), Pooled: true},
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: feeType, IncludeInCalculation: true, Multiplier: decimal.NewFromInt(-1), Pooled: true},
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerID).Return(configs, nil).Once()
	suite.mockLedgerRepo.On("SumActiveByType", ctx, depositType, (*string)(nil), (*string)(nil)).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockLedgerRepo.On("SumActiveByType", ctx, feeType, (*string)(nil), (*string)(nil)).Return(decimal.NewFromInt(20), nil).Once()

	result := suite.service.ComputeResult(ctx, providerID, nil, nil)

	// 500*1 + 20*(-1) = 480
	suite.True(decimal.NewFromInt(480).Equal(result), "expected 480, got %s", result)
	suite.mockProviderRepo.AssertExpectations(suite.T())
	suite.mockFormulaRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestComputeResult_ExcludedConfigContributesNothing() {
	ctx := context.Background()
	providerID := uuid.NewString()

	configs := []domain.FormulaConfig{
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: "type-a", IncludeInCalculation: true, Multiplier: decimal.NewFromInt(1), Pooled: true},
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: "type-b", IncludeInCalculation: false, Multiplier: decimal.NewFromInt(10), Pooled: true},
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerID).Return(configs, nil).Once()
	suite.mockLedgerRepo.On("SumActiveByType", ctx, "type-a", (*string)(nil), (*string)(nil)).Return(decimal.NewFromInt(100), nil).Once()

	result := suite.service.ComputeResult(ctx, providerID, nil, nil)

	suite.True(decimal.NewFromInt(100).Equal(result))
	// The excluded type must never hit the ledger.
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SumActiveByType", ctx, "type-b", (*string)(nil), (*string)(nil))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestComputeResult_IndividualEntriesSinglePass() {
	ctx := context.Background()
	providerID := uuid.NewString()
	commissionType := "type-commission"
	chargebackType := "type-chargeback"

	configs := []domain.FormulaConfig{
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: commissionType, IncludeInCalculation: true, Multiplier: decimal.NewFromFloat(0.5), Pooled: false},
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: chargebackType, IncludeInCalculation: true, Multiplier: decimal.NewFromInt(-1), Pooled: false},
	}
	entries := []domain.LedgerEntry{
		{TransactionTypeID: commissionType, Value: decimal.NewFromInt(200)},
		{TransactionTypeID: commissionType, Value: decimal.NewFromInt(100)},
		{TransactionTypeID: chargebackType, Value: decimal.NewFromInt(40)},
		{TransactionTypeID: "type-unconfigured", Value: decimal.NewFromInt(999)},
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerID).Return(configs, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByProviderAndDateRange", ctx, providerID, (*string)(nil), (*string)(nil)).Return(entries, nil).Once()

	result := suite.service.ComputeResult(ctx, providerID, nil, nil)

	// 300*0.5 + 40*(-1) = 110; the unconfigured type is ignored.
	suite.True(decimal.NewFromInt(110).Equal(result), "expected 110, got %s", result)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestComputeResult_UnknownProviderContributesZero() {
	ctx := context.Background()
	providerID := uuid.NewString()

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(nil, assert.AnError).Once()

	result := suite.service.ComputeResult(ctx, providerID, nil, nil)

	suite.True(result.IsZero())
	suite.mockFormulaRepo.AssertNotCalled(suite.T(), "FindFormulaConfigsByProvider", ctx, providerID)
}

func (suite *CalculationServiceTestSuite) TestComputeResult_PooledSumErrorContributesZero() {
	ctx := context.Background()
	providerID := uuid.NewString()

	configs := []domain.FormulaConfig{
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: "type-a", IncludeInCalculation: true, Multiplier: decimal.NewFromInt(1), Pooled: true},
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerID).Return(configs, nil).Once()
	suite.mockLedgerRepo.On("SumActiveByType", ctx, "type-a", (*string)(nil), (*string)(nil)).Return(decimal.Zero, assert.AnError).Once()

	result := suite.service.ComputeResult(ctx, providerID, nil, nil)

	suite.True(result.IsZero())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestComputeResultsByCategory_PooledSumFetchedOnce() {
	ctx := context.Background()
	providerA := uuid.NewString()
	providerB := uuid.NewString()
	depositType := "type-deposit"

	providers := []domain.Provider{
		{ProviderID: providerA, Name: "Agent A", CategoryName: domain.CategoryAgent, IsActive: true},
		{ProviderID: providerB, Name: "Agent B", CategoryName: domain.CategoryAgent, IsActive: true},
	}
	configsFor := func(providerID string) []domain.FormulaConfig {
		return []domain.FormulaConfig{
			{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: depositType, IncludeInCalculation: true, Multiplier: decimal.NewFromInt(2), Pooled: true},
		}
	}

	suite.mockProviderRepo.On("ListProvidersByCategory", ctx, domain.CategoryAgent, true).Return(providers, nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerA).Return(configsFor(providerA), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerB).Return(configsFor(providerB), nil).Once()
	// Both providers reference the same pooled type; the ledger is hit once.
	suite.mockLedgerRepo.On("SumActiveByType", ctx, depositType, (*string)(nil), (*string)(nil)).Return(decimal.NewFromInt(50), nil).Once()

	results, err := suite.service.ComputeResultsByCategory(ctx, domain.CategoryAgent, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.True(decimal.NewFromInt(100).Equal(results[0].Result))
	suite.True(decimal.NewFromInt(100).Equal(results[1].Result))
	suite.mockLedgerRepo.AssertNumberOfCalls(suite.T(), "SumActiveByType", 1)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestComputeResultsByCategory_ConfigErrorYieldsZeroRow() {
	ctx := context.Background()
	providerA := uuid.NewString()

	providers := []domain.Provider{
		{ProviderID: providerA, Name: "Agent A", CategoryName: domain.CategoryAgent, IsActive: true},
	}

	suite.mockProviderRepo.On("ListProvidersByCategory", ctx, domain.CategoryAgent, true).Return(providers, nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerA).Return(nil, assert.AnError).Once()

	results, err := suite.service.ComputeResultsByCategory(ctx, domain.CategoryAgent, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.True(results[0].Result.IsZero())
}

func (suite *CalculationServiceTestSuite) TestComputeResultsByCategory_ListError() {
	ctx := context.Background()

	suite.mockProviderRepo.On("ListProvidersByCategory", ctx, domain.CategoryAgent, true).Return(nil, assert.AnError).Once()

	results, err := suite.service.ComputeResultsByCategory(ctx, domain.CategoryAgent, nil, nil)

	suite.Require().Error(err)
	suite.Nil(results)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CalculationServiceTestSuite) TestComputeResult_DateRangeForwarded() {
	ctx := context.Background()
	providerID := uuid.NewString()
	startDate := "2025-01-01"
	endDate := "2025-01-15"

	configs := []domain.FormulaConfig{
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: "type-a", IncludeInCalculation: true, Multiplier: decimal.NewFromInt(1), Pooled: true},
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerID).Return(configs, nil).Once()
	suite.mockLedgerRepo.On("SumActiveByType", ctx, "type-a", &startDate, &endDate).Return(decimal.NewFromInt(42), nil).Once()

	result := suite.service.ComputeResult(ctx, providerID, &startDate, &endDate)

	suite.True(decimal.NewFromInt(42).Equal(result))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestComputeResult_MixedPooledAndIndividual() {
	ctx := context.Background()
	providerID := uuid.NewString()

	configs := []domain.FormulaConfig{
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: "type-pooled", IncludeInCalculation: true, Multiplier: decimal.NewFromInt(1), Pooled: true},
		{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: "type-own", IncludeInCalculation: true, Multiplier: decimal.NewFromInt(3), Pooled: false},
	}
	entries := []domain.LedgerEntry{
		{TransactionTypeID: "type-own", Value: decimal.NewFromInt(10)},
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigsByProvider", ctx, providerID).Return(configs, nil).Once()
	suite.mockLedgerRepo.On("SumActiveByType", ctx, "type-pooled", (*string)(nil), (*string)(nil)).Return(decimal.NewFromInt(7), nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByProviderAndDateRange", ctx, providerID, (*string)(nil), (*string)(nil)).Return(entries, nil).Once()

	result := suite.service.ComputeResult(ctx, providerID, nil, nil)

	// 7*1 + 10*3 = 37
	suite.True(decimal.NewFromInt(37).Equal(result), "expected 37, got %s", result)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestCalculationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalculationServiceTestSuite))
}
