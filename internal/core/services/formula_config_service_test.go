package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/core/services"
	"github.com/agentdesk/agent_closings_app/internal/dto"
)

// --- Test Suite ---
type FormulaConfigServiceTestSuite struct {
	suite.Suite
	mockProviderRepo *MockProviderRepository
	mockTxTypeRepo   *MockTransactionTypeRepository
	mockFormulaRepo  *MockFormulaConfigRepository
	service          portssvc.FormulaConfigSvcFacade
}

func (suite *FormulaConfigServiceTestSuite) SetupTest() {
	suite.mockProviderRepo = new(MockProviderRepository)
	suite.mockTxTypeRepo = new(MockTransactionTypeRepository)
	suite.mockFormulaRepo = new(MockFormulaConfigRepository)
	suite.service = services.NewFormulaConfigService(suite.mockProviderRepo, suite.mockTxTypeRepo, suite.mockFormulaRepo)
}

func (suite *FormulaConfigServiceTestSuite) agentProvider(id string) *domain.Provider {
	return &domain.Provider{ProviderID: id, Name: "Agent " + id, CategoryName: domain.CategoryAgent, IsActive: true}
}

func (suite *FormulaConfigServiceTestSuite) transactionType(id string) *domain.TransactionType {
	return &domain.TransactionType{TransactionTypeID: id, Name: "Type " + id, IsActive: true}
}

// --- Test Cases ---

func (suite *FormulaConfigServiceTestSuite) TestCreateFormulaConfig_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	providerID := uuid.NewString()
	typeID := uuid.NewString()
	req := dto.CreateFormulaConfigRequest{
		ProviderID:           providerID,
		TransactionTypeID:    typeID,
		IncludeInCalculation: true,
		Multiplier:           decimal.NewFromInt(-1),
		Pooled:               true,
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockTxTypeRepo.On("FindTransactionTypeByID", ctx, typeID).Return(suite.transactionType(typeID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigByPair", ctx, providerID, typeID, (*string)(nil)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFormulaRepo.On("SaveFormulaConfig", ctx, mock.MatchedBy(func(c domain.FormulaConfig) bool {
		return c.ProviderID == providerID &&
			c.TransactionTypeID == typeID &&
			c.IncludeInCalculation &&
			c.Multiplier.Equal(decimal.NewFromInt(-1)) &&
			c.Pooled &&
			c.CreatedBy == userID
	})).Return(nil).Once()

	config, err := suite.service.CreateFormulaConfig(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(config)
	suite.Equal(providerID, config.ProviderID)
	suite.mockFormulaRepo.AssertExpectations(suite.T())
}

func (suite *FormulaConfigServiceTestSuite) TestCreateFormulaConfig_UnknownProvider() {
	ctx := context.Background()
	providerID := uuid.NewString()
	req := dto.CreateFormulaConfigRequest{ProviderID: providerID, TransactionTypeID: uuid.NewString(), Multiplier: decimal.NewFromInt(1)}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(nil, apperrors.ErrNotFound).Once()

	config, err := suite.service.CreateFormulaConfig(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(config)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFormulaRepo.AssertNotCalled(suite.T(), "SaveFormulaConfig", mock.Anything, mock.Anything)
}

func (suite *FormulaConfigServiceTestSuite) TestCreateFormulaConfig_DuplicatePair() {
	ctx := context.Background()
	providerID := uuid.NewString()
	typeID := uuid.NewString()
	req := dto.CreateFormulaConfigRequest{ProviderID: providerID, TransactionTypeID: typeID, Multiplier: decimal.NewFromInt(1)}

	existing := &domain.FormulaConfig{FormulaConfigID: uuid.NewString(), ProviderID: providerID, TransactionTypeID: typeID}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockTxTypeRepo.On("FindTransactionTypeByID", ctx, typeID).Return(suite.transactionType(typeID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigByPair", ctx, providerID, typeID, (*string)(nil)).Return(existing, nil).Once()

	config, err := suite.service.CreateFormulaConfig(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(config)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *FormulaConfigServiceTestSuite) TestUpdateFormulaConfig_PairChangeRecheck() {
	ctx := context.Background()
	userID := uuid.NewString()
	providerID := uuid.NewString()
	oldTypeID := uuid.NewString()
	newTypeID := uuid.NewString()
	existing := &domain.FormulaConfig{
		FormulaConfigID:   uuid.NewString(),
		ProviderID:        providerID,
		TransactionTypeID: oldTypeID,
		Multiplier:        decimal.NewFromInt(1),
	}
	req := dto.UpdateFormulaConfigRequest{TransactionTypeID: &newTypeID}

	suite.mockFormulaRepo.On("FindFormulaConfigByID", ctx, existing.FormulaConfigID).Return(existing, nil).Once()
	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()
	suite.mockTxTypeRepo.On("FindTransactionTypeByID", ctx, newTypeID).Return(suite.transactionType(newTypeID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigByPair", ctx, providerID, newTypeID, &existing.FormulaConfigID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFormulaRepo.On("UpdateFormulaConfig", ctx, mock.MatchedBy(func(c domain.FormulaConfig) bool {
		return c.TransactionTypeID == newTypeID && c.LastUpdatedBy == userID
	})).Return(nil).Once()

	config, err := suite.service.UpdateFormulaConfig(ctx, existing.FormulaConfigID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(newTypeID, config.TransactionTypeID)
	suite.mockFormulaRepo.AssertExpectations(suite.T())
}

func (suite *FormulaConfigServiceTestSuite) TestUpdateFormulaConfig_FlagsOnlyNoRecheck() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.FormulaConfig{
		FormulaConfigID:      uuid.NewString(),
		ProviderID:           uuid.NewString(),
		TransactionTypeID:    uuid.NewString(),
		IncludeInCalculation: true,
		Multiplier:           decimal.NewFromInt(1),
	}
	include := false
	multiplier := decimal.NewFromFloat(2.5)
	req := dto.UpdateFormulaConfigRequest{IncludeInCalculation: &include, Multiplier: &multiplier}

	suite.mockFormulaRepo.On("FindFormulaConfigByID", ctx, existing.FormulaConfigID).Return(existing, nil).Once()
	suite.mockFormulaRepo.On("UpdateFormulaConfig", ctx, mock.MatchedBy(func(c domain.FormulaConfig) bool {
		return !c.IncludeInCalculation && c.Multiplier.Equal(decimal.NewFromFloat(2.5))
	})).Return(nil).Once()

	config, err := suite.service.UpdateFormulaConfig(ctx, existing.FormulaConfigID, req, userID)

	suite.Require().NoError(err)
	suite.False(config.IncludeInCalculation)
	suite.mockFormulaRepo.AssertNotCalled(suite.T(), "FindFormulaConfigByPair", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FormulaConfigServiceTestSuite) TestDeleteFormulaConfig_NotFound() {
	ctx := context.Background()
	formulaConfigID := uuid.NewString()

	suite.mockFormulaRepo.On("DeleteFormulaConfig", ctx, formulaConfigID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteFormulaConfig(ctx, formulaConfigID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FormulaConfigServiceTestSuite) TestBulkUpsert_MixedResults() {
	ctx := context.Background()
	userID := uuid.NewString()
	providerID := uuid.NewString()
	existingTypeID := uuid.NewString()
	newTypeID := uuid.NewString()
	unknownTypeID := uuid.NewString()

	entries := []dto.FormulaConfigEntry{
		{TransactionTypeID: existingTypeID, IncludeInCalculation: true, Multiplier: decimal.NewFromInt(2), Pooled: true},
		{TransactionTypeID: newTypeID, IncludeInCalculation: true, Multiplier: decimal.NewFromInt(-1)},
		{TransactionTypeID: unknownTypeID, Multiplier: decimal.NewFromInt(1)},
	}

	existing := &domain.FormulaConfig{
		FormulaConfigID:   uuid.NewString(),
		ProviderID:        providerID,
		TransactionTypeID: existingTypeID,
		Multiplier:        decimal.NewFromInt(1),
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(suite.agentProvider(providerID), nil).Once()

	// Entry 1: exists, updated in place.
	suite.mockTxTypeRepo.On("FindTransactionTypeByID", ctx, existingTypeID).Return(suite.transactionType(existingTypeID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigByPair", ctx, providerID, existingTypeID, (*string)(nil)).Return(existing, nil).Once()
	suite.mockFormulaRepo.On("UpdateFormulaConfig", ctx, mock.MatchedBy(func(c domain.FormulaConfig) bool {
		return c.FormulaConfigID == existing.FormulaConfigID && c.Multiplier.Equal(decimal.NewFromInt(2)) && c.Pooled
	})).Return(nil).Once()

	// Entry 2: absent, created.
	suite.mockTxTypeRepo.On("FindTransactionTypeByID", ctx, newTypeID).Return(suite.transactionType(newTypeID), nil).Once()
	suite.mockFormulaRepo.On("FindFormulaConfigByPair", ctx, providerID, newTypeID, (*string)(nil)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFormulaRepo.On("SaveFormulaConfig", ctx, mock.MatchedBy(func(c domain.FormulaConfig) bool {
		return c.TransactionTypeID == newTypeID && c.Multiplier.Equal(decimal.NewFromInt(-1)) && c.CreatedBy == userID
	})).Return(nil).Once()

	// Entry 3: unknown transaction type, fails independently.
	suite.mockTxTypeRepo.On("FindTransactionTypeByID", ctx, unknownTypeID).Return(nil, apperrors.ErrNotFound).Once()

	results, err := suite.service.BulkUpsertFormulaConfigs(ctx, providerID, entries, userID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 3)

	suite.NotNil(results[0].Config)
	suite.Empty(results[0].Error)
	suite.NotNil(results[1].Config)
	suite.Empty(results[1].Error)
	suite.Nil(results[2].Config)
	suite.NotEmpty(results[2].Error)

	suite.mockFormulaRepo.AssertExpectations(suite.T())
}

func (suite *FormulaConfigServiceTestSuite) TestBulkUpsert_UnknownProvider() {
	ctx := context.Background()
	providerID := uuid.NewString()

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(nil, apperrors.ErrNotFound).Once()

	results, err := suite.service.BulkUpsertFormulaConfigs(ctx, providerID, []dto.FormulaConfigEntry{{TransactionTypeID: uuid.NewString(), Multiplier: decimal.NewFromInt(1)}}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(results)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestFormulaConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FormulaConfigServiceTestSuite))
}
