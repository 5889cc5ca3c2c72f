package service_test

import (
	"testing"

	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/mocks"
	"ops-portal-backend/internal/scope"
	"ops-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EstimateServiceTestSuite defines the test suite for EstimateService
type EstimateServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockEstimateRepositoryInterface
	mockDir         *mocks.MockOrgDirectoryInterface
	estimateService *service.EstimateService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *EstimateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEstimateRepositoryInterface(suite.ctrl)
	suite.mockDir = mocks.NewMockOrgDirectoryInterface(suite.ctrl)
	suite.validator = validator.New()

	resolver := scope.NewResolver(suite.mockDir)
	suite.estimateService = service.NewEstimateService(suite.mockRepo, resolver, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *EstimateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func estimateWithItems(items ...models.EstimateItem) *models.Estimate {
	e := &models.Estimate{JobName: "Maple St", Source: "carrier", Items: items}
	e.ID = uuid.New()
	return e
}

// TestCreateEstimate tests creating an estimate with line items
func (suite *EstimateServiceTestSuite) TestCreateEstimate() {
	creator := uuid.New()
	req := &service.CreateEstimateRequest{
		JobName: "Maple St water loss",
		Source:  "carrier",
		Items: []service.CreateEstimateItemRequest{
			{Description: "Drywall replacement", Quantity: 120, Unit: "sf", UnitPrice: 2.5},
			{Description: "Carpet removal", Quantity: 30, Unit: "sy", UnitPrice: 4},
		},
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.estimateService.CreateEstimate(creator, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Items, 2)
	assert.InDelta(suite.T(), 120*2.5+30*4, response.GrandTotal, 0.001)
}

// TestCreateEstimateNoItems tests that an estimate needs at least one item
func (suite *EstimateServiceTestSuite) TestCreateEstimateNoItems() {
	req := &service.CreateEstimateRequest{JobName: "Maple St", Source: "carrier"}

	response, err := suite.estimateService.CreateEstimate(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestCompareEstimatesExactMatch tests pairing identical descriptions
func (suite *EstimateServiceTestSuite) TestCompareEstimatesExactMatch() {
	left := estimateWithItems(
		models.EstimateItem{Description: "Drywall replacement", Quantity: 100, UnitPrice: 2},
	)
	right := estimateWithItems(
		models.EstimateItem{Description: "drywall replacement", Quantity: 100, UnitPrice: 2.5},
	)

	suite.mockRepo.EXPECT().GetWithItems(left.ID).Return(left, nil).Times(1)
	suite.mockRepo.EXPECT().GetWithItems(right.ID).Return(right, nil).Times(1)

	response, err := suite.estimateService.CompareEstimates(left.ID, right.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Lines, 1)
	assert.NotNil(suite.T(), response.Lines[0].Left)
	assert.NotNil(suite.T(), response.Lines[0].Right)
	assert.InDelta(suite.T(), 1.0, response.Lines[0].Similarity, 0.001)
	assert.InDelta(suite.T(), 50, response.Lines[0].Delta, 0.001)
	assert.InDelta(suite.T(), 50, response.Delta, 0.001)
}

// TestCompareEstimatesFuzzyMatch tests pairing near-identical descriptions
func (suite *EstimateServiceTestSuite) TestCompareEstimatesFuzzyMatch() {
	left := estimateWithItems(
		models.EstimateItem{Description: "Remove and replace carpet pad", Quantity: 1, UnitPrice: 300},
	)
	right := estimateWithItems(
		models.EstimateItem{Description: "Remove & replace carpet pad", Quantity: 1, UnitPrice: 350},
	)

	suite.mockRepo.EXPECT().GetWithItems(left.ID).Return(left, nil).Times(1)
	suite.mockRepo.EXPECT().GetWithItems(right.ID).Return(right, nil).Times(1)

	response, err := suite.estimateService.CompareEstimates(left.ID, right.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Lines, 1)
	assert.NotNil(suite.T(), response.Lines[0].Right)
	assert.Greater(suite.T(), response.Lines[0].Similarity, 0.82)
}

// TestCompareEstimatesUnmatchedLines tests one-sided leftovers
func (suite *EstimateServiceTestSuite) TestCompareEstimatesUnmatchedLines() {
	left := estimateWithItems(
		models.EstimateItem{Description: "Drywall replacement", Quantity: 1, UnitPrice: 100},
	)
	right := estimateWithItems(
		models.EstimateItem{Description: "Roof tarp installation", Quantity: 1, UnitPrice: 400},
	)

	suite.mockRepo.EXPECT().GetWithItems(left.ID).Return(left, nil).Times(1)
	suite.mockRepo.EXPECT().GetWithItems(right.ID).Return(right, nil).Times(1)

	response, err := suite.estimateService.CompareEstimates(left.ID, right.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Lines, 2)
	// Left-only line loses its total, right-only line adds it.
	assert.Nil(suite.T(), response.Lines[0].Right)
	assert.InDelta(suite.T(), -100, response.Lines[0].Delta, 0.001)
	assert.Nil(suite.T(), response.Lines[1].Left)
	assert.InDelta(suite.T(), 400, response.Lines[1].Delta, 0.001)
}

// TestCompareEstimatesEmptyItems tests comparison of an empty estimate
func (suite *EstimateServiceTestSuite) TestCompareEstimatesEmptyItems() {
	left := estimateWithItems()
	right := estimateWithItems(models.EstimateItem{Description: "x", Quantity: 1, UnitPrice: 1})

	suite.mockRepo.EXPECT().GetWithItems(left.ID).Return(left, nil).Times(1)
	suite.mockRepo.EXPECT().GetWithItems(right.ID).Return(right, nil).Times(1)

	response, err := suite.estimateService.CompareEstimates(left.ID, right.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEstimateHasNoItems)
	assert.Nil(suite.T(), response)
}

// TestEstimateServiceTestSuite runs the test suite
func TestEstimateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EstimateServiceTestSuite))
}
