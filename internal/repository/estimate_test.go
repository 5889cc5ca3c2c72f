//go:build integration
// +build integration

package repository

import (
	"testing"

	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// EstimateRepositoryTestSuite tests the EstimateRepository
type EstimateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EstimateRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EstimateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEstimateRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EstimateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EstimateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EstimateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithItems tests that line items persist alongside the estimate
func (suite *EstimateRepositoryTestSuite) TestCreateWithItems() {
	creator := suite.factories.User.Create()
	suite.NoError(suite.users.Create(creator))

	estimate := suite.factories.Estimate.WithItems(creator.ID,
		suite.factories.Estimate.Item("R&R Drywall 1/2\"", 120, 2.45),
		suite.factories.Estimate.Item("Paint walls, two coats", 120, 1.10),
	)
	suite.NoError(suite.repo.Create(estimate))

	found, err := suite.repo.GetWithItems(estimate.ID)
	suite.NoError(err)
	suite.Len(found.Items, 2)

	sum := 0.0
	for i := range found.Items {
		sum += found.Items[i].Total()
	}
	suite.InDelta(426.0, sum, 0.001)
}

// TestGetByCreatorIDs tests scoped listing against an allowed creator set
func (suite *EstimateRepositoryTestSuite) TestGetByCreatorIDs() {
	visible := suite.factories.User.Create()
	hidden := suite.factories.User.Create()
	suite.NoError(suite.users.Create(visible))
	suite.NoError(suite.users.Create(hidden))

	suite.NoError(suite.repo.Create(suite.factories.Estimate.Create(visible.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Estimate.Create(hidden.ID)))

	estimates, total, err := suite.repo.GetByCreatorIDs([]uuid.UUID{visible.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(estimates, 1)
	suite.Equal(visible.ID, estimates[0].CreatedByID)

	empty, total, err := suite.repo.GetByCreatorIDs(nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(empty)
}

// TestDeleteCascades tests that deleting an estimate hides its items
func (suite *EstimateRepositoryTestSuite) TestDeleteCascades() {
	creator := suite.factories.User.Create()
	suite.NoError(suite.users.Create(creator))

	estimate := suite.factories.Estimate.WithItems(creator.ID,
		suite.factories.Estimate.Item("Content manipulation", 1, 150),
	)
	suite.NoError(suite.repo.Create(estimate))
	suite.NoError(suite.repo.Delete(estimate.ID))

	_, err := suite.repo.GetByID(estimate.ID)
	suite.Error(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Estimate{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestEstimateRepositoryTestSuite runs the test suite
func TestEstimateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EstimateRepositoryTestSuite))
}
