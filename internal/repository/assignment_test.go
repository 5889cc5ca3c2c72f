//go:build integration
// +build integration

package repository

import (
	"testing"

	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentRepositoryTestSuite) createPair() (*models.User, *models.User) {
	manager := suite.factories.User.WithRole(models.RoleManager)
	employee := suite.factories.User.Create()
	suite.NoError(suite.users.Create(manager))
	suite.NoError(suite.users.Create(employee))
	return manager, employee
}

// TestCreate tests creating a reporting edge
func (suite *AssignmentRepositoryTestSuite) TestCreate() {
	manager, employee := suite.createPair()

	edge := suite.factories.Assignment.Between(manager.ID, employee.ID)
	err := suite.repo.Create(edge)

	suite.NoError(err)

	found, err := suite.repo.GetByPair(manager.ID, employee.ID)
	suite.NoError(err)
	suite.Equal(employee.ID, found.EmployeeID)
}

// TestCreateDuplicatePair tests that the (manager, employee) pair is unique
func (suite *AssignmentRepositoryTestSuite) TestCreateDuplicatePair() {
	manager, employee := suite.createPair()

	suite.NoError(suite.repo.Create(suite.factories.Assignment.Between(manager.ID, employee.ID)))

	err := suite.repo.Create(suite.factories.Assignment.Between(manager.ID, employee.ID))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestEmployeeUnderSeveralManagers tests that an employee can carry edges
// from more than one manager
func (suite *AssignmentRepositoryTestSuite) TestEmployeeUnderSeveralManagers() {
	manager1, employee := suite.createPair()
	manager2 := suite.factories.User.WithRole(models.RoleManager)
	suite.NoError(suite.users.Create(manager2))

	suite.NoError(suite.repo.Create(suite.factories.Assignment.Between(manager1.ID, employee.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Assignment.Between(manager2.ID, employee.ID)))

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 2)
}

// TestGetByManagerID tests listing one manager's direct-report edges
func (suite *AssignmentRepositoryTestSuite) TestGetByManagerID() {
	manager, employee1 := suite.createPair()
	employee2 := suite.factories.User.Create()
	other := suite.factories.User.WithRole(models.RoleManager)
	suite.NoError(suite.users.Create(employee2))
	suite.NoError(suite.users.Create(other))

	suite.NoError(suite.repo.Create(suite.factories.Assignment.Between(manager.ID, employee1.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Assignment.Between(manager.ID, employee2.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Assignment.Between(other.ID, employee1.ID)))

	edges, err := suite.repo.GetByManagerID(manager.ID)
	suite.NoError(err)
	suite.Len(edges, 2)
	for _, edge := range edges {
		suite.Equal(manager.ID, edge.ManagerID)
		suite.NotEqual("", edge.Employee.Email)
	}
}

// TestDelete tests removing an edge and re-creating the same pair afterwards
func (suite *AssignmentRepositoryTestSuite) TestDelete() {
	manager, employee := suite.createPair()

	suite.NoError(suite.repo.Create(suite.factories.Assignment.Between(manager.ID, employee.ID)))
	suite.NoError(suite.repo.Delete(manager.ID, employee.ID))

	_, err := suite.repo.GetByPair(manager.ID, employee.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// The partial unique index ignores soft-deleted edges
	suite.NoError(suite.repo.Create(suite.factories.Assignment.Between(manager.ID, employee.ID)))
}

// TestAssignmentRepositoryTestSuite runs the test suite
func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
