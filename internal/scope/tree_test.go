package scope_test

import (
	"testing"

	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/scope"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func user(name string, role models.UserRole) models.User {
	u := models.User{FullName: name, Email: name + "@example.com", Role: role}
	u.ID = uuid.New()
	return u
}

func TestBuildHierarchyTreeSingleRoot(t *testing.T) {
	a := user("Alice", models.RoleOwner)
	b := user("Bob", models.RoleEmployee)
	c := user("Carol", models.RoleEmployee)
	edges := []models.ManagerAssignment{
		{ManagerID: a.ID, EmployeeID: b.ID},
		{ManagerID: a.ID, EmployeeID: c.ID},
	}

	forest := scope.BuildHierarchyTree([]models.User{a, b, c}, edges)

	require.Len(t, forest, 1)
	root := forest[0]
	assert.Equal(t, a.ID, root.ID)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "Bob", root.Children[0].Name)
	assert.Equal(t, "Carol", root.Children[1].Name)
}

func TestBuildHierarchyTreeNoEdgesAllSingletons(t *testing.T) {
	users := []models.User{
		user("Alice", models.RoleOwner),
		user("Bob", models.RoleEmployee),
		user("Carol", models.RoleEmployee),
	}

	forest := scope.BuildHierarchyTree(users, nil)

	require.Len(t, forest, 3)
	for _, n := range forest {
		assert.Empty(t, n.Children)
	}
}

func TestBuildHierarchyTreeChildSortByRoleRankThenName(t *testing.T) {
	boss := user("Boss", models.RoleOwner)
	mgr := user("Zed", models.RoleManager)
	empA := user("Amy", models.RoleEmployee)
	empB := user("Ben", models.RoleEmployee)
	edges := []models.ManagerAssignment{
		{ManagerID: boss.ID, EmployeeID: empB.ID},
		{ManagerID: boss.ID, EmployeeID: mgr.ID},
		{ManagerID: boss.ID, EmployeeID: empA.ID},
	}

	forest := scope.BuildHierarchyTree([]models.User{boss, mgr, empA, empB}, edges)

	require.Len(t, forest, 1)
	names := []string{}
	for _, c := range forest[0].Children {
		names = append(names, c.Name)
	}
	// Manager outranks employees; employees tie and fall back to name.
	assert.Equal(t, []string{"Zed", "Amy", "Ben"}, names)
}

func TestBuildHierarchyTreeSortFallsBackToEmail(t *testing.T) {
	boss := user("Boss", models.RoleOwner)
	nameless := models.User{Email: "aa@example.com", Role: models.RoleEmployee}
	nameless.ID = uuid.New()
	named := user("Bo", models.RoleEmployee)
	edges := []models.ManagerAssignment{
		{ManagerID: boss.ID, EmployeeID: named.ID},
		{ManagerID: boss.ID, EmployeeID: nameless.ID},
	}

	forest := scope.BuildHierarchyTree([]models.User{boss, nameless, named}, edges)

	require.Len(t, forest, 1)
	assert.Equal(t, "aa@example.com", forest[0].Children[0].Email)
	assert.Equal(t, "Bo", forest[0].Children[1].Name)
}

func TestBuildHierarchyTreeMultipleManagers(t *testing.T) {
	// An employee with two managers appears under both, as separate values.
	m1 := user("M1", models.RoleManager)
	m2 := user("M2", models.RoleManager)
	e := user("Emp", models.RoleEmployee)
	edges := []models.ManagerAssignment{
		{ManagerID: m1.ID, EmployeeID: e.ID},
		{ManagerID: m2.ID, EmployeeID: e.ID},
	}

	forest := scope.BuildHierarchyTree([]models.User{m1, m2, e}, edges)

	require.Len(t, forest, 2)
	for _, root := range forest {
		require.Len(t, root.Children, 1)
		assert.Equal(t, e.ID, root.Children[0].ID)
	}
}

func TestBuildHierarchyTreeMultipleRootsOrdered(t *testing.T) {
	admin := user("Zoe", models.RoleSuperAdmin)
	owner := user("Andy", models.RoleOwner)

	forest := scope.BuildHierarchyTree([]models.User{owner, admin}, nil)

	require.Len(t, forest, 2)
	assert.Equal(t, "Zoe", forest[0].Name, "super admin ranks above owner")
	assert.Equal(t, "Andy", forest[1].Name)
}

func TestBuildHierarchyTreeCyclicEdgesTerminate(t *testing.T) {
	a := user("A", models.RoleManager)
	b := user("B", models.RoleEmployee)
	c := user("C", models.RoleEmployee)
	edges := []models.ManagerAssignment{
		{ManagerID: a.ID, EmployeeID: b.ID},
		{ManagerID: b.ID, EmployeeID: c.ID},
		{ManagerID: c.ID, EmployeeID: b.ID}, // malformed cycle
	}

	forest := scope.BuildHierarchyTree([]models.User{a, b, c}, edges)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	bNode := forest[0].Children[0]
	require.Len(t, bNode.Children, 1)
	assert.Empty(t, bNode.Children[0].Children, "cycle back to B is not expanded")
}

func TestBuildHierarchyTreeUnknownEmployeeSkipped(t *testing.T) {
	a := user("A", models.RoleManager)
	edges := []models.ManagerAssignment{{ManagerID: a.ID, EmployeeID: uuid.New()}}

	forest := scope.BuildHierarchyTree([]models.User{a}, edges)

	require.Len(t, forest, 1)
	assert.Empty(t, forest[0].Children)
}
