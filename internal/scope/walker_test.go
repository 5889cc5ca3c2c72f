package scope_test

import (
	"testing"

	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/scope"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReportsTransitiveClosure(t *testing.T) {
	a, b, c, d, e := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	g := scope.NewGraph([]models.ManagerAssignment{
		{ManagerID: a, EmployeeID: b},
		{ManagerID: b, EmployeeID: c},
		{ManagerID: b, EmployeeID: d},
		{ManagerID: c, EmployeeID: e},
	})

	assert.Equal(t, idSet(b, c, d, e), g.Reports(a))
	assert.Equal(t, idSet(c, d, e), g.Reports(b))
	assert.Equal(t, idSet(e), g.Reports(c))
	assert.Empty(t, g.Reports(e))
}

func TestReportsNoSelfInclusion(t *testing.T) {
	m, e := uuid.New(), uuid.New()
	g := scope.NewGraph([]models.ManagerAssignment{
		{ManagerID: m, EmployeeID: m}, // malformed self-edge
		{ManagerID: m, EmployeeID: e},
	})

	reports := g.Reports(m)
	assert.NotContains(t, reports, m)
	assert.Contains(t, reports, e)
}

func TestReportsDuplicatePaths(t *testing.T) {
	// e reports to both m1 and m2, both under root. e must appear once.
	root, m1, m2, e := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	g := scope.NewGraph([]models.ManagerAssignment{
		{ManagerID: root, EmployeeID: m1},
		{ManagerID: root, EmployeeID: m2},
		{ManagerID: m1, EmployeeID: e},
		{ManagerID: m2, EmployeeID: e},
	})

	assert.Equal(t, idSet(m1, m2, e), g.Reports(root))
}

func TestReportsCycleTerminates(t *testing.T) {
	// Cycle among descendants: b -> c -> b. Traversal must terminate and
	// still include both.
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	g := scope.NewGraph([]models.ManagerAssignment{
		{ManagerID: a, EmployeeID: b},
		{ManagerID: b, EmployeeID: c},
		{ManagerID: c, EmployeeID: b},
	})

	assert.Equal(t, idSet(b, c), g.Reports(a))
}

func TestReportsIdempotent(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	g := scope.NewGraph([]models.ManagerAssignment{
		{ManagerID: a, EmployeeID: b},
		{ManagerID: b, EmployeeID: c},
	})

	assert.Equal(t, g.Reports(a), g.Reports(a))
}

func TestReportsEmptyGraph(t *testing.T) {
	g := scope.NewGraph(nil)
	assert.Empty(t, g.Reports(uuid.New()))
}

func TestWouldCycle(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	g := scope.NewGraph([]models.ManagerAssignment{
		{ManagerID: a, EmployeeID: b},
		{ManagerID: b, EmployeeID: c},
	})

	assert.True(t, g.WouldCycle(a, a), "self-edge is a cycle")
	assert.True(t, g.WouldCycle(c, a), "a already reaches c")
	assert.True(t, g.WouldCycle(b, a))
	assert.False(t, g.WouldCycle(a, d))
	assert.False(t, g.WouldCycle(d, a))
}

func TestIsManaged(t *testing.T) {
	m, e := uuid.New(), uuid.New()
	g := scope.NewGraph([]models.ManagerAssignment{{ManagerID: m, EmployeeID: e}})

	assert.True(t, g.IsManaged(e))
	assert.False(t, g.IsManaged(m))
}
