package scope

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Graph is an in-memory adjacency view of the manager-assignment edge set.
// The full relation is loaded once per request and traversed here, instead
// of issuing one query per hierarchy level.
type Graph struct {
	children map[uuid.UUID][]uuid.UUID
	managed  map[uuid.UUID]bool
}

// NewGraph builds the adjacency map from the raw edge rows.
func NewGraph(edges []models.ManagerAssignment) *Graph {
	g := &Graph{
		children: make(map[uuid.UUID][]uuid.UUID, len(edges)),
		managed:  make(map[uuid.UUID]bool, len(edges)),
	}
	for _, e := range edges {
		g.children[e.ManagerID] = append(g.children[e.ManagerID], e.EmployeeID)
		g.managed[e.EmployeeID] = true
	}
	return g
}

// Reports returns the transitive closure of employees under managerID,
// breadth-first. The root is pre-marked visited so it never appears in its
// own report set, and revisits through duplicate paths or cycles are
// absorbed by the visited set.
func (g *Graph) Reports(managerID uuid.UUID) map[uuid.UUID]struct{} {
	visited := map[uuid.UUID]struct{}{managerID: {}}
	result := make(map[uuid.UUID]struct{})

	frontier := []uuid.UUID{managerID}
	for len(frontier) > 0 {
		next := frontier[:0:0]
		for _, id := range frontier {
			for _, child := range g.children[id] {
				if _, seen := visited[child]; seen {
					continue
				}
				visited[child] = struct{}{}
				result[child] = struct{}{}
				next = append(next, child)
			}
		}
		frontier = next
	}
	return result
}

// IsManaged reports whether the user appears as the employee side of any
// edge. Users with no manager are hierarchy roots.
func (g *Graph) IsManaged(userID uuid.UUID) bool {
	return g.managed[userID]
}

// WouldCycle reports whether adding managerID -> employeeID would create a
// cycle, i.e. whether the manager is already reachable from the employee.
func (g *Graph) WouldCycle(managerID, employeeID uuid.UUID) bool {
	if managerID == employeeID {
		return true
	}
	_, reachable := g.Reports(employeeID)[managerID]
	return reachable
}
