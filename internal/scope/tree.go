package scope

import (
	"sort"

	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// TreeNode is one user in the rendered hierarchy forest. Nodes are value
// types: a user with two managers appears as an independent copy under each,
// so mutating one subtree can never alias into another.
type TreeNode struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	Children []TreeNode      `json:"children"`
}

// BuildHierarchyTree renders the whole organization as a forest. A user is a
// root iff no edge names them as the employee. Children are sorted by role
// rank (highest authority first), then by display name.
func BuildHierarchyTree(users []models.User, edges []models.ManagerAssignment) []TreeNode {
	byID := make(map[uuid.UUID]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	graph := NewGraph(edges)

	var roots []TreeNode
	for i := range users {
		u := &users[i]
		if graph.IsManaged(u.ID) {
			continue
		}
		roots = append(roots, buildSubtree(u, graph, byID, map[uuid.UUID]struct{}{}))
	}
	sortNodes(roots)
	return roots
}

// buildSubtree expands one user into a node. The path set guards against
// malformed cyclic edges: a user already on the current root-to-node path is
// not expanded again.
func buildSubtree(u *models.User, graph *Graph, byID map[uuid.UUID]*models.User, path map[uuid.UUID]struct{}) TreeNode {
	node := TreeNode{
		ID:    u.ID,
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}
	path[u.ID] = struct{}{}
	defer delete(path, u.ID)

	for _, childID := range graph.children[u.ID] {
		child, known := byID[childID]
		if !known {
			continue
		}
		if _, onPath := path[childID]; onPath {
			continue
		}
		node.Children = append(node.Children, buildSubtree(child, graph, byID, path))
	}
	sortNodes(node.Children)
	return node
}

func sortNodes(nodes []TreeNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Role.Rank() != nodes[j].Role.Rank() {
			return nodes[i].Role.Rank() < nodes[j].Role.Rank()
		}
		return displayName(nodes[i]) < displayName(nodes[j])
	})
}

func displayName(n TreeNode) string {
	if n.Name != "" {
		return n.Name
	}
	return n.Email
}
