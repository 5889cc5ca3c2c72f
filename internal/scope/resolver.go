package scope

import (
	"sort"
	"strings"

	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Tag is a key/value pair a user must carry to match the filter.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParseTag parses a "key:value" query parameter. Entries without a colon, or
// with an empty key or value after trimming, are dropped silently; the
// boundary is expected to filter malformed input rather than fail.
func ParseTag(raw string) (Tag, bool) {
	key, value, found := strings.Cut(raw, ":")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if !found || key == "" || value == "" {
		return Tag{}, false
	}
	return Tag{Key: key, Value: value}, true
}

// Filter describes the optional narrowing criteria for a scope resolution.
// A user must satisfy every non-empty field; an empty filter matches the
// whole organization.
type Filter struct {
	ManagerID    *uuid.UUID
	DepartmentID *uuid.UUID
	TeamID       *uuid.UUID
	Tags         []Tag
}

// IsEmpty reports whether no criteria were supplied.
func (f Filter) IsEmpty() bool {
	return f.ManagerID == nil && f.DepartmentID == nil && f.TeamID == nil && len(f.Tags) == 0
}

// Resolver produces the authoritative set of employee ids a requester may
// see. It is the single choke-point every scoped listing goes through before
// entity tables are queried.
type Resolver struct {
	dir Directory
}

// NewResolver creates a resolver over the given directory.
func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// EmployeeIDs computes the candidate set contributed by each non-empty
// filter independently and intersects them. No filters means no scope
// restriction: every user in the organization.
func (r *Resolver) EmployeeIDs(f Filter) ([]uuid.UUID, error) {
	if f.IsEmpty() {
		all, err := r.dir.AllUserIDs()
		if err != nil {
			return nil, err
		}
		return dedupeSorted(all), nil
	}

	var sets []map[uuid.UUID]struct{}

	if f.ManagerID != nil {
		edges, err := r.dir.ListAssignments()
		if err != nil {
			return nil, err
		}
		sets = append(sets, NewGraph(edges).Reports(*f.ManagerID))
	}
	if f.DepartmentID != nil {
		ids, err := r.dir.UserIDsByDepartment(*f.DepartmentID)
		if err != nil {
			return nil, err
		}
		sets = append(sets, toSet(ids))
	}
	if f.TeamID != nil {
		ids, err := r.dir.UserIDsByTeam(*f.TeamID)
		if err != nil {
			return nil, err
		}
		sets = append(sets, toSet(ids))
	}
	// Tag matching is conjunctive: one candidate set per pair.
	for _, tag := range f.Tags {
		ids, err := r.dir.UserIDsByTag(tag.Key, tag.Value)
		if err != nil {
			return nil, err
		}
		sets = append(sets, toSet(ids))
	}

	return setToSlice(intersect(sets)), nil
}

// ForRequester applies role-default scoping on top of the explicit filters:
// owners and super admins resolve the filters as given, managers are
// confined to their own subtree plus themselves, and everyone else sees only
// their own record.
func (r *Resolver) ForRequester(requesterID uuid.UUID, role models.UserRole, f Filter) ([]uuid.UUID, error) {
	ids, err := r.EmployeeIDs(f)
	if err != nil {
		return nil, err
	}

	switch role {
	case models.RoleSuperAdmin, models.RoleOwner:
		return ids, nil
	case models.RoleManager:
		edges, err := r.dir.ListAssignments()
		if err != nil {
			return nil, err
		}
		allowed := NewGraph(edges).Reports(requesterID)
		allowed[requesterID] = struct{}{}
		return setToSlice(intersect([]map[uuid.UUID]struct{}{toSet(ids), allowed})), nil
	default:
		for _, id := range ids {
			if id == requesterID {
				return []uuid.UUID{requesterID}, nil
			}
		}
		return []uuid.UUID{}, nil
	}
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	s := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func intersect(sets []map[uuid.UUID]struct{}) map[uuid.UUID]struct{} {
	if len(sets) == 0 {
		return map[uuid.UUID]struct{}{}
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if len(s) < len(smallest) {
			smallest = s
		}
	}
	out := make(map[uuid.UUID]struct{}, len(smallest))
	for id := range smallest {
		in := true
		for _, s := range sets {
			if _, ok := s[id]; !ok {
				in = false
				break
			}
		}
		if in {
			out[id] = struct{}{}
		}
	}
	return out
}

// setToSlice returns the set in a stable order. Ordering carries no meaning
// for callers; sorting just keeps responses and tests deterministic.
func setToSlice(s map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func dedupeSorted(ids []uuid.UUID) []uuid.UUID {
	return setToSlice(toSet(ids))
}
