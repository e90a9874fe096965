// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RoleDefinition describes one job role of the catalog.
type RoleDefinition struct {
	Name           string             `json:"name"`
	RequiredSkills []string           `json:"required_skills"`
	Weights        map[string]float64 `json:"weights,omitempty"`
	Description    string             `json:"description,omitempty"`
}

// RoleCatalog is the ordered set of role definitions. Names are unique and
// case-sensitive; iteration order is the order of the source document and is
// used as the ranking tiebreak.
type RoleCatalog struct {
	roles []RoleDefinition
	index map[string]int
}

// NewRoleCatalog builds a catalog from roles in order. A later role with a name
// already present replaces the earlier definition but keeps its position.
func NewRoleCatalog(roles []RoleDefinition) *RoleCatalog {
	c := &RoleCatalog{
		roles: make([]RoleDefinition, 0, len(roles)),
		index: make(map[string]int, len(roles)),
	}
	for _, r := range roles {
		if idx, exists := c.index[r.Name]; exists {
			c.roles[idx] = r
			continue
		}
		c.index[r.Name] = len(c.roles)
		c.roles = append(c.roles, r)
	}
	return c
}

// Roles returns the roles in catalog order. The returned slice must not be modified.
func (c *RoleCatalog) Roles() []RoleDefinition {
	if c == nil {
		return nil
	}
	return c.roles
}

// Get looks up a role by its exact name.
func (c *RoleCatalog) Get(name string) (RoleDefinition, bool) {
	if c == nil {
		return RoleDefinition{}, false
	}
	idx, ok := c.index[name]
	if !ok {
		return RoleDefinition{}, false
	}
	return c.roles[idx], true
}

// Names returns role names in catalog order.
func (c *RoleCatalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.roles))
	for i, r := range c.roles {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of roles.
func (c *RoleCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.roles)
}
