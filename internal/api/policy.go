package api

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/bandsite/cms-api/internal/core/domain"
)

// Policy names, one per group of protected routes.
const (
	PolicyContentWrite      = "content.write"
	PolicyUploads           = "uploads"
	PolicyUsersManage       = "users.manage"
	PolicyInboxRead         = "inbox.read"
	PolicyGuestbookModerate = "guestbook.moderate"
	PolicyGuestbookWrite    = "guestbook.write"
	PolicyAccount           = "account"
)

// Policy maps a policy name to the roles allowed through it.
type Policy map[string][]domain.Role

// DefaultPolicy keeps content management with admins. Members get nothing
// beyond a regular account unless an override grants it.
func DefaultPolicy() Policy {
	everyone := []domain.Role{domain.RoleAdmin, domain.RoleMember, domain.RoleUser}
	return Policy{
		PolicyContentWrite:      {domain.RoleAdmin},
		PolicyUploads:           {domain.RoleAdmin},
		PolicyUsersManage:       {domain.RoleAdmin},
		PolicyInboxRead:         {domain.RoleAdmin},
		PolicyGuestbookModerate: {domain.RoleAdmin},
		PolicyGuestbookWrite:    everyone,
		PolicyAccount:           everyone,
	}
}

// ParsePolicy applies overrides of the form name -> "role|role" to the
// default policy. Unknown names and roles are errors.
func ParsePolicy(overrides map[string]string) (Policy, error) {
	p := DefaultPolicy()

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, key := range names {
		name := strings.TrimSpace(key)
		if _, ok := p[name]; !ok {
			return nil, fmt.Errorf("role policy: unknown policy %q", name)
		}

		var roles []domain.Role
		for _, raw := range strings.Split(overrides[key], "|") {
			role := domain.Role(strings.TrimSpace(raw))
			if role == "" {
				continue
			}
			if !role.Valid() {
				return nil, fmt.Errorf("role policy %s: unknown role %q", name, role)
			}
			if !slices.Contains(roles, role) {
				roles = append(roles, role)
			}
		}
		if len(roles) == 0 {
			return nil, fmt.Errorf("role policy %s: no roles given", name)
		}
		p[name] = roles
	}
	return p, nil
}

// Roles returns the roles of name. It panics on unknown names, which only
// happens when a route is registered against a policy that does not exist.
func (p Policy) Roles(name string) []domain.Role {
	roles, ok := p[name]
	if !ok {
		panic(fmt.Sprintf("role policy %q is not defined", name))
	}
	return roles
}
