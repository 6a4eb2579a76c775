package kernel

import (
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Role is the closed set of actor roles recognized by the state machine.
type Role int

const (
	// RoleUnknown is the zero value and never passes an allow-list.
	RoleUnknown Role = iota
	RoleCustomer
	RoleKitchen
	RoleCourier
	RoleAdmin
	// RoleSystem is the internal actor used for payment capture callbacks and jobs.
	RoleSystem
)

var roleNames = map[Role]string{
	RoleUnknown:  "UNKNOWN",
	RoleCustomer: "CUSTOMER",
	RoleKitchen:  "KITCHEN",
	RoleCourier:  "COURIER",
	RoleAdmin:    "ADMIN",
	RoleSystem:   "SYSTEM",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return roleNames[RoleUnknown]
}

// Validate rejects RoleUnknown and values outside the enumeration.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleSystem {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole maps a case-insensitive role name to a Role.
func ParseRole(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for role, n := range roleNames {
		if n == name && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// RoleSet is an explicit allow-list of roles.
type RoleSet struct {
	roles []Role
}

func NewRoleSet(roles ...Role) RoleSet {
	set := RoleSet{}
	for _, r := range roles {
		if r.Validate() == nil && !slices.Contains(set.roles, r) {
			set.roles = append(set.roles, r)
		}
	}
	return set
}

func (s RoleSet) Contains(r Role) bool {
	return slices.Contains(s.roles, r)
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s.roles))
	for _, r := range s.roles {
		names = append(names, r.String())
	}
	return strings.Join(names, "|")
}
