package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Role identifies which kind of party an authenticated caller is.
// Roles are resolved by the external identity gate; the engine never
// re-derives them.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the party who placed the order.
	RoleCustomer

	// RoleFulfiller is the tailor fulfilling the order.
	RoleFulfiller

	// RoleAdmin is a marketplace administrator.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer:  "customer",
		RoleFulfiller: "fulfiller",
		RoleAdmin:     "admin",
	}
}

// RoleFromString parses a role name as supplied by the identity gate.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the role name, or "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getValidRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the authenticated caller of an engine operation: an identity plus
// the role the identity gate resolved for it. Actor is a trust boundary input;
// the aggregate still verifies that the identity actually matches the order
// party the role claims.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from a validated identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's resolved role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor is a marketplace administrator.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate checks that the actor carries a constructed identity and role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
