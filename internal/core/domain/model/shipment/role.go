package shipment

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Role identifies who is requesting a lifecycle transition. The role gate is
// checked before table validation, so a disallowed role is reported as
// ErrTransitionForbidden rather than an invalid transition.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBrand is the shipment owner. Brands may only confirm or cancel.
	RoleBrand

	// RoleOperator is a privileged operations user with full transition rights.
	RoleOperator

	// RoleSystem is the platform itself (selection engine, NDR workflow, jobs).
	RoleSystem
)

// brandAllowedTargets is the restricted transition set a brand may request.
var brandAllowedTargets = map[Status]bool{
	Confirmed: true,
	Cancelled: true,
}

// ErrTransitionForbidden is returned when an actor role is not permitted to
// request the target status, regardless of the transition table.
var ErrTransitionForbidden = errors.New("actor role is not permitted to request this transition")

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleBrand:    "BRAND",
		RoleOperator: "OPERATOR",
		RoleSystem:   "SYSTEM",
	}
}

// Validate checks that the Role is one of the defined actor roles.
func (r Role) Validate() error {
	if r != RoleBrand && r != RoleOperator && r != RoleSystem {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical role name. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// RoleFromString parses a canonical role name, case-insensitively.
func RoleFromString(value string) (Role, error) {
	needle := strings.ToUpper(strings.TrimSpace(value))
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == needle {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", value))
}

// CanRequest reports whether the role may request a transition to target.
// Operators and the system may request anything in the table; brands are
// limited to confirmation and cancellation.
func (r Role) CanRequest(target Status) bool {
	switch r {
	case RoleOperator, RoleSystem:
		return true
	case RoleBrand:
		return brandAllowedTargets[target]
	default:
		return false
	}
}
