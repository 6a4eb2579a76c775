// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for dashboards and the HTTP surface; they
// never mutate orders or settings.
package queries

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	dashboardRoles = kernel.NewRoleSet(kernel.RoleKitchen, kernel.RoleCourier, kernel.RoleAdmin, kernel.RoleSystem)
	orderViewRoles = kernel.NewRoleSet(kernel.RoleCustomer, kernel.RoleKitchen, kernel.RoleCourier, kernel.RoleAdmin, kernel.RoleSystem)
	settingsRoles  = kernel.NewRoleSet(kernel.RoleAdmin, kernel.RoleSystem)
)

func authorize(action string, allowed kernel.RoleSet, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(action, "actor is unresolved", err)
	}
	if !allowed.Contains(actor.Role()) {
		return errs.NewUnauthorizedError(action, fmt.Sprintf("role %s is not one of %s", actor.Role(), allowed))
	}
	return nil
}
