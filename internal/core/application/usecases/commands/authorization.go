package commands

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Allow-lists per operation. They are checked before anything is loaded.
var (
	createOrderRoles     = kernel.NewRoleSet(kernel.RoleCustomer, kernel.RoleAdmin, kernel.RoleSystem)
	createDemoOrderRoles = kernel.NewRoleSet(kernel.RoleAdmin, kernel.RoleSystem)
	confirmRoles         = kernel.NewRoleSet(kernel.RoleSystem)
	kitchenRoles         = kernel.NewRoleSet(kernel.RoleKitchen, kernel.RoleAdmin)
	courierRoles         = kernel.NewRoleSet(kernel.RoleCourier, kernel.RoleAdmin)
	adminRoles           = kernel.NewRoleSet(kernel.RoleAdmin)
	systemRoles          = kernel.NewRoleSet(kernel.RoleSystem)
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
