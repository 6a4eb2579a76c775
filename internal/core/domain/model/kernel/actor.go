package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor, NewGuestActor or SystemActor")

// Actor is the caller of an operation as resolved by the authentication layer.
// Guests and the system actor carry no id.
type Actor struct {
	id            uint64
	hasID         bool
	role          Role
	isConstructed bool
}

// NewActor creates an identified actor. The id must be positive and the role valid.
func NewActor(id uint64, role Role) (Actor, error) {
	if id == 0 {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("actor id", fmt.Errorf("%d is not positive", id))
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, hasID: true, role: role, isConstructed: true}, nil
}

// NewGuestActor is an anonymous customer at checkout.
func NewGuestActor() Actor {
	return Actor{role: RoleCustomer, isConstructed: true}
}

// SystemActor is the internal actor for payment callbacks and scheduled jobs.
func SystemActor() Actor {
	return Actor{role: RoleSystem, isConstructed: true}
}

func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns a copy of the actor id, or nil for guests and the system actor.
func (a Actor) ID() *uint64 {
	if !a.hasID {
		return nil
	}
	id := a.id
	return &id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Is reports whether the actor is identified by id.
func (a Actor) Is(id *uint64) bool {
	return a.hasID && id != nil && *id == a.id
}

func (a Actor) String() string {
	if !a.hasID {
		return a.role.String()
	}
	return fmt.Sprintf("%s#%d", a.role, a.id)
}
