package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetSettingsQueryIsNotConstructed = errors.New(
		"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
	)
)

// GetSettingsQuery reads the current system settings for administration.
type GetSettingsQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetSettingsQuery(actor kernel.Actor) GetSettingsQuery {
	return GetSettingsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

func (q GetSettingsQuery) Actor() kernel.Actor { return q.actor }

type ClosureView struct {
	Active      bool
	InForce     bool
	Reason      string
	Message     string
	Until       *time.Time
	ActivatedBy *uint64
	ActivatedAt *time.Time
}

type GetSettingsQueryResponse struct {
	OpenTime         string
	LastOrderTime    string
	Closure          ClosureView
	MaxCartItems     int
	MaxOrdersPerHour int
	MaxActiveOrders  int
	UpdatedAt        time.Time
	UpdatedBy        *uint64
}
