package queries

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetSettingsQueryHandler serves settings from the provider, so a read may
// lag an administrator write by at most the provider's cache lifetime unless
// the write invalidated it.
type GetSettingsQueryHandler struct {
	provider ports.SettingsProvider
	clock    ports.Clock
}

func NewGetSettingsQueryHandler(provider ports.SettingsProvider, clock ports.Clock) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{provider: provider, clock: clock}
}

func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (GetSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingsQueryResponse{}, err
	}
	if err := authorize("read settings", settingsRoles, query.Actor()); err != nil {
		return GetSettingsQueryResponse{}, err
	}

	s, err := h.provider.Current(ctx)
	if err != nil {
		if errs.IsTyped(err) {
			return GetSettingsQueryResponse{}, err
		}
		return GetSettingsQueryResponse{}, errs.NewUnexpectedErrorWithCause("read settings", err)
	}

	closure := s.Closure()
	limits := s.Limits()
	return GetSettingsQueryResponse{
		OpenTime:      s.OperatingHours().Open().String(),
		LastOrderTime: s.OperatingHours().LastOrder().String(),
		Closure: ClosureView{
			Active:      closure.Active,
			InForce:     closure.IsActiveAt(h.clock.Now()),
			Reason:      closure.Reason,
			Message:     closure.Message,
			Until:       closure.Until,
			ActivatedBy: closure.ActivatedBy,
			ActivatedAt: closure.ActivatedAt,
		},
		MaxCartItems:     limits.MaxCartItems,
		MaxOrdersPerHour: limits.MaxOrdersPerHour,
		MaxActiveOrders:  limits.MaxActiveOrders,
		UpdatedAt:        s.UpdatedAt(),
		UpdatedBy:        s.UpdatedBy(),
	}, nil
}
