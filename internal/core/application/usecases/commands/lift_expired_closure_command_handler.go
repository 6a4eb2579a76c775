package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
)

// LiftExpiredClosureCommandHandler is run by the closure expiry job. It clears
// a closure whose until has passed and reports whether it did.
type LiftExpiredClosureCommandHandler struct {
	runner settingsRunner
}

func NewLiftExpiredClosureCommandHandler(deps SettingsDeps) LiftExpiredClosureCommandHandler {
	return LiftExpiredClosureCommandHandler{runner: newSettingsRunner(deps, "lift expired closure", systemRoles)}
}

func (h LiftExpiredClosureCommandHandler) Handle(ctx context.Context, actor kernel.Actor) (bool, error) {
	return h.runner.run(ctx, actor, func(s *settings.SystemSettings, now time.Time) (bool, error) {
		return s.LiftExpiredClosure(now), nil
	})
}
