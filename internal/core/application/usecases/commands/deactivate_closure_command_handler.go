package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/settings"
)

type DeactivateClosureCommandHandler struct {
	runner settingsRunner
}

func NewDeactivateClosureCommandHandler(deps SettingsDeps) DeactivateClosureCommandHandler {
	return DeactivateClosureCommandHandler{runner: newSettingsRunner(deps, "deactivate emergency closure", adminRoles)}
}

func (h DeactivateClosureCommandHandler) Handle(ctx context.Context, cmd DeactivateClosureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := h.runner.run(ctx, cmd.Actor(), func(s *settings.SystemSettings, now time.Time) (bool, error) {
		s.DeactivateClosure(cmd.Actor(), now)
		return true, nil
	})
	return err
}
