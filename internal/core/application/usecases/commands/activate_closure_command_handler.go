package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/settings"
)

type ActivateClosureCommandHandler struct {
	runner settingsRunner
}

func NewActivateClosureCommandHandler(deps SettingsDeps) ActivateClosureCommandHandler {
	return ActivateClosureCommandHandler{runner: newSettingsRunner(deps, "activate emergency closure", adminRoles)}
}

func (h ActivateClosureCommandHandler) Handle(ctx context.Context, cmd ActivateClosureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := h.runner.run(ctx, cmd.Actor(), func(s *settings.SystemSettings, now time.Time) (bool, error) {
		return true, s.ActivateClosure(cmd.Actor(), cmd.Reason(), cmd.Message(), cmd.Until(), now)
	})
	return err
}
