package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/settings"
)

type UpdateLimitsCommandHandler struct {
	runner settingsRunner
}

func NewUpdateLimitsCommandHandler(deps SettingsDeps) UpdateLimitsCommandHandler {
	return UpdateLimitsCommandHandler{runner: newSettingsRunner(deps, "update limits", adminRoles)}
}

func (h UpdateLimitsCommandHandler) Handle(ctx context.Context, cmd UpdateLimitsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := h.runner.run(ctx, cmd.Actor(), func(s *settings.SystemSettings, now time.Time) (bool, error) {
		return true, s.UpdateLimits(cmd.Actor(), cmd.Limits(), now)
	})
	return err
}
