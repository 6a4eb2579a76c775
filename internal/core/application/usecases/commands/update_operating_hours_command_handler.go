package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/settings"
)

type UpdateOperatingHoursCommandHandler struct {
	runner settingsRunner
}

func NewUpdateOperatingHoursCommandHandler(deps SettingsDeps) UpdateOperatingHoursCommandHandler {
	return UpdateOperatingHoursCommandHandler{runner: newSettingsRunner(deps, "update operating hours", adminRoles)}
}

func (h UpdateOperatingHoursCommandHandler) Handle(ctx context.Context, cmd UpdateOperatingHoursCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := h.runner.run(ctx, cmd.Actor(), func(s *settings.SystemSettings, now time.Time) (bool, error) {
		return true, s.UpdateOperatingHours(cmd.Actor(), cmd.Hours(), now)
	})
	return err
}
