package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/ports"
)

// SettingsDeps are the collaborators of the settings handlers. Provider is
// invalidated after every committed write so admission sees it promptly.
type SettingsDeps struct {
	UoWFactory SettingsUoWFactory
	Provider   ports.SettingsProvider
	Clock      ports.Clock
	Logger     *slog.Logger
}

type settingsRunner struct {
	deps    SettingsDeps
	action  string
	allowed kernel.RoleSet
	logger  *slog.Logger
}

func newSettingsRunner(deps SettingsDeps, action string, allowed kernel.RoleSet) settingsRunner {
	return settingsRunner{
		deps:    deps,
		action:  action,
		allowed: allowed,
		logger:  deps.Logger.With("component", "commands", "action", action),
	}
}

// settingsMutation returns false when there is nothing to write.
type settingsMutation func(s *settings.SystemSettings, now time.Time) (bool, error)

func (r settingsRunner) run(ctx context.Context, actor kernel.Actor, mutate settingsMutation) (bool, error) {
	if err := authorize(r.action, r.allowed, actor); err != nil {
		return false, err
	}

	changed, err := r.apply(ctx, mutate)
	if err != nil {
		return false, classify(r.action, err)
	}
	if changed {
		r.deps.Provider.Invalidate()
		r.logger.InfoContext(ctx, "system settings updated", "actor", actor.String())
	}
	return changed, nil
}

func (r settingsRunner) apply(ctx context.Context, mutate settingsMutation) (bool, error) {
	uow := r.deps.UoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := r.deps.Clock.Now()
	repo := uow.SettingsRepository()
	s, err := repo.GetOrCreateForUpdate(ctx, now)
	if err != nil {
		return false, err
	}

	changed, err := mutate(s, now)
	if err != nil || !changed {
		return false, err
	}

	if err = repo.Save(ctx, s); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
