package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/settings"
)

// SettingsRepository persists the SystemSettings singleton.
type SettingsRepository interface {
	// GetOrCreate returns the settings row, inserting defaults stamped with now
	// when it does not exist yet.
	GetOrCreate(ctx context.Context, now time.Time) (*settings.SystemSettings, error)

	// GetOrCreateForUpdate is GetOrCreate taking a row lock where supported.
	GetOrCreateForUpdate(ctx context.Context, now time.Time) (*settings.SystemSettings, error)

	// Save writes the singleton.
	Save(ctx context.Context, s *settings.SystemSettings) error
}

// SettingsProvider hands out a recent settings snapshot for admission checks.
type SettingsProvider interface {
	Current(ctx context.Context) (*settings.SystemSettings, error)

	// Invalidate drops any cached snapshot after an administrator write.
	Invalidate()
}
