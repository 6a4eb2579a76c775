// Package settingscache serves the SystemSettings singleton to admission
// checks from a short-lived in-process copy.
package settingscache

import (
	"context"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/ports"
)

// DefaultTTL is used when the configured lifetime is not positive.
const DefaultTTL = 5 * time.Second

// RepositoryFactory hands out a settings repository outside any transaction.
type RepositoryFactory interface {
	SettingsRepository() ports.SettingsRepository
}

// Provider caches the settings row for ttl. Concurrent misses load once.
type Provider struct {
	repos RepositoryFactory
	clock ports.Clock
	ttl   time.Duration

	mu       sync.Mutex
	cached   *settings.SystemSettings
	loadedAt time.Time
}

func NewProvider(repos RepositoryFactory, clock ports.Clock, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Provider{repos: repos, clock: clock, ttl: ttl}
}

// Current returns the cached settings, reloading them once ttl has passed. A
// missing row is created with defaults. A failed reload keeps nothing cached.
func (p *Provider) Current(ctx context.Context) (*settings.SystemSettings, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	if p.cached != nil && now.Sub(p.loadedAt) < p.ttl {
		return p.cached, nil
	}

	s, err := p.repos.SettingsRepository().GetOrCreate(ctx, now)
	if err != nil {
		p.cached = nil
		return nil, err
	}

	p.cached = s
	p.loadedAt = now
	return s, nil
}

// Invalidate drops the cached copy so the next Current reads the store.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = nil
}
