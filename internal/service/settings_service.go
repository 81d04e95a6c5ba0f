package service

import (
	"context"
	"time"

	"tour-platform/internal/model"
	"tour-platform/internal/repository"
	"tour-platform/pkg/cache"
)

const settingsCacheKey = "settings:site"

// SettingsService reads and writes the site-wide settings document through a
// short-TTL cache, so the booking path doesn't hit the database on every
// request while admin changes still land within the TTL.
type SettingsService struct {
	repo  repository.SettingsRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository, c cache.Cache, ttl time.Duration) *SettingsService {
	return &SettingsService{repo: repo, cache: c, ttl: ttl}
}

// Get returns the current settings, served from cache when fresh.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	var cached model.Settings
	if err := cache.GetJSON(ctx, s.cache, settingsCacheKey, &cached); err == nil {
		return &cached, nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, s.cache, settingsCacheKey, settings, s.ttl)

	return settings, nil
}

// Update applies the provided fields and writes through, invalidating the
// cache so the change is visible immediately.
func (s *SettingsService) Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.BookingEnabled != nil {
		settings.BookingEnabled = *req.BookingEnabled
	}
	if req.PaymentsEnabled != nil {
		settings.PaymentsEnabled = *req.PaymentsEnabled
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}
	if req.MaintenanceMessage != nil {
		settings.MaintenanceMessage = *req.MaintenanceMessage
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, settingsCacheKey)

	return settings, nil
}

// KillSwitch disables or re-enables booking and payments in one write.
func (s *SettingsService) KillSwitch(ctx context.Context, enabled bool) (*model.Settings, error) {
	on := enabled
	return s.Update(ctx, &model.UpdateSettingsRequest{
		BookingEnabled:  &on,
		PaymentsEnabled: &on,
	})
}

// BookingEnabled reports whether the booking flow is currently open.
func (s *SettingsService) BookingEnabled(ctx context.Context) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.BookingEnabled, nil
}
