package repository

import (
	"context"

	"tour-platform/internal/model"
)

// SettingsRepository defines the interface for the singleton settings document
type SettingsRepository interface {
	// Get returns the current settings, creating defaults on first read
	Get(ctx context.Context) (*model.Settings, error)

	// Save writes the settings document
	Save(ctx context.Context, settings *model.Settings) error
}
