package ports

import "go.trai.ch/resweep/internal/core/domain"

// SettingsStore persists the settings record.
//
//go:generate mockgen -source=settings_store.go -destination=mocks/mock_settings_store.go -package=mocks
type SettingsStore interface {
	// Load reads settings from path. A relative source root is resolved against the
	// directory containing path.
	Load(path string) (*domain.Settings, error)

	// Save writes settings to path, creating parent directories as needed.
	Save(path string, settings *domain.Settings) error

	// Exists reports whether a settings file is present at path.
	Exists(path string) bool
}
