package repository

import "github.com/skumaran/petti-kadai-api/internal/domain/entity"

// SettingsRepository defines the persistence port for per-user settings.
// Get returns nil when the user never saved settings; callers apply defaults.
type SettingsRepository interface {
	Get(userID string) (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}
