package database

import (
	"github.com/akyairhashvil/hourglass/internal/models"
)

// SessionStore defines session-history operations.
type SessionStore interface {
	RecordSession(s models.Session) error
	RecentSessions(limit int) ([]models.Session, error)
	SessionTotals() (count int, seconds int, err error)
}

// PresetStore defines preset operations.
type PresetStore interface {
	SavePreset(name string, hours, minutes, seconds int) error
	ListPresets() ([]models.Preset, error)
	DeletePreset(id int64) error
}

// SettingsStore defines settings KV operations.
type SettingsStore interface {
	SetSetting(key, value string) error
	GetSetting(key string) (string, error)
}

// Store combines all store interfaces.
type Store interface {
	SessionStore
	PresetStore
	SettingsStore
}

var _ Store = (*Database)(nil)
