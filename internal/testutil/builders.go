// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"time"

	"github.com/akyairhashvil/hourglass/internal/models"
)

// SessionBuilder provides a fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			ID:           "test-session",
			Minutes:      5,
			TotalSeconds: 300,
			CompletedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}
}

func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithTriple sets the configured duration and keeps TotalSeconds in sync.
func (b *SessionBuilder) WithTriple(hours, minutes, seconds int) *SessionBuilder {
	b.session.Hours = hours
	b.session.Minutes = minutes
	b.session.Seconds = seconds
	b.session.TotalSeconds = hours*3600 + minutes*60 + seconds
	return b
}

func (b *SessionBuilder) CompletedAt(t time.Time) *SessionBuilder {
	b.session.CompletedAt = t
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}

// PresetBuilder provides a fluent API for creating test presets.
type PresetBuilder struct {
	preset models.Preset
}

func NewPreset() *PresetBuilder {
	return &PresetBuilder{
		preset: models.Preset{
			Name:    "Test Preset",
			Minutes: 5,
		},
	}
}

func (b *PresetBuilder) WithName(name string) *PresetBuilder {
	b.preset.Name = name
	return b
}

func (b *PresetBuilder) WithTriple(hours, minutes, seconds int) *PresetBuilder {
	b.preset.Hours = hours
	b.preset.Minutes = minutes
	b.preset.Seconds = seconds
	return b
}

func (b *PresetBuilder) Build() models.Preset {
	return b.preset
}
