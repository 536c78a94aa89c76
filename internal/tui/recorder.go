package tui

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akyairhashvil/hourglass/internal/database"
	"github.com/akyairhashvil/hourglass/internal/models"
	"github.com/akyairhashvil/hourglass/internal/timer"
)

// SessionRecorder is the engine observer: it logs every transition and
// appends a history row when a countdown completes. The engine emits
// the completed snapshot exactly once per run, so no dedup is needed.
type SessionRecorder struct {
	store database.SessionStore
	log   zerolog.Logger
	now   func() time.Time
	newID func() string
}

func NewSessionRecorder(store database.SessionStore, log zerolog.Logger) *SessionRecorder {
	return &SessionRecorder{
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Notify implements the engine observer contract. It never calls back
// into the engine.
func (r *SessionRecorder) Notify(snap timer.Snapshot) {
	r.log.Debug().
		Int("remaining", snap.Remaining).
		Bool("running", snap.Running).
		Bool("completed", snap.Completed).
		Msg("timer transition")

	if !snap.Completed {
		return
	}
	session := models.Session{
		ID:           r.newID(),
		Hours:        snap.Hours,
		Minutes:      snap.Minutes,
		Seconds:      snap.Seconds,
		TotalSeconds: snap.Hours*3600 + snap.Minutes*60 + snap.Seconds,
		CompletedAt:  r.now(),
	}
	if err := r.store.RecordSession(session); err != nil {
		r.log.Error().Err(err).Msg("record session")
		return
	}
	r.log.Info().Str("duration", FormatClock(session.TotalSeconds)).Msg("session completed")
}
