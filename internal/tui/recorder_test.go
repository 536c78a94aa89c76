package tui

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/akyairhashvil/hourglass/internal/database"
	"github.com/akyairhashvil/hourglass/internal/models"
	"github.com/akyairhashvil/hourglass/internal/timer"
)

type failingStore struct {
	*database.Database
	err error
}

func (s *failingStore) RecordSession(models.Session) error { return s.err }

func TestRecorderWritesCompletedRun(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "rec.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	r := NewSessionRecorder(db, zerolog.New(io.Discard))
	r.now = func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) }
	r.newID = func() string { return "fixed-id" }

	spec, err := timer.Validate(0, 0, 2)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	engine := timer.NewEngine(spec)
	engine.SetObserver(r.Notify)

	if err := engine.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	engine.Tick()
	engine.Tick()

	sessions, err := db.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected exactly one recorded run, got %d", len(sessions))
	}
	s := sessions[0]
	if s.ID != "fixed-id" || s.TotalSeconds != 2 || s.Seconds != 2 {
		t.Fatalf("unexpected session: %+v", s)
	}
	if !s.CompletedAt.Equal(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("completed_at = %v", s.CompletedAt)
	}
}

func TestRecorderIgnoresNonTerminalTransitions(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "rec.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	r := NewSessionRecorder(db, zerolog.New(io.Discard))
	spec, err := timer.Validate(0, 0, 30)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	engine := timer.NewEngine(spec)
	engine.SetObserver(r.Notify)

	if err := engine.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	engine.Tick()
	engine.Pause()
	engine.Reset()

	count, _, err := db.SessionTotals()
	if err != nil {
		t.Fatalf("SessionTotals failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("abandoned run was recorded (%d rows)", count)
	}
}

func TestRecorderSurvivesStoreFailure(t *testing.T) {
	store := &failingStore{err: errors.New("disk full")}
	r := NewSessionRecorder(store, zerolog.New(io.Discard))

	spec, err := timer.Validate(0, 0, 1)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	engine := timer.NewEngine(spec)
	engine.SetObserver(r.Notify)

	if err := engine.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	engine.Tick() // must not panic despite the failing store

	if !engine.Snapshot().Completed {
		t.Fatalf("engine state corrupted by store failure")
	}
}
