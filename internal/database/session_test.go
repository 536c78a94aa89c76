package database

import (
	"testing"
	"time"

	"github.com/akyairhashvil/hourglass/internal/testutil"
)

func TestRecordAndListSessions(t *testing.T) {
	db := setupDB(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	first := testutil.NewSession().WithID("a").WithTriple(0, 5, 0).CompletedAt(base).Build()
	second := testutil.NewSession().WithID("b").WithTriple(1, 2, 5).CompletedAt(base.Add(time.Hour)).Build()

	if err := db.RecordSession(first); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	if err := db.RecordSession(second); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	sessions, err := db.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != "b" {
		t.Fatalf("expected newest first, got %q", sessions[0].ID)
	}
	if sessions[0].TotalSeconds != 3725 {
		t.Fatalf("total seconds = %d, want 3725", sessions[0].TotalSeconds)
	}
	if !sessions[0].CompletedAt.Equal(base.Add(time.Hour)) {
		t.Fatalf("completed_at = %v", sessions[0].CompletedAt)
	}
}

func TestRecentSessionsHonorsLimit(t *testing.T) {
	db := setupDB(t)
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s := testutil.NewSession().
			WithID(string(rune('a' + i))).
			CompletedAt(base.Add(time.Duration(i) * time.Minute)).
			Build()
		if err := db.RecordSession(s); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}
	sessions, err := db.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
}

func TestRecordSessionDuplicateIDFails(t *testing.T) {
	db := setupDB(t)
	s := testutil.NewSession().WithID("dup").Build()
	if err := db.RecordSession(s); err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	if err := db.RecordSession(s); err == nil {
		t.Fatalf("duplicate id should fail")
	}
}

func TestSessionTotals(t *testing.T) {
	db := setupDB(t)

	count, seconds, err := db.SessionTotals()
	if err != nil {
		t.Fatalf("SessionTotals failed: %v", err)
	}
	if count != 0 || seconds != 0 {
		t.Fatalf("empty history totals = %d, %d", count, seconds)
	}

	if err := db.RecordSession(testutil.NewSession().WithID("a").WithTriple(0, 1, 0).Build()); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	if err := db.RecordSession(testutil.NewSession().WithID("b").WithTriple(0, 0, 30).Build()); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	count, seconds, err = db.SessionTotals()
	if err != nil {
		t.Fatalf("SessionTotals failed: %v", err)
	}
	if count != 2 || seconds != 90 {
		t.Fatalf("totals = %d runs, %d seconds; want 2, 90", count, seconds)
	}
}
