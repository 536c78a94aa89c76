package database

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupDB(t *testing.T) *Database {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpenBootstrapsSchema(t *testing.T) {
	db := setupDB(t)
	for _, table := range []string{"sessions", "presets", "settings"} {
		var name string
		err := db.DB.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestOpenIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	inner := errors.New("boom")
	e := &OpError{Op: "record", Resource: "session", Err: inner}
	if e.Error() != "record session: boom" {
		t.Fatalf("unexpected message: %q", e.Error())
	}
	if !errors.Is(e, inner) {
		t.Fatalf("OpError should unwrap to the inner error")
	}
}
