package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/hourglass/internal/database"
	"github.com/akyairhashvil/hourglass/internal/testutil"
)

func TestGeneratePDFReport(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "report.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for i, triple := range [][3]int{{0, 25, 0}, {0, 5, 0}} {
		s := testutil.NewSession().
			WithID(string(rune('a'+i))).
			WithTriple(triple[0], triple[1], triple[2]).
			Build()
		if err := db.RecordSession(s); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}

	dir := filepath.Join(t.TempDir(), "reports")
	path, err := GeneratePDFReport(db, dir)
	if err != nil {
		t.Fatalf("GeneratePDFReport failed: %v", err)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("unexpected report path: %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("report file is empty")
	}
}

func TestGeneratePDFReportEmptyHistory(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "report.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	path, err := GeneratePDFReport(db, t.TempDir())
	if err != nil {
		t.Fatalf("GeneratePDFReport on empty history failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report file missing: %v", err)
	}
}
