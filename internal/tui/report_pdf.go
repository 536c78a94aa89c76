package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/hourglass/internal/config"
	"github.com/akyairhashvil/hourglass/internal/database"
)

// GeneratePDFReport writes a session-history report into dir and
// returns the path of the file it created.
func GeneratePDFReport(store database.SessionStore, dir string) (string, error) {
	sessions, err := store.RecentSessions(config.HistoryLimit * 5)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	count, seconds, err := store.SessionTotals()
	if err != nil {
		return "", fmt.Errorf("load totals: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Hourglass Session Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Recent sessions")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "  No completed sessions yet.")
		pdf.Ln(8)
	}
	for _, s := range sessions {
		line := fmt.Sprintf("  %s    %s (%s)",
			FormatCompletedAt(s.CompletedAt),
			FormatTriple(s.Hours, s.Minutes, s.Seconds),
			FormatClock(s.TotalSeconds))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %d sessions, %s of countdown time", count, FormatClock(seconds)))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("sessions-%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
