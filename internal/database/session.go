package database

import (
	"github.com/akyairhashvil/hourglass/internal/models"
)

// RecordSession appends one completed run to the history.
func (d *Database) RecordSession(s models.Session) error {
	_, err := d.DB.Exec(
		`INSERT INTO sessions (id, hours, minutes, seconds, total_seconds, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Hours, s.Minutes, s.Seconds, s.TotalSeconds, s.CompletedAt,
	)
	return wrapSessionErr("record", err)
}

// RecentSessions returns up to limit sessions, newest first.
func (d *Database) RecentSessions(limit int) ([]models.Session, error) {
	rows, err := d.DB.Query(
		`SELECT id, hours, minutes, seconds, total_seconds, completed_at
		 FROM sessions ORDER BY completed_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, wrapSessionErr("list", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Hours, &s.Minutes, &s.Seconds, &s.TotalSeconds, &s.CompletedAt); err != nil {
			return nil, wrapSessionErr("scan", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", err)
	}
	return sessions, nil
}

// SessionTotals returns the run count and summed countdown seconds
// across the whole history.
func (d *Database) SessionTotals() (count int, seconds int, err error) {
	err = d.DB.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(total_seconds), 0) FROM sessions`,
	).Scan(&count, &seconds)
	if err != nil {
		return 0, 0, wrapSessionErr("totals", err)
	}
	return count, seconds, nil
}
