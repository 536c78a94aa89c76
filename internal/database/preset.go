package database

import (
	"github.com/akyairhashvil/hourglass/internal/models"
)

// SavePreset stores a named configuration, replacing any preset with
// the same name.
func (d *Database) SavePreset(name string, hours, minutes, seconds int) error {
	_, err := d.DB.Exec(
		`INSERT INTO presets (name, hours, minutes, seconds) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET hours = excluded.hours,
		   minutes = excluded.minutes, seconds = excluded.seconds`,
		name, hours, minutes, seconds,
	)
	return wrapPresetErr("save", err)
}

// ListPresets returns all presets ordered by creation.
func (d *Database) ListPresets() ([]models.Preset, error) {
	rows, err := d.DB.Query(
		`SELECT id, name, hours, minutes, seconds, created_at FROM presets ORDER BY id`)
	if err != nil {
		return nil, wrapPresetErr("list", err)
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		var p models.Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.Hours, &p.Minutes, &p.Seconds, &p.CreatedAt); err != nil {
			return nil, wrapPresetErr("scan", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPresetErr("list", err)
	}
	return presets, nil
}

// DeletePreset removes a preset by id. Deleting an unknown id reports
// ErrNotFound.
func (d *Database) DeletePreset(id int64) error {
	res, err := d.DB.Exec(`DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return wrapPresetErr("delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapPresetErr("delete", err)
	}
	if affected == 0 {
		return wrapPresetErr("delete", ErrNotFound)
	}
	return nil
}
