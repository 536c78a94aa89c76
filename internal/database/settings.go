package database

import "database/sql"

// SetSetting stores a key/value pair, replacing any existing value.
func (d *Database) SetSetting(key, value string) error {
	_, err := d.DB.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return &OpError{Op: "set", Resource: "setting", Err: err}
	}
	return nil
}

// GetSetting returns the value for key, or ErrNotFound.
func (d *Database) GetSetting(key string) (string, error) {
	var value string
	err := d.DB.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", &OpError{Op: "get", Resource: "setting", Err: ErrNotFound}
	}
	if err != nil {
		return "", &OpError{Op: "get", Resource: "setting", Err: err}
	}
	return value, nil
}
