// Package database stores completed session history, named presets,
// and a small settings table in a local sqlite file.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite handle. Obtain one through Open.
type Database struct {
	DB *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and
// bootstraps the schema.
func Open(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the underlying handle.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			hours INTEGER NOT NULL,
			minutes INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			total_seconds INTEGER NOT NULL,
			completed_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			hours INTEGER NOT NULL,
			minutes INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.Exec(query); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}
