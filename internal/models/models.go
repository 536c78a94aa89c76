package models

import "time"

// Session records one completed countdown run. Only finished runs are
// stored; in-flight timers never touch the database.
type Session struct {
	ID           string // uuid
	Hours        int
	Minutes      int
	Seconds      int
	TotalSeconds int
	CompletedAt  time.Time
}

// Preset is a named, reusable timer configuration.
type Preset struct {
	ID        int64
	Name      string
	Hours     int
	Minutes   int
	Seconds   int
	CreatedAt time.Time
}
