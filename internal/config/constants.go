package config

// Application settings.
const (
	AppName        = "hourglass"
	DBFileName     = "sessions.db"
	LogFileName    = "hourglass.log"
	ConfigFileName = "config.yaml"
)

// Default timer configuration, used when no config file overrides it.
const (
	DefaultHours   = 0
	DefaultMinutes = 5
	DefaultSeconds = 0
)

// UI settings.
const (
	FieldCharLimit  = 2 // hours/minutes/seconds are at most two digits
	FieldWidth      = 4
	HistoryLimit    = 10 // sessions shown in the history pane
	MaxPresets      = 9  // presets bound to keys 1-9
	PresetNameLimit = 24
	MinBarWidth     = 10
	TargetBarWidth  = 30
	CompactWidth    = 60 // below this the bar shrinks with the window
)
