// Package tui is the terminal driver for the countdown engine: it
// forwards key events and a 1 Hz clock into the engine and renders its
// snapshots.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/akyairhashvil/hourglass/internal/config"
	"github.com/akyairhashvil/hourglass/internal/database"
	"github.com/akyairhashvil/hourglass/internal/models"
	"github.com/akyairhashvil/hourglass/internal/timer"
)

// TickMsg is the 1-second clock event. The engine itself never
// schedules anything; this loop is the external clock source.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

const (
	fieldHours = iota
	fieldMinutes
	fieldSeconds
	fieldCount
)

var fieldIDs = [fieldCount]timer.Field{timer.FieldHours, timer.FieldMinutes, timer.FieldSeconds}

// ThemeSettingKey is the settings-table key holding the active theme.
const ThemeSettingKey = "theme"

// Model is the root bubbletea model.
type Model struct {
	engine *timer.Engine
	store  database.Store
	log    zerolog.Logger

	theme     Theme
	themeName string

	inputs   [fieldCount]textinput.Model
	focused  int
	progress progress.Model

	presets      []models.Preset
	namingPreset bool
	presetInput  textinput.Model

	showHistory bool
	history     []models.Session

	status  string
	errMsg  string
	ticking bool

	width  int
	height int
}

// NewModel wires the engine, store, and logger into a ready model. The
// input fields start from the engine's current configuration.
func NewModel(engine *timer.Engine, store database.Store, log zerolog.Logger, themeName string) Model {
	m := Model{
		engine:    engine,
		store:     store,
		log:       log,
		themeName: themeName,
		theme:     LookupTheme(themeName),
		progress:  progress.New(progress.WithDefaultGradient()),
	}
	m.progress.Width = config.TargetBarWidth

	labels := [fieldCount]string{"HH", "MM", "SS"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = config.FieldCharLimit
		ti.Width = config.FieldWidth
		m.inputs[i] = ti
	}
	m.setInputsFromSpec(engine.Spec())
	m.inputs[m.focused].Focus()

	pi := textinput.New()
	pi.Placeholder = "Preset name..."
	pi.CharLimit = config.PresetNameLimit
	pi.Width = config.PresetNameLimit
	m.presetInput = pi

	m.reloadPresets()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) setInputsFromSpec(spec timer.Spec) {
	values := [fieldCount]int{spec.Hours, spec.Minutes, spec.Seconds}
	for i := range m.inputs {
		m.inputs[i].SetValue(twoDigits(values[i]))
	}
}

func twoDigits(v int) string {
	digits := []byte{byte('0' + v/10), byte('0' + v%10)}
	return string(digits)
}

func (m *Model) reloadPresets() {
	presets, err := m.store.ListPresets()
	if err != nil {
		m.log.Error().Err(err).Msg("load presets")
		return
	}
	if len(presets) > config.MaxPresets {
		presets = presets[:config.MaxPresets]
	}
	m.presets = presets
}

func (m *Model) reloadHistory() {
	history, err := m.store.RecentSessions(config.HistoryLimit)
	if err != nil {
		m.log.Error().Err(err).Msg("load history")
		m.errMsg = "could not load history"
		return
	}
	m.history = history
}

// parseInputs runs the three edit fields through the validator and
// returns the resulting spec. The error identifies the offending field.
func (m *Model) parseInputs() (timer.Spec, error) {
	var values [fieldCount]int
	for i := range m.inputs {
		v, err := timer.ParseField(m.inputs[i].Value(), fieldIDs[i])
		if err != nil {
			return timer.Spec{}, err
		}
		values[i] = v
	}
	return timer.Validate(values[fieldHours], values[fieldMinutes], values[fieldSeconds])
}
