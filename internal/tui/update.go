package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/hourglass/internal/config"
	"github.com/akyairhashvil/hourglass/internal/timer"
	"github.com/akyairhashvil/hourglass/internal/util"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		m.errMsg = ""
		m.status = ""
		if m.namingPreset {
			return m.handleNamingKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	var cmd tea.Cmd
	if m.namingPreset {
		m.presetInput, cmd = m.presetInput.Update(msg)
		return m, cmd
	}
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	target := config.TargetBarWidth
	if m.width > 0 && m.width < config.CompactWidth {
		target = m.width / 2
	}
	m.progress.Width = util.Clamp(target, config.MinBarWidth, config.TargetBarWidth)
	return m, nil
}

// handleTick forwards one clock event into the engine and re-arms the
// clock only while the countdown keeps running. A stale tick arriving
// after pause or reset is ignored by the engine and ends the chain
// here, so resuming never stacks a second chain.
func (m Model) handleTick(TickMsg) (tea.Model, tea.Cmd) {
	if m.engine.State() != timer.StateRunning {
		m.ticking = false
		return m, nil
	}
	m.engine.Tick()
	if m.engine.State() == timer.StateRunning {
		return m, tickCmd()
	}
	m.ticking = false
	if m.engine.State() == timer.StateCompleted && m.showHistory {
		m.reloadHistory()
	}
	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "right":
		return m.cycleFocus(1), nil
	case "shift+tab", "left":
		return m.cycleFocus(-1), nil
	case "enter":
		return m.applyInputs(), nil
	case " ":
		return m.toggleStartPause()
	case "r":
		m.engine.Reset()
		m.setInputsFromSpec(m.engine.Spec())
		m.status = "timer reset"
		return m, nil
	case "p":
		m.namingPreset = true
		m.presetInput.Reset()
		m.presetInput.Focus()
		return m, textinput.Blink
	case "h":
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.reloadHistory()
		}
		return m, nil
	case "e":
		return m.exportReport(), nil
	case "t":
		return m.cycleTheme(), nil
	}
	if preset, ok := presetIndex(key); ok {
		return m.applyPreset(preset), nil
	}

	// Everything else belongs to the focused edit field. Only digits
	// and editing keys are useful there; stray runes fall through to
	// the validator on apply.
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// presetIndex maps alt+1..alt+9 to a preset slot.
func presetIndex(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, "alt+")
	if !ok || len(rest) != 1 || rest[0] < '1' || rest[0] > '9' {
		return 0, false
	}
	return int(rest[0] - '1'), true
}

func (m Model) cycleFocus(dir int) Model {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + dir + fieldCount) % fieldCount
	m.inputs[m.focused].Focus()
	return m
}

// applyInputs validates the edit fields and configures the engine.
func (m Model) applyInputs() Model {
	spec, err := m.parseInputs()
	if err != nil {
		m.errMsg = validationMessage(err)
		return m
	}
	if err := m.engine.Configure(spec.Hours, spec.Minutes, spec.Seconds); err != nil {
		m.errMsg = transitionMessage(err)
		return m
	}
	m.status = "timer set to " + FormatClock(spec.TotalSeconds())
	return m
}

// toggleStartPause is the space key: pause while running, resume while
// paused, otherwise configure from the edit fields and start.
func (m Model) toggleStartPause() (tea.Model, tea.Cmd) {
	switch m.engine.State() {
	case timer.StateRunning:
		m.engine.Pause()
		m.status = "paused"
		return m, nil
	case timer.StatePaused:
		if err := m.engine.Start(); err != nil {
			m.errMsg = transitionMessage(err)
			return m, nil
		}
	default:
		// Idle or Completed: the current field values win, the way the
		// desktop original re-reads its spinboxes on start.
		spec, err := m.parseInputs()
		if err != nil {
			m.errMsg = validationMessage(err)
			return m, nil
		}
		if err := m.engine.Configure(spec.Hours, spec.Minutes, spec.Seconds); err != nil {
			m.errMsg = transitionMessage(err)
			return m, nil
		}
		if err := m.engine.Start(); err != nil {
			m.errMsg = transitionMessage(err)
			return m, nil
		}
	}
	return m.ensureTicking()
}

// ensureTicking arms the clock chain if it is not already pending.
func (m Model) ensureTicking() (tea.Model, tea.Cmd) {
	if m.ticking || m.engine.State() != timer.StateRunning {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd()
}

func (m Model) applyPreset(i int) Model {
	if i >= len(m.presets) {
		m.errMsg = fmt.Sprintf("no preset %d", i+1)
		return m
	}
	p := m.presets[i]
	if err := m.engine.Configure(p.Hours, p.Minutes, p.Seconds); err != nil {
		m.errMsg = transitionMessage(err)
		return m
	}
	m.setInputsFromSpec(m.engine.Spec())
	m.status = fmt.Sprintf("preset %q applied", p.Name)
	return m
}

func (m Model) handleNamingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.namingPreset = false
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.presetInput.Value())
		if name == "" {
			m.errMsg = "preset needs a name"
			return m, nil
		}
		spec, err := m.parseInputs()
		if err != nil {
			m.errMsg = validationMessage(err)
			m.namingPreset = false
			return m, nil
		}
		if err := m.store.SavePreset(name, spec.Hours, spec.Minutes, spec.Seconds); err != nil {
			m.log.Error().Err(err).Msg("save preset")
			m.errMsg = "could not save preset"
			m.namingPreset = false
			return m, nil
		}
		m.reloadPresets()
		m.namingPreset = false
		m.status = fmt.Sprintf("preset %q saved", name)
		return m, nil
	}
	var cmd tea.Cmd
	m.presetInput, cmd = m.presetInput.Update(msg)
	return m, cmd
}

func (m Model) exportReport() Model {
	path, err := GeneratePDFReport(m.store, util.ReportsDir(config.AppName))
	if err != nil {
		m.log.Error().Err(err).Msg("export report")
		m.errMsg = "export failed: " + err.Error()
		return m
	}
	m.status = "report written to " + path
	return m
}

func (m Model) cycleTheme() Model {
	m.themeName = NextTheme(m.themeName)
	m.theme = LookupTheme(m.themeName)
	if err := m.store.SetSetting(ThemeSettingKey, m.themeName); err != nil {
		m.log.Error().Err(err).Msg("persist theme")
	}
	m.status = "theme: " + m.theme.Name
	return m
}

// validationMessage renders a field-specific inline message.
func validationMessage(err error) string {
	var verr *timer.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return err.Error()
}

func transitionMessage(err error) string {
	if errors.Is(err, timer.ErrInvalidTransition) {
		var terr *timer.TransitionError
		if errors.As(err, &terr) && terr.Reason != "" {
			return terr.Reason
		}
		return "not allowed now: " + err.Error()
	}
	return err.Error()
}
