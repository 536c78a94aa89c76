package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/hourglass/internal/timer"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderDisplay())
	b.WriteString("\n")
	b.WriteString(m.renderFields())
	b.WriteString("\n")
	b.WriteString(m.renderPresets())
	if m.namingPreset {
		b.WriteString("\n")
		b.WriteString(m.theme.Label.Render("Save preset as: ") + m.presetInput.View())
	}
	if m.showHistory {
		b.WriteString("\n\n")
		b.WriteString(m.renderHistory())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return m.theme.Base.Render(m.clampWidth(b.String()))
}

func (m Model) renderHeader() string {
	state := m.engine.State()
	var label string
	switch state {
	case timer.StateRunning:
		label = m.theme.Focused.Render("RUNNING")
	case timer.StatePaused:
		label = m.theme.Paused.Render("PAUSED")
	case timer.StateCompleted:
		label = m.theme.Completed.Render("COMPLETED")
	default:
		label = m.theme.Dim.Render("IDLE")
	}
	return m.theme.Header.Render("HOURGLASS") + "  " + label
}

func (m Model) renderDisplay() string {
	snap := m.engine.Snapshot()
	clock := FormatClock(snap.Remaining)

	display := m.theme.Display
	if snap.Completed {
		display = display.BorderForeground(lipgloss.Color("42"))
	}
	out := display.Render(clock)

	total := m.engine.Spec().TotalSeconds()
	if total > 0 && (snap.Running || snap.Completed || snap.Remaining < total) {
		pct := 1 - float64(snap.Remaining)/float64(total)
		out += "\n" + m.progress.ViewAs(pct)
	}
	if snap.Completed {
		out += "\n" + m.theme.Completed.Render("■ TIME'S UP ■")
	}
	return out
}

func (m Model) renderFields() string {
	labels := [fieldCount]string{"H", "M", "S"}
	parts := make([]string, 0, fieldCount)
	for i := range m.inputs {
		label := m.theme.Label.Render(labels[i])
		if i == m.focused {
			label = m.theme.Focused.Render(labels[i])
		}
		parts = append(parts, label+" "+m.theme.Input.Render(m.inputs[i].View()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderPresets() string {
	if len(m.presets) == 0 {
		return m.theme.Dim.Render("no presets — press p to save one")
	}
	parts := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", i+1, p.Name, FormatTriple(p.Hours, p.Minutes, p.Seconds)))
	}
	return m.theme.Dim.Render("presets: ") + m.theme.Status.Render(strings.Join(parts, "  •  "))
}

func (m Model) renderHistory() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Recent sessions"))
	b.WriteString("\n")
	if len(m.history) == 0 {
		b.WriteString(m.theme.Dim.Render("  nothing completed yet"))
		return b.String()
	}
	for _, s := range m.history {
		line := fmt.Sprintf("  %s  %s", FormatCompletedAt(s.CompletedAt), FormatTriple(s.Hours, s.Minutes, s.Seconds))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStatusLine() string {
	if m.errMsg != "" {
		return m.theme.Error.Render(m.errMsg)
	}
	if m.status != "" {
		return m.theme.Status.Render(m.status)
	}
	return ""
}

func (m Model) renderFooter() string {
	help := "space start/pause • enter set • r reset • tab fields • p preset • alt+1-9 apply • h history • e report • t theme • q quit"
	return m.theme.Dim.Render(help)
}

// clampWidth truncates every line to the window width so narrow
// terminals never wrap the layout.
func (m Model) clampWidth(s string) string {
	if m.width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > m.width {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
