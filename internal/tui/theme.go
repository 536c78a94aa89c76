package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Display   lipgloss.Style
	Completed lipgloss.Style
	Paused    lipgloss.Style
	Label     lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Display:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 2),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Display:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 2),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	},
}

// ThemeOrder fixes the cycling order for the theme key.
var ThemeOrder = []string{"default", "dracula"}

// NextTheme returns the theme name following current in ThemeOrder.
func NextTheme(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}

// LookupTheme returns the named theme, falling back to default.
func LookupTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
