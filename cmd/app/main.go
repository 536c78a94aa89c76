package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/akyairhashvil/hourglass/internal/config"
	"github.com/akyairhashvil/hourglass/internal/database"
	"github.com/akyairhashvil/hourglass/internal/timer"
	"github.com/akyairhashvil/hourglass/internal/tui"
	"github.com/akyairhashvil/hourglass/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "hourglass is interactive; run it in a terminal")
		os.Exit(1)
	}

	dataDir := util.DataDir(config.AppName)
	logFile, err := util.OpenLogFile(dataDir, config.LogFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hourglass: open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := util.NewLogger(logFile)

	cfgPath := filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// Load already fell back to defaults; keep running but say so.
		log.Warn().Err(err).Msg("config file unusable, running with defaults")
	}

	db, err := database.Open(databasePath(cfg, dataDir))
	if err != nil {
		log.Error().Err(err).Msg("open database")
		fmt.Fprintf(os.Stderr, "hourglass: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	themeName := cfg.Theme
	if saved, err := db.GetSetting(tui.ThemeSettingKey); err == nil {
		themeName = saved
	}

	engine := timer.NewEngine(startupSpec(cfg, log))
	recorder := tui.NewSessionRecorder(db, log)
	engine.SetObserver(recorder.Notify)

	model := tui.NewModel(engine, db, log, themeName)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		fmt.Fprintf(os.Stderr, "hourglass: %v\n", err)
		os.Exit(1)
	}
}

// startupSpec validates the configured default duration; a config that
// fails validation falls back to the built-in default rather than
// refusing to start.
func startupSpec(cfg config.Config, log zerolog.Logger) timer.Spec {
	spec, err := timer.Validate(cfg.Timer.Hours, cfg.Timer.Minutes, cfg.Timer.Seconds)
	if err != nil {
		log.Warn().Err(err).Msg("configured duration invalid, using built-in default")
		spec, _ = timer.Validate(config.DefaultHours, config.DefaultMinutes, config.DefaultSeconds)
	}
	return spec
}

func databasePath(cfg config.Config, dataDir string) string {
	if cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	return filepath.Join(dataDir, config.DBFileName)
}
