package cli

import (
	"github.com/parterm/parterm/internal/config"
	"github.com/parterm/parterm/internal/logging"
	"github.com/parterm/parterm/internal/securefile"
	"github.com/parterm/parterm/internal/theme"
	"github.com/parterm/parterm/internal/tui"
)

// app bundles the wired-up subsystems a command operates on.
type app struct {
	cfg      *config.Config
	sink     *logging.EventSink
	manager  *theme.Manager
	registry *tui.Registry
}

// setupApp loads configuration and constructs the theme pipeline. Themes
// are not loaded yet; commands call loadThemes when they need the registry
// populated.
func setupApp(console bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Options{
		Level:    cfg.LogLevel,
		FilePath: cfg.LogFile,
		Console:  console,
	})
	sink := logging.NewEventSink(logger, nil)

	accessor := securefile.NewAccessor(securefile.Policy{
		MaxFileSizeMB:     cfg.MaxJSONSizeMB,
		AllowedExtensions: cfg.AllowedJSONExtensions,
		ValidateContent:   cfg.ValidateFileContent,
		SanitizeFilenames: cfg.SanitizeFilenames,
	})

	manager := theme.NewManager(cfg, accessor, sink)
	registry := tui.NewRegistry()
	manager.SetRuntime(registry)

	return &app{
		cfg:      cfg,
		sink:     sink,
		manager:  manager,
		registry: registry,
	}, nil
}

// loadThemes populates the registry from the theme folder and activates the
// configured theme when it is present.
func (a *app) loadThemes() error {
	if err := a.manager.LoadThemes(); err != nil {
		return err
	}
	if a.cfg.Theme != "" {
		if err := a.manager.ChangeTheme(a.cfg.Theme); err != nil {
			a.sink.LogEvent(
				"Configured theme "+a.cfg.Theme+" is not available: "+err.Error(),
				false, logging.SeverityWarning,
			)
		}
	}
	return nil
}
