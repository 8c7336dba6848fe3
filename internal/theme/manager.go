package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parterm/parterm/internal/config"
	"github.com/parterm/parterm/internal/logging"
	"github.com/parterm/parterm/internal/securefile"
	"github.com/parterm/parterm/internal/tui/styles"
)

// Runtime is the host UI runtime's theme surface as consumed by the
// manager: a registry of named themes plus a settable active theme.
type Runtime interface {
	RegisterTheme(theme styles.Theme)
	AvailableThemes() map[string]styles.Theme
	ActiveTheme() string
	SetActiveTheme(name string) error
}

// SelectOption is one entry for a theme selection widget.
type SelectOption struct {
	Label string
	Value string
}

// Manager owns the theme folder and the load/validate/register pipeline.
type Manager struct {
	cfg      *config.Config
	accessor *securefile.Accessor
	sink     logging.Sink
	runtime  Runtime
}

// NewManager creates a theme manager. The runtime is attached separately
// via SetRuntime once the UI is constructed.
func NewManager(cfg *config.Config, accessor *securefile.Accessor, sink logging.Sink) *Manager {
	return &Manager{
		cfg:      cfg,
		accessor: accessor,
		sink:     sink,
	}
}

// SetRuntime attaches the UI runtime that registered themes flow into.
func (m *Manager) SetRuntime(runtime Runtime) {
	m.runtime = runtime
}

// ThemesDir returns the theme storage directory.
func (m *Manager) ThemesDir() string {
	return m.cfg.ThemesDir()
}

// EnsureDefaultTheme creates the theme folder if needed and seeds it with
// the bundled default theme. Idempotent; an existing file is never
// overwritten.
func (m *Manager) EnsureDefaultTheme() error {
	dir := m.cfg.ThemesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create theme folder %s: %w", dir, err)
	}

	target := filepath.Join(dir, DefaultAssetName)
	if _, err := os.Stat(target); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat default theme %s: %w", target, err)
	}

	asset, err := defaultThemeAsset()
	if err != nil {
		return fmt.Errorf("read bundled default theme: %w", err)
	}
	if err := os.WriteFile(target, asset, 0o644); err != nil {
		return fmt.Errorf("seed default theme %s: %w", target, err)
	}
	return nil
}

// LoadTheme loads one named theme and registers a runtime theme per present
// mode. Directory components in name are stripped; only the base name is
// resolved inside the theme folder. A failed load is reported through the
// sink and replaced by the fallback theme, never surfaced to the caller.
// The only returned error is ErrRuntimeNotReady.
func (m *Manager) LoadTheme(name string) error {
	if m.runtime == nil {
		return ErrRuntimeNotReady
	}
	m.load(name, false)
	return nil
}

// LoadThemes seeds the theme folder and loads every .json file in it.
// Individual file failures are absorbed by the per-file fallback policy;
// one bad theme never aborts the batch.
func (m *Manager) LoadThemes() error {
	if m.runtime == nil {
		return ErrRuntimeNotReady
	}
	if err := m.EnsureDefaultTheme(); err != nil {
		return err
	}

	dir := m.cfg.ThemesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read theme folder %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, ".json") {
			continue
		}
		m.load(strings.TrimSuffix(name, ext), false)
	}
	return nil
}

// load runs the register-or-fall-back policy for one theme. inFallback
// bounds the recovery chain to a single fallback attempt; the name check
// keeps a failing fallback theme from retrying itself.
func (m *Manager) load(name string, inFallback bool) {
	base := filepath.Base(name)

	if err := m.register(base); err != nil {
		m.sink.LogEvent(
			fmt.Sprintf("Error loading theme %s: %v", base, err),
			true, logging.SeverityError,
		)

		fallback := m.cfg.ThemeFallbackName
		if inFallback || base == fallback {
			return
		}
		m.load(fallback, true)
	}
}

// register reads, validates and registers one theme definition.
func (m *Manager) register(base string) error {
	themes, err := m.parse(base)
	if err != nil {
		return err
	}
	for _, t := range themes {
		m.runtime.RegisterTheme(t)
	}
	return nil
}

// parse reads and validates one theme definition without touching the
// runtime.
func (m *Manager) parse(base string) ([]styles.Theme, error) {
	path := filepath.Join(m.cfg.ThemesDir(), base+".json")

	doc, err := m.accessor.ReadJSON(path)
	if err != nil {
		return nil, err
	}
	return themesFromDefinition(base, doc)
}

// ValidateTheme checks that a named theme file would load, without
// registering anything. Unlike LoadTheme it reports the failure to the
// caller and applies no fallback.
func (m *Manager) ValidateTheme(name string) error {
	_, err := m.parse(filepath.Base(name))
	return err
}

// GetTheme returns the registered theme for the given key.
func (m *Manager) GetTheme(name string) (styles.Theme, error) {
	if m.runtime == nil {
		return styles.Theme{}, ErrRuntimeNotReady
	}
	t, ok := m.runtime.AvailableThemes()[name]
	if !ok {
		return styles.Theme{}, fmt.Errorf("theme %q: %w", name, ErrThemeNotFound)
	}
	return t, nil
}

// ListThemes returns the registered theme keys in the order the runtime
// reports them.
func (m *Manager) ListThemes() ([]string, error) {
	if m.runtime == nil {
		return nil, ErrRuntimeNotReady
	}
	available := m.runtime.AvailableThemes()
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	return names, nil
}

// ThemeSelectOptions projects the theme list into selection options; the
// label and value are both the theme key.
func (m *Manager) ThemeSelectOptions() ([]SelectOption, error) {
	names, err := m.ListThemes()
	if err != nil {
		return nil, err
	}
	options := make([]SelectOption, 0, len(names))
	for _, name := range names {
		options = append(options, SelectOption{Label: name, Value: name})
	}
	return options, nil
}

// ChangeTheme sets the runtime's active theme. The runtime rejects unknown
// keys.
func (m *Manager) ChangeTheme(name string) error {
	if m.runtime == nil {
		return ErrRuntimeNotReady
	}
	return m.runtime.SetActiveTheme(name)
}
