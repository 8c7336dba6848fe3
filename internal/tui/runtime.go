// Package tui implements the parterm terminal user interface: the theme
// registry the loader feeds, and the theme picker built on top of it.
package tui

import (
	"fmt"
	"sync"

	"github.com/parterm/parterm/internal/tui/styles"
)

// Registry is the UI runtime's theme state: registered themes, the active
// theme, and the lipgloss styles derived from it. Theme loading happens at
// startup or explicit reload; the mutex only covers the watcher-triggered
// reload path.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]styles.Theme
	order  []string
	active string
	styles styles.Styles
}

// NewRegistry creates a registry rendering with the compiled-in fallback
// styles until a theme is activated.
func NewRegistry() *Registry {
	return &Registry{
		themes: make(map[string]styles.Theme),
		styles: styles.FallbackStyles(),
	}
}

// RegisterTheme adds or replaces a theme under its key. Re-registering the
// active theme rebuilds the current styles.
func (r *Registry) RegisterTheme(theme styles.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.themes[theme.Name]; !exists {
		r.order = append(r.order, theme.Name)
	}
	r.themes[theme.Name] = theme

	if theme.Name == r.active {
		r.styles = styles.BuildStyles(theme)
	}
}

// AvailableThemes returns a copy of the registered themes.
func (r *Registry) AvailableThemes() map[string]styles.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	available := make(map[string]styles.Theme, len(r.themes))
	for name, theme := range r.themes {
		available[name] = theme
	}
	return available
}

// ThemeNames returns registered theme keys in registration order.
func (r *Registry) ThemeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// ActiveTheme returns the key of the active theme, or empty if none has
// been activated.
func (r *Registry) ActiveTheme() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// SetActiveTheme activates a registered theme and rebuilds the current
// styles from it. Unknown keys are rejected.
func (r *Registry) SetActiveTheme(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	theme, ok := r.themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	r.active = name
	r.styles = styles.BuildStyles(theme)
	return nil
}

// Styles returns the styles for the active theme, or the fallback styles
// when no theme is active.
func (r *Registry) Styles() styles.Styles {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.styles
}
