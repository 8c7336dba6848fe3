// Package theme loads user-installable theme definitions from disk,
// validates them, and registers them with the UI runtime. A failed load
// degrades to the configured fallback theme instead of surfacing an error.
package theme

import (
	"encoding/json"
	"fmt"

	"github.com/parterm/parterm/internal/tui/styles"
)

// Modes lists the supported display modes in registration order.
var Modes = []string{"dark", "light"}

// themesFromDefinition validates a decoded theme definition and converts it
// into one runtime theme per present mode, keyed "<name>_<mode>". The whole
// definition is validated before anything is returned so a bad mode never
// yields a partial registration.
func themesFromDefinition(name string, doc map[string]json.RawMessage) ([]styles.Theme, error) {
	if _, hasDark := doc["dark"]; !hasDark {
		if _, hasLight := doc["light"]; !hasLight {
			return nil, NewThemeModeError(name)
		}
	}

	themes := make([]styles.Theme, 0, len(Modes))
	for _, mode := range Modes {
		raw, ok := doc[mode]
		if !ok {
			continue
		}

		var attrs map[string]string
		if err := json.Unmarshal(raw, &attrs); err != nil {
			return nil, &InvalidThemeError{
				Name:   name,
				Reason: fmt.Sprintf("%s mode is not a mapping of attribute names to strings: %v", mode, err),
			}
		}

		tokens, err := styles.TokensFromAttributes(attrs)
		if err != nil {
			return nil, &InvalidThemeError{
				Name:   name,
				Reason: fmt.Sprintf("%s mode: %v", mode, err),
			}
		}

		themes = append(themes, styles.Theme{
			Name:   name + "_" + mode,
			Dark:   mode == "dark",
			Tokens: tokens,
		})
	}

	return themes, nil
}
