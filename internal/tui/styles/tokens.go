// Package styles defines the theme token schema and derives lipgloss styles
// from registered themes.
package styles

import "fmt"

// Tokens defines the semantic color roles for the TUI.
type Tokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme is a named token set registered with the runtime. Dark records which
// display variant the tokens were authored for.
type Theme struct {
	Name   string
	Dark   bool
	Tokens Tokens
}

// AttributeNames lists the attribute keys a theme definition may set, in
// schema order.
var AttributeNames = []string{
	"background",
	"panel",
	"text",
	"text_muted",
	"border",
	"accent",
	"focus",
	"success",
	"warning",
	"error",
	"info",
}

// TokensFromAttributes maps a theme definition's attribute mapping onto the
// token schema. Unknown attribute names are rejected rather than ignored so
// a typo in a theme file surfaces as a load failure instead of a silently
// unstyled element.
func TokensFromAttributes(attrs map[string]string) (Tokens, error) {
	var tokens Tokens
	for name, value := range attrs {
		switch name {
		case "background":
			tokens.Background = value
		case "panel":
			tokens.Panel = value
		case "text":
			tokens.Text = value
		case "text_muted":
			tokens.TextMuted = value
		case "border":
			tokens.Border = value
		case "accent":
			tokens.Accent = value
		case "focus":
			tokens.Focus = value
		case "success":
			tokens.Success = value
		case "warning":
			tokens.Warning = value
		case "error":
			tokens.Error = value
		case "info":
			tokens.Info = value
		default:
			return Tokens{}, fmt.Errorf("unknown theme attribute %q", name)
		}
	}
	return tokens, nil
}
