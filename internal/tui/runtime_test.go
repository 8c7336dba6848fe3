package tui

import (
	"testing"

	"github.com/parterm/parterm/internal/tui/styles"
)

func themeNamed(name string) styles.Theme {
	return styles.Theme{Name: name, Tokens: styles.Tokens{Text: "#ffffff"}}
}

func TestRegistryRegisterAndList(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterTheme(themeNamed("par_dark"))
	registry.RegisterTheme(themeNamed("par_light"))
	registry.RegisterTheme(themeNamed("par_dark")) // overwrite, not duplicate

	names := registry.ThemeNames()
	if len(names) != 2 || names[0] != "par_dark" || names[1] != "par_light" {
		t.Fatalf("unexpected names: %v", names)
	}

	available := registry.AvailableThemes()
	if len(available) != 2 {
		t.Fatalf("unexpected available themes: %v", available)
	}
}

func TestRegistrySetActiveTheme(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterTheme(themeNamed("par_dark"))

	if err := registry.SetActiveTheme("par_dark"); err != nil {
		t.Fatalf("SetActiveTheme: %v", err)
	}
	if registry.ActiveTheme() != "par_dark" {
		t.Fatalf("unexpected active theme: %q", registry.ActiveTheme())
	}
	if registry.Styles().Theme.Name != "par_dark" {
		t.Fatalf("styles not rebuilt for active theme")
	}

	if err := registry.SetActiveTheme("nope"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if registry.ActiveTheme() != "par_dark" {
		t.Fatal("failed activation must not change the active theme")
	}
}

func TestRegistryReregisterActiveRebuildsStyles(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterTheme(themeNamed("par_dark"))
	if err := registry.SetActiveTheme("par_dark"); err != nil {
		t.Fatalf("SetActiveTheme: %v", err)
	}

	updated := themeNamed("par_dark")
	updated.Tokens.Text = "#000000"
	registry.RegisterTheme(updated)

	if registry.Styles().Theme.Tokens.Text != "#000000" {
		t.Fatal("expected styles rebuilt from re-registered theme")
	}
}

func TestRegistryFallbackStylesBeforeActivation(t *testing.T) {
	registry := NewRegistry()
	if registry.ActiveTheme() != "" {
		t.Fatalf("unexpected active theme: %q", registry.ActiveTheme())
	}
	if registry.Styles().Theme.Name != styles.FallbackTheme.Name {
		t.Fatalf("expected fallback styles, got %q", registry.Styles().Theme.Name)
	}
}
