package styles

import "testing"

func TestTokensFromAttributes(t *testing.T) {
	tokens, err := TokensFromAttributes(map[string]string{
		"background": "#000000",
		"text":       "#ffffff",
		"text_muted": "#888888",
		"accent":     "#5B8DEF",
	})
	if err != nil {
		t.Fatalf("TokensFromAttributes: %v", err)
	}

	if tokens.Background != "#000000" {
		t.Fatalf("unexpected background: %q", tokens.Background)
	}
	if tokens.TextMuted != "#888888" {
		t.Fatalf("unexpected text_muted: %q", tokens.TextMuted)
	}
	if tokens.Panel != "" {
		t.Fatalf("expected unset panel, got %q", tokens.Panel)
	}
}

func TestTokensFromAttributesUnknown(t *testing.T) {
	_, err := TokensFromAttributes(map[string]string{"txet": "#fff"})
	if err == nil {
		t.Fatal("expected error for unknown attribute")
	}
}

func TestTokensFromAttributesCoversSchema(t *testing.T) {
	attrs := make(map[string]string, len(AttributeNames))
	for _, name := range AttributeNames {
		attrs[name] = "#123456"
	}

	tokens, err := TokensFromAttributes(attrs)
	if err != nil {
		t.Fatalf("TokensFromAttributes: %v", err)
	}
	if tokens.Info != "#123456" || tokens.Focus != "#123456" || tokens.Border != "#123456" {
		t.Fatalf("schema attribute not mapped: %+v", tokens)
	}
}

func TestBuildStylesUsesTheme(t *testing.T) {
	built := BuildStyles(FallbackTheme)
	if built.Theme.Name != FallbackTheme.Name {
		t.Fatalf("unexpected theme: %q", built.Theme.Name)
	}
}
