package theme

import "embed"

// DefaultAssetName is the filename of the bundled default theme. It is
// seeded into the theme folder on first use and never overwritten.
const DefaultAssetName = "par.json"

//go:embed builtin/par.json
var builtinFS embed.FS

// defaultThemeAsset returns the bundled default theme definition verbatim.
func defaultThemeAsset() ([]byte, error) {
	return builtinFS.ReadFile("builtin/" + DefaultAssetName)
}
