package styles

// FallbackTheme is the compiled-in token set used before any theme file has
// been registered. It matches the dark mode of the bundled par theme.
var FallbackTheme = Theme{
	Name: "fallback_dark",
	Dark: true,
	Tokens: Tokens{
		Background: "#0B0F14",
		Panel:      "#121821",
		Text:       "#E6EDF3",
		TextMuted:  "#8B9AAE",
		Border:     "#223043",
		Accent:     "#5B8DEF",
		Focus:      "#7AA2F7",
		Success:    "#3FB950",
		Warning:    "#D29922",
		Error:      "#F85149",
		Info:       "#58A6FF",
	},
}
