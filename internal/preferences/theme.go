package preferences

// Theme identifies one of the fixed presentation themes.
type Theme string

// Known themes.
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeBlue   Theme = "blue"
	ThemeGreen  Theme = "green"
	ThemePurple Theme = "purple"
)

// DefaultTheme is used until a saved theme exists.
const DefaultTheme = ThemeLight

// Valid reports whether the theme is known.
func (t Theme) Valid() bool {
	_, ok := palettes[t]
	return ok
}

// Palette is the named color set a theme applies to the presentation layer.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
}

var palettes = map[Theme]Palette{
	ThemeLight: {
		Primary:    "#3B82F6",
		Secondary:  "#6B7280",
		Success:    "#10B981",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
		Background: "#F9FAFB",
		Surface:    "#FFFFFF",
		Text:       "#111827",
	},
	ThemeDark: {
		Primary:    "#60A5FA",
		Secondary:  "#9CA3AF",
		Success:    "#34D399",
		Warning:    "#FBBF24",
		Error:      "#F87171",
		Background: "#111827",
		Surface:    "#1F2937",
		Text:       "#F9FAFB",
	},
	ThemeBlue: {
		Primary:    "#1E40AF",
		Secondary:  "#3B82F6",
		Success:    "#10B981",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
		Background: "#EFF6FF",
		Surface:    "#FFFFFF",
		Text:       "#1E3A8A",
	},
	ThemeGreen: {
		Primary:    "#059669",
		Secondary:  "#10B981",
		Success:    "#34D399",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
		Background: "#ECFDF5",
		Surface:    "#FFFFFF",
		Text:       "#064E3B",
	},
	ThemePurple: {
		Primary:    "#7C3AED",
		Secondary:  "#A78BFA",
		Success:    "#10B981",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
		Background: "#F3E8FF",
		Surface:    "#FFFFFF",
		Text:       "#581C87",
	},
}
