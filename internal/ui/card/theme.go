package card

// Color is one of the five card color themes.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorIndigo Color = "indigo"
)

// AllColors lists every theme, in display order.
var AllColors = []Color{ColorBlue, ColorGreen, ColorPurple, ColorOrange, ColorIndigo}

// ParseColor normalizes a color name, falling back to blue for
// anything outside the enumerated set.
func ParseColor(name string) Color {
	switch Color(name) {
	case ColorBlue, ColorGreen, ColorPurple, ColorOrange, ColorIndigo:
		return Color(name)
	default:
		return ColorBlue
	}
}

// Theme is the set of class tokens applied to a rendered card.
type Theme struct {
	Container string
	Accent    string
	Value     string
}

type themeVariants struct {
	light Theme
	dark  Theme
}

var themes = map[Color]themeVariants{
	ColorBlue: {
		light: Theme{
			Container: "bg-blue-50 border-blue-200 hover:border-blue-300",
			Accent:    "text-blue-600",
			Value:     "text-blue-900",
		},
		dark: Theme{
			Container: "bg-blue-900/20 border-blue-800 hover:border-blue-700",
			Accent:    "text-blue-400",
			Value:     "text-blue-100",
		},
	},
	ColorGreen: {
		light: Theme{
			Container: "bg-green-50 border-green-200 hover:border-green-300",
			Accent:    "text-green-600",
			Value:     "text-green-900",
		},
		dark: Theme{
			Container: "bg-green-900/20 border-green-800 hover:border-green-700",
			Accent:    "text-green-400",
			Value:     "text-green-100",
		},
	},
	ColorPurple: {
		light: Theme{
			Container: "bg-purple-50 border-purple-200 hover:border-purple-300",
			Accent:    "text-purple-600",
			Value:     "text-purple-900",
		},
		dark: Theme{
			Container: "bg-purple-900/20 border-purple-800 hover:border-purple-700",
			Accent:    "text-purple-400",
			Value:     "text-purple-100",
		},
	},
	ColorOrange: {
		light: Theme{
			Container: "bg-orange-50 border-orange-200 hover:border-orange-300",
			Accent:    "text-orange-600",
			Value:     "text-orange-900",
		},
		dark: Theme{
			Container: "bg-orange-900/20 border-orange-800 hover:border-orange-700",
			Accent:    "text-orange-400",
			Value:     "text-orange-100",
		},
	},
	ColorIndigo: {
		light: Theme{
			Container: "bg-indigo-50 border-indigo-200 hover:border-indigo-300",
			Accent:    "text-indigo-600",
			Value:     "text-indigo-900",
		},
		dark: Theme{
			Container: "bg-indigo-900/20 border-indigo-800 hover:border-indigo-700",
			Accent:    "text-indigo-400",
			Value:     "text-indigo-100",
		},
	},
}

// ThemeFor returns the class tokens for a color and mode. Unknown
// colors use the blue theme.
func ThemeFor(color Color, dark bool) Theme {
	variants, ok := themes[color]
	if !ok {
		variants = themes[ColorBlue]
	}
	if dark {
		return variants.dark
	}
	return variants.light
}
