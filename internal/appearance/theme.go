package appearance

import "fmt"

// Theme is a named background style.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeBlue  Theme = "blue"
	// ThemeAnime shows an optional background image; the clear color is
	// its black fallback.
	ThemeAnime Theme = "anime"
)

var themeBackgrounds = map[Theme]Color{
	ThemeDark:  MustParseColor("#111111"),
	ThemeLight: MustParseColor("#ffffff"),
	ThemeBlue:  MustParseColor("#112a4d"),
	ThemeAnime: MustParseColor("#000000"),
}

// Themes returns every theme in selector order.
func Themes() []Theme {
	return []Theme{ThemeDark, ThemeLight, ThemeBlue, ThemeAnime}
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if _, ok := themeBackgrounds[t]; !ok {
		return ThemeDark, fmt.Errorf("unknown theme %q", s)
	}
	return t, nil
}

// Background returns the clear color for the theme. Unknown themes fall
// back to dark.
func (t Theme) Background() Color {
	if c, ok := themeBackgrounds[t]; ok {
		return c
	}
	return themeBackgrounds[ThemeDark]
}

// Next cycles to the following theme.
func (t Theme) Next() Theme {
	themes := Themes()
	for i, th := range themes {
		if th == t {
			return themes[(i+1)%len(themes)]
		}
	}
	return ThemeDark
}
