package player

import (
	"time"

	"github.com/Faultbox/dogemark/internal/appearance"
	"github.com/Faultbox/dogemark/internal/engine/animation"
	"github.com/Faultbox/dogemark/internal/engine/input"
)

// Step sizes for the keyboard sliders.
const (
	SpeedStep = 0.1
	DepthStep = 0.02
)

var themeActions = map[input.Action]appearance.Theme{
	input.ActionThemeDark:  appearance.ThemeDark,
	input.ActionThemeLight: appearance.ThemeLight,
	input.ActionThemeBlue:  appearance.ThemeBlue,
	input.ActionThemeAnime: appearance.ThemeAnime,
}

// Apply returns the state after a keyboard action. Actions that do not
// touch the state (screenshot, quit) return s unchanged.
func Apply(s animation.State, a input.Action, now time.Time) animation.State {
	switch a {
	case input.ActionToggle:
		return s.Toggle(now)
	case input.ActionReset:
		return s.Reset(now)
	case input.ActionSpeedUp:
		return s.WithSpeed(s.Speed + SpeedStep)
	case input.ActionSpeedDown:
		return s.WithSpeed(s.Speed - SpeedStep)
	case input.ActionDepthUp:
		return s.WithDepth(s.Depth + DepthStep)
	case input.ActionDepthDown:
		return s.WithDepth(s.Depth - DepthStep)
	}
	if th, ok := themeActions[a]; ok {
		return s.WithTheme(th)
	}
	return s
}
