package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a player command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionReset
	ActionSpeedUp
	ActionSpeedDown
	ActionDepthUp
	ActionDepthDown
	ActionThemeDark
	ActionThemeLight
	ActionThemeBlue
	ActionThemeAnime
	ActionScreenshot
	ActionQuit
)

var keyActions = map[sdl.Scancode]Action{
	sdl.SCANCODE_SPACE:        ActionToggle,
	sdl.SCANCODE_R:            ActionReset,
	sdl.SCANCODE_UP:           ActionSpeedUp,
	sdl.SCANCODE_DOWN:         ActionSpeedDown,
	sdl.SCANCODE_RIGHTBRACKET: ActionDepthUp,
	sdl.SCANCODE_LEFTBRACKET:  ActionDepthDown,
	sdl.SCANCODE_1:            ActionThemeDark,
	sdl.SCANCODE_2:            ActionThemeLight,
	sdl.SCANCODE_3:            ActionThemeBlue,
	sdl.SCANCODE_4:            ActionThemeAnime,
	sdl.SCANCODE_F12:          ActionScreenshot,
	sdl.SCANCODE_ESCAPE:       ActionQuit,
}

// repeatable actions fire again while the key is held.
var repeatable = map[Action]bool{
	ActionSpeedUp:   true,
	ActionSpeedDown: true,
	ActionDepthUp:   true,
	ActionDepthDown: true,
}

// ActionForKey returns the action bound to a scancode.
func ActionForKey(key sdl.Scancode) Action {
	return keyActions[key]
}

// ActionsFor maps key-down events to actions. Auto-repeat only fires for
// the slider-like actions; holding Space must not flicker play/pause.
func ActionsFor(events []Event) []Action {
	var out []Action
	for _, e := range events {
		if e.Type != EventKeyDown {
			continue
		}
		a := ActionForKey(e.Key)
		if a == ActionNone || (e.Repeat && !repeatable[a]) {
			continue
		}
		out = append(out, a)
	}
	return out
}
