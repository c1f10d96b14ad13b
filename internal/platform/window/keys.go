package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// namedKeys maps the non-character config key names to Ebitengine keys.
// "ctrl+c" has no single key here; the window close button covers it.
var namedKeys = map[string]ebiten.Key{
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"space": ebiten.KeySpace,
	"enter": ebiten.KeyEnter,
	"esc":   ebiten.KeyEscape,
	"tab":   ebiten.KeyTab,
}

// charKeys maps single-character config key names to Ebitengine keys.
var charKeys = map[byte]ebiten.Key{
	'a': ebiten.KeyA,
	'b': ebiten.KeyB,
	'c': ebiten.KeyC,
	'd': ebiten.KeyD,
	'e': ebiten.KeyE,
	'f': ebiten.KeyF,
	'g': ebiten.KeyG,
	'h': ebiten.KeyH,
	'i': ebiten.KeyI,
	'j': ebiten.KeyJ,
	'k': ebiten.KeyK,
	'l': ebiten.KeyL,
	'm': ebiten.KeyM,
	'n': ebiten.KeyN,
	'o': ebiten.KeyO,
	'p': ebiten.KeyP,
	'q': ebiten.KeyQ,
	'r': ebiten.KeyR,
	's': ebiten.KeyS,
	't': ebiten.KeyT,
	'u': ebiten.KeyU,
	'v': ebiten.KeyV,
	'w': ebiten.KeyW,
	'x': ebiten.KeyX,
	'y': ebiten.KeyY,
	'z': ebiten.KeyZ,
	'0': ebiten.KeyDigit0,
	'1': ebiten.KeyDigit1,
	'2': ebiten.KeyDigit2,
	'3': ebiten.KeyDigit3,
	'4': ebiten.KeyDigit4,
	'5': ebiten.KeyDigit5,
	'6': ebiten.KeyDigit6,
	'7': ebiten.KeyDigit7,
	'8': ebiten.KeyDigit8,
	'9': ebiten.KeyDigit9,
}

// lookupKey resolves a normalized config key name.
func lookupKey(name string) (ebiten.Key, bool) {
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	if len(name) != 1 {
		return 0, false
	}
	k, ok := charKeys[name[0]]
	return k, ok
}

// bindings builds the key table for cfg: configured directions plus the
// fixed confirm, pause and quit keys.
func bindings(cfg config.Config) map[ebiten.Key]core.Action {
	out := make(map[ebiten.Key]core.Action)
	add := func(names []string, a core.Action) {
		for _, n := range names {
			if k, ok := lookupKey(config.NormalizeKey(n)); ok {
				out[k] = a
			}
		}
	}

	add(config.ConfirmKeys, core.ActionConfirm)
	add(config.PauseKeys, core.ActionPause)
	add(config.QuitKeys, core.ActionQuit)
	for name, a := range cfg.Bindings() {
		add([]string{name}, a)
	}
	return out
}
