package config

import "strings"

// Fixed bindings shared by every frontend. Direction bindings may not reuse them.
var (
	ConfirmKeys = []string{"enter", "space"}
	PauseKeys   = []string{"p"}
	QuitKeys    = []string{"q", "esc", "ctrl+c"}
)

// namedKeys are the non-character key names a frontend must understand.
var namedKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"space": true, "enter": true, "esc": true, "tab": true,
	"ctrl+c": true,
}

var keyAliases = map[string]string{
	"escape":     "esc",
	"return":     "enter",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
}

// NormalizeKey lowercases a key name and folds common aliases
// ("escape", "return", "ArrowUp", " ") onto the canonical names.
func NormalizeKey(name string) string {
	if name == " " {
		return "space"
	}
	k := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}

// KnownKey reports whether a normalized key name can be bound:
// a single letter or digit, or one of the named keys.
func KnownKey(name string) bool {
	if namedKeys[name] {
		return true
	}
	if len(name) != 1 {
		return false
	}
	c := name[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func reservedKey(name string) bool {
	for _, group := range [][]string{ConfirmKeys, PauseKeys, QuitKeys} {
		for _, k := range group {
			if k == name {
				return true
			}
		}
	}
	return false
}
