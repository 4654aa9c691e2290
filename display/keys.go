package display

import (
	"strings"

	"github.com/pkg/errors"
)

// Key is a backend independent key name, always lower case.
type Key string

const (
	KeyUnknown Key = ""

	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeyQ          Key = "q"
	KeyE          Key = "e"
	KeyR          Key = "r"
	KeyT          Key = "t"
	KeyArrowUp    Key = "up"
	KeyArrowDown  Key = "down"
	KeyArrowLeft  Key = "left"
	KeyArrowRight Key = "right"
	KeyPlus       Key = "+"
	KeyMinus      Key = "-"
	KeySpace      Key = "space"
	KeyEscape     Key = "escape"
)

var knownKeys = map[Key]bool{
	KeyW: true, KeyA: true, KeyS: true, KeyD: true, KeyQ: true, KeyE: true, KeyR: true, KeyT: true,
	KeyArrowUp: true, KeyArrowDown: true, KeyArrowLeft: true, KeyArrowRight: true,
	KeyPlus: true, KeyMinus: true, KeySpace: true, KeyEscape: true,
}

// ParseKey accepts the names above in any case. "esc" and "=" are accepted as
// aliases for escape and plus.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "esc":
		k = KeyEscape
	case "=":
		k = KeyPlus
	}
	if !knownKeys[k] {
		return KeyUnknown, errors.Errorf("unknown key %q", s)
	}
	return k, nil
}
