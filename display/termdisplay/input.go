package termdisplay

import "trigger_wireframe/display"

const (
	ctrlC = 0x03
	esc   = 0x1b
)

var byteKeys = map[byte]display.Key{
	'w': display.KeyW, 'W': display.KeyW,
	'a': display.KeyA, 'A': display.KeyA,
	's': display.KeyS, 'S': display.KeyS,
	'd': display.KeyD, 'D': display.KeyD,
	'q': display.KeyQ, 'Q': display.KeyQ,
	'e': display.KeyE, 'E': display.KeyE,
	'r': display.KeyR, 'R': display.KeyR,
	't': display.KeyT, 'T': display.KeyT,
	'+': display.KeyPlus, '=': display.KeyPlus,
	'-': display.KeyMinus,
	' ': display.KeySpace,
}

var arrowKeys = map[byte]display.Key{
	'A': display.KeyArrowUp,
	'B': display.KeyArrowDown,
	'C': display.KeyArrowRight,
	'D': display.KeyArrowLeft,
}

// parseInput turns raw terminal bytes into key events. A terminal in raw mode only
// reports presses, so there are no KeyUp events. Ctrl-C is reported as Quit.
func parseInput(b []byte, events []display.Event) []display.Event {
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == ctrlC:
			events = append(events, display.Event{Kind: display.Quit})
		case c == esc && i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O'):
			if key, ok := arrowKeys[b[i+2]]; ok {
				events = append(events, display.Event{Kind: display.KeyDown, Key: key})
			}
			i += 2
		case c == esc:
			events = append(events, display.Event{Kind: display.KeyDown, Key: display.KeyEscape})
		default:
			if key, ok := byteKeys[c]; ok {
				events = append(events, display.Event{Kind: display.KeyDown, Key: key})
			}
		}
	}
	return events
}
