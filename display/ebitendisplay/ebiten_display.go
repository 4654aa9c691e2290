// Package ebitendisplay runs the frame loop inside an ebiten game window.
package ebitendisplay

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"trigger_wireframe/display"
	vm "trigger_wireframe/vector_math"
)

const NAME = "ebiten"

// Held keys repeat like a keyboard would: once on press, then every repeatEvery ticks
// after repeatDelay ticks.
const (
	repeatDelay = 30
	repeatEvery = 4
)

func init() {
	display.Register(NAME, func() display.Engine { return &Display{} })
}

type Display struct {
	settings display.Settings
	ready    bool
}

func (d *Display) Setup(s display.Settings) error {
	d.settings = s
	ebiten.SetWindowTitle(s.Name)
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(s.VSync)
	if s.FPS > 0 {
		ebiten.SetTPS(int(s.FPS))
	}
	d.ready = true
	log.Printf("Configured ebiten window. Title: \"%s\", Width: %d, Height: %d, TPS: %d", s.Name, s.Width, s.Height, ebiten.TPS())
	return nil
}

// Run blocks until the window closes or the frame function stops the loop.
func (d *Display) Run(frame display.FrameFunc) error {
	if !d.ready {
		return errors.New("ebiten display used before Setup")
	}
	g := &game{settings: d.settings, frame: frame, clock: display.NewClock()}
	err := ebiten.RunGame(g)
	if err == nil || errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (d *Display) Close() error {
	d.ready = false
	return nil
}

type game struct {
	settings display.Settings
	frame    display.FrameFunc

	width, height int
	pending       []display.Event
	keys          []ebiten.Key
	clock         *display.Clock
	err           error
}

func (g *game) Update() error {
	if g.err != nil {
		if display.IsQuit(g.err) {
			log.Printf("Quitting ebiten frame loop")
			return ebiten.Termination
		}
		return g.err
	}
	g.pending = g.collect(g.pending)
	return nil
}

func (g *game) collect(events []display.Event) []display.Event {
	g.keys = inpututil.AppendPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		key, ok := keymap[k]
		if !ok {
			continue
		}
		d := inpututil.KeyPressDuration(k)
		if d == 1 || (d >= repeatDelay && d%repeatEvery == 0) {
			events = append(events, display.Event{Kind: display.KeyDown, Key: key})
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keymap[k]; ok {
			events = append(events, display.Event{Kind: display.KeyUp, Key: key})
		}
	}
	return events
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	screen.Fill(g.settings.Background)
	c := &ebitenCanvas{dst: screen, col: display.WHITE, w: g.width, h: g.height}
	// Draw runs once per rendered frame, which is not tied to TPS with vsync off
	g.err = g.frame(c, g.pending, g.clock.Tick(1/float64(ebiten.TPS())))
	g.pending = g.pending[:0]
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

var keymap = map[ebiten.Key]display.Key{
	ebiten.KeyW:              display.KeyW,
	ebiten.KeyA:              display.KeyA,
	ebiten.KeyS:              display.KeyS,
	ebiten.KeyD:              display.KeyD,
	ebiten.KeyQ:              display.KeyQ,
	ebiten.KeyE:              display.KeyE,
	ebiten.KeyR:              display.KeyR,
	ebiten.KeyT:              display.KeyT,
	ebiten.KeyArrowUp:        display.KeyArrowUp,
	ebiten.KeyArrowDown:      display.KeyArrowDown,
	ebiten.KeyArrowLeft:      display.KeyArrowLeft,
	ebiten.KeyArrowRight:     display.KeyArrowRight,
	ebiten.KeyEqual:          display.KeyPlus,
	ebiten.KeyNumpadAdd:      display.KeyPlus,
	ebiten.KeyMinus:          display.KeyMinus,
	ebiten.KeyNumpadSubtract: display.KeyMinus,
	ebiten.KeySpace:          display.KeySpace,
	ebiten.KeyEscape:         display.KeyEscape,
}

type ebitenCanvas struct {
	dst  *ebiten.Image
	col  color.RGBA
	w, h int
}

func (c *ebitenCanvas) SetDrawColor(col color.RGBA) {
	c.col = col
}

func (c *ebitenCanvas) DrawLine(a, b vm.Vec2) error {
	x1, y1, ok1 := display.ToPixel(a)
	x2, y2, ok2 := display.ToPixel(b)
	if !ok1 || !ok2 {
		return nil
	}
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, c.col, false)
	return nil
}

func (c *ebitenCanvas) Size() (int, int) {
	return c.w, c.h
}
