// Package sdldisplay draws wireframes into an SDL2 window.
package sdldisplay

import (
	"fmt"
	"image/color"
	"log"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"trigger_wireframe/display"
	vm "trigger_wireframe/vector_math"
)

const NAME = "sdl2"

const SDL_MAJOR, SDL_MINOR, SDL_PATCH = int(sdl.MAJOR_VERSION), int(sdl.MINOR_VERSION), int(sdl.PATCHLEVEL)

func init() {
	// SDL wants all video calls on the main thread
	runtime.LockOSThread()
	display.Register(NAME, func() display.Engine { return &Display{} })
}

// Display owns the SDL window and its renderer. On tear down we need to destroy the
// renderer, the window and finally SDL itself.
type Display struct {
	sdlVersion string
	settings   display.Settings

	Win      *sdl.Window
	Renderer *sdl.Renderer
}

func (d *Display) Setup(s display.Settings) error {
	d.settings = s
	d.sdlVersion = fmt.Sprintf("v%d.%d.%d", SDL_MAJOR, SDL_MINOR, SDL_PATCH)
	if err := d.initSDLWindow(s.Name, int32(s.Width), int32(s.Height)); err != nil {
		return err
	}
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if s.VSync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	r, err := sdl.CreateRenderer(d.Win, -1, flags)
	if err != nil {
		return errors.Wrap(err, "failed to create SDL renderer")
	}
	d.Renderer = r
	log.Printf("Generated SDL window - SDL: %s, VSync: %v, FPS: %.1f", d.sdlVersion, s.VSync, s.FPS)
	return nil
}

func (d *Display) initSDLWindow(title string, width int32, height int32) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "failed to initialize SDL")
	}
	log.Println("Initialized SDL")
	win, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		width,
		height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return errors.Wrap(err, "failed to create SDL window")
	}
	log.Printf("Created SDL window. Title: \"%s\", Width: %d, Height: %d", title, width, height)
	d.Win = win
	return nil
}

// Run clears the window, hands the collected events to frame, presents and then waits
// 1000/fps milliseconds. dt is measured over the whole iteration, waiting included.
func (d *Display) Run(frame display.FrameFunc) error {
	if d.Renderer == nil {
		return errors.New("sdl display used before Setup")
	}
	canvas := &sdlCanvas{r: d.Renderer, win: d.Win}
	delta := 1.0 / 60
	var events []display.Event
	for {
		start := time.Now()

		events = pollEvents(events[:0])

		bg := d.settings.Background
		canvas.SetDrawColor(bg)
		if err := d.Renderer.Clear(); err != nil {
			return errors.Wrap(err, "failed to clear SDL renderer")
		}
		canvas.SetDrawColor(display.WHITE)
		if err := frame(canvas, events, delta); err != nil {
			if display.IsQuit(err) {
				log.Printf("Quitting SDL frame loop")
				return nil
			}
			return err
		}
		d.Renderer.Present()

		sdl.Delay(d.settings.FrameIntervalMs())
		delta = time.Since(start).Seconds()
	}
}

func (d *Display) Close() error {
	if d.Renderer != nil {
		if err := d.Renderer.Destroy(); err != nil {
			return errors.Wrap(err, "failed to destroy SDL renderer")
		}
		d.Renderer = nil
	}
	if d.Win != nil {
		if err := d.Win.Destroy(); err != nil {
			return errors.Wrap(err, "failed to destroy SDL window")
		}
		d.Win = nil
	}
	sdl.Quit()
	return nil
}

func pollEvents(events []display.Event) []display.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, display.Event{Kind: display.Quit})
		case *sdl.KeyboardEvent:
			key, ok := keymap[ev.Keysym.Sym]
			if !ok {
				continue
			}
			kind := display.KeyDown
			if ev.Type == sdl.KEYUP {
				kind = display.KeyUp
			}
			events = append(events, display.Event{Kind: kind, Key: key})
		}
	}
	return events
}

var keymap = map[sdl.Keycode]display.Key{
	sdl.K_w:        display.KeyW,
	sdl.K_a:        display.KeyA,
	sdl.K_s:        display.KeyS,
	sdl.K_d:        display.KeyD,
	sdl.K_q:        display.KeyQ,
	sdl.K_e:        display.KeyE,
	sdl.K_r:        display.KeyR,
	sdl.K_t:        display.KeyT,
	sdl.K_UP:       display.KeyArrowUp,
	sdl.K_DOWN:     display.KeyArrowDown,
	sdl.K_LEFT:     display.KeyArrowLeft,
	sdl.K_RIGHT:    display.KeyArrowRight,
	sdl.K_PLUS:     display.KeyPlus,
	sdl.K_EQUALS:   display.KeyPlus,
	sdl.K_KP_PLUS:  display.KeyPlus,
	sdl.K_MINUS:    display.KeyMinus,
	sdl.K_KP_MINUS: display.KeyMinus,
	sdl.K_SPACE:    display.KeySpace,
	sdl.K_ESCAPE:   display.KeyEscape,
}

type sdlCanvas struct {
	r   *sdl.Renderer
	win *sdl.Window
}

func (c *sdlCanvas) SetDrawColor(col color.RGBA) {
	if err := c.r.SetDrawColor(col.R, col.G, col.B, col.A); err != nil {
		log.Printf("Failed to set SDL draw color: %v", err)
	}
}

// DrawLine skips segments with an endpoint that cannot be mapped to a pixel.
func (c *sdlCanvas) DrawLine(a, b vm.Vec2) error {
	x1, y1, ok1 := display.ToPixel(a)
	x2, y2, ok2 := display.ToPixel(b)
	if !ok1 || !ok2 {
		return nil
	}
	return c.r.DrawLine(x1, y1, x2, y2)
}

func (c *sdlCanvas) Size() (int, int) {
	w, h := c.win.GetSize()
	return int(w), int(h)
}
