// Package display is the boundary between the wireframe pipeline and whatever owns a
// window, an input queue and the frame clock. Backends live in sub packages and
// register themselves by name.
package display

import (
	"image/color"
	"math"
	"sort"
	"sync"

	"github.com/pkg/errors"

	vm "trigger_wireframe/vector_math"
)

// ErrQuit ends Run without reporting an error. Frame functions return it when the
// user asked to leave, backends return it for window close events.
var ErrQuit = errors.New("quit")

var (
	BLACK = color.RGBA{A: 0xff}
	WHITE = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	RED   = color.RGBA{R: 0xff, A: 0xff}
)

// Settings configures a backend before its frame loop starts.
type Settings struct {
	Name   string  `yaml:"name"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FPS    float64 `yaml:"fps"`
	VSync  bool    `yaml:"vsync"`

	Background color.RGBA `yaml:"-"`
}

func DefaultSettings() Settings {
	return Settings{
		Name:       "SDL2Display",
		Width:      400,
		Height:     400,
		FPS:        60,
		VSync:      false,
		Background: BLACK,
	}
}

// FrameIntervalMs is the pause in milliseconds between two frames for the configured rate.
func (s Settings) FrameIntervalMs() uint32 {
	if s.FPS <= 0 {
		return 0
	}
	return uint32(1000 / s.FPS)
}

// Canvas is what a frame draws on. Line rasterization is the backend's job.
type Canvas interface {
	SetDrawColor(c color.RGBA)
	DrawLine(a, b vm.Vec2) error
	// Size reports the drawable area in the backend's pixel (or cell) units.
	Size() (int, int)
}

type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	Quit
)

type Event struct {
	Kind EventKind
	Key  Key
}

// FrameFunc is called once per frame with the events collected since the previous
// frame, in arrival order, and the seconds elapsed since the previous frame started.
type FrameFunc func(c Canvas, events []Event, dt float64) error

// Engine is a display backend: Setup creates and configures the window, Run drives the
// frame loop until the frame function fails or returns ErrQuit, Close releases it.
type Engine interface {
	Setup(s Settings) error
	Run(frame FrameFunc) error
	Close() error
}

var (
	registryMu sync.Mutex
	registry   = map[string]func() Engine{}
)

// Register makes a backend available to New. It panics on duplicate names.
func Register(name string, factory func() Engine) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		panic("display: backend registered twice: " + name)
	}
	registry[name] = factory
}

func New(name string) (Engine, error) {
	registryMu.Lock()
	factory, ok := registry[name]
	registryMu.Unlock()
	if !ok {
		return nil, errors.Errorf("unknown display backend %q, available: %v", name, Backends())
	}
	return factory(), nil
}

func Backends() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsQuit reports whether err (or anything it wraps) is ErrQuit.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}

// pixelLimit keeps projected coordinates inside int32 range; points projected near
// w == 0 can be arbitrarily far away.
const pixelLimit = 1 << 24

// ToPixel rounds a screen point to integer coordinates. ok is false for points that
// are not finite and cannot be drawn at all.
func ToPixel(v vm.Vec2) (x, y int32, ok bool) {
	if !v.Finite() {
		return 0, 0, false
	}
	clamp := func(f float64) int32 {
		return int32(math.Max(-pixelLimit, math.Min(pixelLimit, math.Round(f))))
	}
	return clamp(v.X), clamp(v.Y), true
}
