// Package config holds the viewer configuration: window, scene content, camera,
// viewport mapping and key bindings. Files are YAML and are laid over Default().
package config

import (
	"bytes"
	"image/color"
	"io"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"trigger_wireframe/display"
	vm "trigger_wireframe/vector_math"
)

// Binding actions.
const (
	ACTION_SHIFT  = "shift"  // move the camera by Amount along Axis
	ACTION_FOV    = "fov"    // change the field of view by Amount degrees
	ACTION_SPIN   = "spin"   // change the mesh spin around Axis by Amount rad/s
	ACTION_RESET  = "reset"  // restore camera and mesh
	ACTION_TARGET = "target" // toggle between looking down +Z and looking at the mesh
	ACTION_QUIT   = "quit"
)

// BACKENDS lists the display backends main links in. The config package does not
// import them, so the names are repeated here.
var BACKENDS = []string{"sdl2", "ebiten", "terminal"}

type Config struct {
	Window   Window    `yaml:"window"`
	Scene    Scene     `yaml:"scene"`
	Camera   Camera    `yaml:"camera"`
	Viewport Viewport  `yaml:"viewport"`
	Bindings []Binding `yaml:"bindings"`
}

type Window struct {
	display.Settings `yaml:",inline"`
	Backend          string `yaml:"backend"`
	Background       string `yaml:"background"`
}

type Scene struct {
	// Mesh is "cube", "grid" or a path to an .obj or .stl file.
	Mesh     string     `yaml:"mesh"`
	Size     float64    `yaml:"size"`
	Position [3]float64 `yaml:"position"`
	// Spin is the rotation speed around x, y and z in radians per second.
	Spin  [3]float64 `yaml:"spin"`
	Color string     `yaml:"color"`
}

type Camera struct {
	Position [3]float64  `yaml:"position"`
	Fov      float64     `yaml:"fov"`
	Near     float64     `yaml:"near"`
	Far      float64     `yaml:"far"`
	Target   *[3]float64 `yaml:"target,omitempty"`
}

// Viewport maps clip space to the canvas. A zero scale is derived from the canvas size
// each frame: x and y in [-1, 1] cover the whole canvas, +y pointing up.
type Viewport struct {
	Scale  [2]float64 `yaml:"scale"`
	Offset [2]float64 `yaml:"offset"`
}

type Binding struct {
	Key    string  `yaml:"key"`
	Action string  `yaml:"action"`
	Axis   string  `yaml:"axis,omitempty"`
	Amount float64 `yaml:"amount,omitempty"`
}

// Default reproduces the spinning cube demo.
func Default() *Config {
	settings := display.DefaultSettings()
	settings.Name = "trigger wireframe"
	settings.Width, settings.Height = 1000, 1000
	settings.FPS = 144
	return &Config{
		Window: Window{
			Settings:   settings,
			Backend:    "sdl2",
			Background: "#000000",
		},
		Scene: Scene{
			Mesh:     "cube",
			Size:     1,
			Position: [3]float64{0, 0, 3},
			Spin:     [3]float64{0, 0.5, 0},
			Color:    "#ff0000",
		},
		Camera: Camera{
			Fov:  90,
			Near: 0.1,
			Far:  1000,
		},
		Bindings: []Binding{
			{Key: "w", Action: ACTION_SHIFT, Axis: "z", Amount: 0.1},
			{Key: "s", Action: ACTION_SHIFT, Axis: "z", Amount: -0.1},
			{Key: "a", Action: ACTION_SHIFT, Axis: "x", Amount: -0.1},
			{Key: "d", Action: ACTION_SHIFT, Axis: "x", Amount: 0.1},
			{Key: "e", Action: ACTION_SHIFT, Axis: "y", Amount: 0.1},
			{Key: "q", Action: ACTION_SHIFT, Axis: "y", Amount: -0.1},
			{Key: "up", Action: ACTION_SPIN, Axis: "x", Amount: 0.1},
			{Key: "down", Action: ACTION_SPIN, Axis: "x", Amount: -0.1},
			{Key: "left", Action: ACTION_SPIN, Axis: "y", Amount: 0.1},
			{Key: "right", Action: ACTION_SPIN, Axis: "y", Amount: -0.1},
			{Key: "+", Action: ACTION_FOV, Amount: -5},
			{Key: "-", Action: ACTION_FOV, Amount: 5},
			{Key: "r", Action: ACTION_RESET},
			{Key: "t", Action: ACTION_TARGET},
			{Key: "escape", Action: ACTION_QUIT},
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	log.Printf("Reading config file %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to unmarshal yaml")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "failed to marshal yaml")
	}
	return errors.Wrap(enc.Close(), "failed to close yaml encoder")
}

func (c *Config) String() string {
	var b bytes.Buffer
	if err := c.Encode(&b); err != nil {
		return err.Error()
	}
	return b.String()
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if !slices.Contains(BACKENDS, c.Window.Backend) {
		return errors.Errorf("unknown backend %q, expected one of %v", c.Window.Backend, BACKENDS)
	}
	if c.Window.FPS < 0 {
		return errors.Errorf("fps must not be negative, got %f", c.Window.FPS)
	}
	if _, err := ParseColor(c.Window.Background); err != nil {
		return errors.Wrap(err, "window background")
	}
	if _, err := ParseColor(c.Scene.Color); err != nil {
		return errors.Wrap(err, "scene color")
	}
	if c.Scene.Mesh == "" {
		return errors.New("scene mesh must be set")
	}
	if c.Scene.Size <= 0 {
		return errors.Errorf("scene size must be positive, got %f", c.Scene.Size)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return errors.Errorf("camera fov must be inside (0, 180) degrees, got %f", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return errors.Errorf("camera needs 0 < near < far, got near %f far %f", c.Camera.Near, c.Camera.Far)
	}
	for i, b := range c.Bindings {
		if err := b.Validate(); err != nil {
			return errors.Wrapf(err, "binding %d", i)
		}
	}
	return nil
}

func (b Binding) Validate() error {
	if _, err := display.ParseKey(b.Key); err != nil {
		return err
	}
	switch b.Action {
	case ACTION_SHIFT, ACTION_SPIN:
		if _, err := vm.ParseAxis(b.Axis); err != nil {
			return errors.Wrapf(err, "action %s", b.Action)
		}
	case ACTION_FOV, ACTION_RESET, ACTION_TARGET, ACTION_QUIT:
	default:
		return errors.Errorf("unknown action %q", b.Action)
	}
	return nil
}

// ParseColor accepts "#rrggbb" and "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, errors.Errorf("invalid color %q, expected #rrggbb", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// DisplaySettings resolves the window section for a display backend.
func (c *Config) DisplaySettings() display.Settings {
	s := c.Window.Settings
	s.Background, _ = ParseColor(c.Window.Background)
	return s
}
