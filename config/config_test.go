package config

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	c, err := Decode(strings.NewReader(`
window:
  backend: terminal
  fps: 30
camera:
  fov: 60
  target: [0, 0, 3]
bindings:
  - {key: esc, action: quit}
`))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if c.Window.Backend != "terminal" || c.Window.FPS != 30 {
		t.Errorf("window not decoded: %+v", c.Window)
	}
	if c.Window.Width != def.Window.Width || c.Scene.Mesh != def.Scene.Mesh {
		t.Errorf("missing fields should keep their defaults: %+v %+v", c.Window, c.Scene)
	}
	if c.Camera.Fov != 60 || c.Camera.Near != def.Camera.Near {
		t.Errorf("camera not overlaid: %+v", c.Camera)
	}
	if c.Camera.Target == nil || *c.Camera.Target != [3]float64{0, 0, 3} {
		t.Errorf("target not decoded: %v", c.Camera.Target)
	}
	if len(c.Bindings) != 1 || c.Bindings[0].Action != ACTION_QUIT {
		t.Errorf("bindings should be replaced, got %+v", c.Bindings)
	}
}

func TestDecodeEmpty(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Errorf("empty file should give the defaults")
	}
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":   "window: {colour: red}",
		"fov too wide":    "camera: {fov: 180}",
		"fov zero":        "camera: {fov: 0}",
		"near after far":  "camera: {near: 10, far: 5}",
		"zero width":      "window: {width: 0}",
		"backend":         "window: {backend: vulkan}",
		"color":           "scene: {color: red}",
		"size":            "scene: {size: -1}",
		"action":          "bindings: [{key: w, action: jump}]",
		"axis":            "bindings: [{key: w, action: shift, axis: w}]",
		"key":             "bindings: [{key: f1, action: quit}]",
		"array too short": "scene: {position: [1, 2]}",
	}
	for name, in := range cases {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Errorf("%s: %q should not validate", name, in)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	c := Default()
	target := [3]float64{1, 2, 3}
	c.Camera.Target = &target
	back, err := Decode(strings.NewReader(c.String()))
	if err != nil {
		t.Fatalf("%v\n%s", err, c)
	}
	if !reflect.DeepEqual(c, back) {
		t.Errorf("config changed after encoding:\n%s\n---\n%s", c, back)
	}
}

func TestLoad(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "viewer.yaml")
	if err := os.WriteFile(path, []byte("scene: {mesh: ship.obj}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Scene.Mesh != "ship.obj" {
		t.Errorf("got mesh %q", c.Scene.Mesh)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}},
		{"00ff0080", color.RGBA{G: 0xff, A: 0x80}},
		{" #0a0b0c ", color.RGBA{R: 0x0a, G: 0x0b, B: 0x0c, A: 0xff}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v want %v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "#fff", "#gg0000"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("%q should fail", bad)
		}
	}
}

func TestDisplaySettings(t *testing.T) {
	c := Default()
	c.Window.Background = "#102030"
	s := c.DisplaySettings()
	if s.Background != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("background not resolved: %v", s.Background)
	}
	if s.Width != c.Window.Width || s.Name != c.Window.Name {
		t.Errorf("settings not copied: %+v", s)
	}
}
