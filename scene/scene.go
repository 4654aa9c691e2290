// Package scene owns the state a frame works on: the world space mesh, the camera and
// the key bindings that mutate them. A display backend drives it through Frame.
package scene

import (
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"trigger_wireframe/config"
	"trigger_wireframe/display"
	"trigger_wireframe/model"
	"trigger_wireframe/stl"
	vm "trigger_wireframe/vector_math"
)

const GRID_CELLS = 10

type binding struct {
	action string
	axis   vm.Axis
	amount float64
}

// State is updated once per frame. Mesh stays in object space and is only rotated by
// Spin; Position, the camera and the viewport are applied to a copy in Project.
type State struct {
	Mesh     *model.Mesh
	Camera   *model.Camera
	Position vm.Vertex
	// Spin is in radians per second around x, y and z.
	Spin     vm.Vertex
	Viewport config.Viewport
	Color    color.RGBA

	bindings map[display.Key][]binding
	initial  snapshot
}

type snapshot struct {
	mesh   *model.Mesh
	camera model.Camera
	spin   vm.Vertex
}

func NewState(cfg *config.Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	mesh, err := LoadMesh(cfg.Scene.Mesh, cfg.Scene.Size)
	if err != nil {
		return nil, err
	}
	// spin around the mesh's own center, not the file's origin
	center := mesh.Center()
	mesh.ApplyVec(vm.NewTranslation(-center.X, -center.Y, -center.Z))

	cam := model.NewCamera(cfg.Camera.Position, cfg.Camera.Fov)
	cam.Near, cam.Far = cfg.Camera.Near, cfg.Camera.Far
	if cfg.Camera.Target != nil {
		cam.SetTarget(vm.NewVertex(*cfg.Camera.Target))
	}
	col, err := config.ParseColor(cfg.Scene.Color)
	if err != nil {
		return nil, err
	}

	s := &State{
		Mesh:     mesh,
		Camera:   cam,
		Position: vm.NewVertex(cfg.Scene.Position),
		Spin:     vm.NewVertex(cfg.Scene.Spin),
		Viewport: cfg.Viewport,
		Color:    col,
		bindings: map[display.Key][]binding{},
	}
	for _, b := range cfg.Bindings {
		if err := s.Bind(b); err != nil {
			return nil, err
		}
	}
	s.initial = snapshot{mesh: mesh.Clone(), camera: *cam, spin: s.Spin}
	return s, nil
}

// Bind adds a key binding. A key can carry several bindings, they run in the order
// they were added.
func (s *State) Bind(b config.Binding) error {
	if err := b.Validate(); err != nil {
		return err
	}
	key, _ := display.ParseKey(b.Key)
	nb := binding{action: b.Action, amount: b.Amount}
	if b.Axis != "" {
		nb.axis, _ = vm.ParseAxis(b.Axis)
	}
	s.bindings[key] = append(s.bindings[key], nb)
	return nil
}

// LoadMesh resolves a scene mesh: "cube" and "grid" are built in and sized by size,
// anything else is a path to an .obj or binary .stl file.
func LoadMesh(name string, size float64) (*model.Mesh, error) {
	switch name {
	case "cube":
		return model.NewCube(size), nil
	case "grid":
		return model.NewGridPlane(size, GRID_CELLS), nil
	}

	var mesh *model.Mesh
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".obj":
		mesh, err = model.LoadObj(name)
	case ".stl":
		mesh, err = stl.ReadStlFile(name)
	default:
		return nil, errors.Errorf("unknown mesh %q, expected cube, grid, *.obj or *.stl", name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load mesh")
	}
	return mesh, nil
}

// Update consumes the events of one frame in order and advances the spin by dt
// seconds. It reports whether the user asked to quit; the remaining events are dropped
// in that case.
func (s *State) Update(events []display.Event, dt float64) bool {
	for _, e := range events {
		switch e.Kind {
		case display.Quit:
			return true
		case display.KeyDown:
			for _, b := range s.bindings[e.Key] {
				if s.apply(b) {
					return true
				}
			}
		}
	}
	if s.Spin != (vm.Vertex{}) {
		s.Mesh.ApplyVec(vm.NewRotXYZ(s.Spin.X*dt, s.Spin.Y*dt, s.Spin.Z*dt))
	}
	return false
}

func (s *State) apply(b binding) (quit bool) {
	switch b.action {
	case config.ACTION_SHIFT:
		s.Camera.Shift(b.amount, b.axis)
	case config.ACTION_FOV:
		s.Camera.ZoomFov(b.amount)
	case config.ACTION_SPIN:
		s.Spin.SetAxis(b.axis, s.Spin.Axis(b.axis)+b.amount)
		log.Printf("Spin around %s is now %.1f deg/s", b.axis, vm.ToDeg(s.Spin.Axis(b.axis)))
	case config.ACTION_RESET:
		s.Reset()
	case config.ACTION_TARGET:
		s.ToggleTarget()
	case config.ACTION_QUIT:
		return true
	}
	return false
}

// Reset restores mesh, camera and spin to what NewState built.
func (s *State) Reset() {
	log.Printf("Resetting scene")
	s.Mesh = s.initial.mesh.Clone()
	cam := s.initial.camera
	s.Camera = &cam
	s.Spin = s.initial.spin
}

// ToggleTarget switches the camera between looking down +Z and following the mesh
// position.
func (s *State) ToggleTarget() {
	if s.Camera.LookTarget != nil {
		log.Printf("Camera looks down +Z")
		s.Camera.ClearTarget()
		return
	}
	log.Printf("Camera looks at %s", s.Position)
	s.Camera.SetTarget(s.Position)
}

// Project returns a copy of the mesh in screen space for a w x h canvas. The world
// space mesh is left untouched.
func (s *State) Project(w, h int) *model.Mesh {
	if w <= 0 || h <= 0 {
		return model.NewMesh(nil)
	}
	out := s.Mesh.Clone()
	aspect := float64(h) / float64(w)
	out.ApplyVec(s.Camera.GetViewProjection(aspect).Mul(vm.NewTranslationV(s.Position)))

	scale, offset := s.viewport(w, h)
	out.ScaleMul(scale.X, vm.AxisX)
	out.ScaleMul(scale.Y, vm.AxisY)
	out.ScaleAdd(offset.X, vm.AxisX)
	out.ScaleAdd(offset.Y, vm.AxisY)
	return out
}

// viewport falls back to mapping [-1, 1] onto the whole canvas with +y up.
func (s *State) viewport(w, h int) (scale, offset vm.Vec2) {
	if s.Viewport.Scale != ([2]float64{}) {
		return vm.Vec2{X: s.Viewport.Scale[0], Y: s.Viewport.Scale[1]},
			vm.Vec2{X: s.Viewport.Offset[0], Y: s.Viewport.Offset[1]}
	}
	hw, hh := float64(w)/2, float64(h)/2
	return vm.Vec2{X: hw, Y: -hh}, vm.Vec2{X: hw, Y: hh}
}

// Render projects the mesh for c and draws three edges per triangle.
func (s *State) Render(c display.Canvas) error {
	c.SetDrawColor(s.Color)
	for _, t := range s.Project(c.Size()).Triangles {
		for _, e := range t.Edges() {
			if err := c.DrawLine(e[0].XY(), e[1].XY()); err != nil {
				return errors.Wrap(err, "failed to draw edge")
			}
		}
	}
	return nil
}

// Frame is the display.FrameFunc of the viewer.
func (s *State) Frame(c display.Canvas, events []display.Event, dt float64) error {
	if s.Update(events, dt) {
		return display.ErrQuit
	}
	return s.Render(c)
}
