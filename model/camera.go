package model

import (
	"log"
	"math"

	vm "trigger_wireframe/vector_math"
)

const (
	DEFAULT_NEAR = 0.1
	DEFAULT_FAR  = 1000.0

	// Fov is kept strictly inside (0, 180) degrees, tan(fov/2) blows up at the ends.
	MIN_FOV = 1.0
	MAX_FOV = 179.0
)

// Camera is a position plus a field of view in degrees. The input layer mutates it
// between frames.
type Camera struct {
	Pos vm.Vertex
	Fov float64

	Near float64
	Far  float64

	LookTarget *vm.Vertex
	Up         vm.Vertex

	fovWarned bool
}

func NewCamera(pos [3]float64, fov float64) *Camera {
	return &Camera{
		Pos:  vm.NewVertex(pos),
		Fov:  fov,
		Near: DEFAULT_NEAR,
		Far:  DEFAULT_FAR,
		Up:   vm.Vertex{Y: 1},
	}
}

// Shift moves the camera by amount along one axis.
func (c *Camera) Shift(amount float64, axis vm.Axis) {
	var d vm.Vertex
	d.SetAxis(axis, amount)
	c.Move(d)
}

func (c *Camera) Move(v vm.Vertex) {
	c.Pos = c.Pos.Add(v)
}

// ZoomFov changes the field of view by delta degrees, clamped to [MIN_FOV, MAX_FOV].
func (c *Camera) ZoomFov(delta float64) {
	c.Fov = math.Max(MIN_FOV, math.Min(MAX_FOV, c.Fov+delta))
}

func (c *Camera) SetTarget(v vm.Vertex) {
	c.LookTarget = &v
}

func (c *Camera) ClearTarget() {
	c.LookTarget = nil
}

func (c *Camera) GetProjection(aspect float64) vm.Mat4 {
	// warn once per excursion, this runs every frame
	bad := c.Fov <= 0 || c.Fov >= 180
	if bad && !c.fovWarned {
		log.Printf("Camera fov %f outside (0, 180), projection will be degenerate", c.Fov)
	}
	c.fovWarned = bad
	return vm.NewProjection3D(c.Fov, aspect, c.Far, c.Near)
}

// GetView moves world space into camera space. Without a target the camera keeps
// looking down +Z.
func (c *Camera) GetView() vm.Mat4 {
	if c.LookTarget != nil {
		return vm.NewLookAt(c.Pos, *c.LookTarget, c.Up)
	}
	return vm.NewTranslation(-c.Pos.X, -c.Pos.Y, -c.Pos.Z)
}

// GetViewProjection applies the view first and the projection second.
func (c *Camera) GetViewProjection(aspect float64) vm.Mat4 {
	proj := c.GetProjection(aspect)
	return proj.Mul(c.GetView())
}
