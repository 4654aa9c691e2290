package vector_math

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Axis selects one coordinate of a Vertex.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis maps "x", "y" or "z" (case-insensitive) to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, errors.Errorf("unknown axis %q, expected one of x, y, z", s)
}

// Vertex is a point in 3D space. It is a plain value, copying it copies the point.
type Vertex struct {
	X, Y, Z float64
}

func NewVertex(c [3]float64) Vertex {
	return Vertex{X: c[0], Y: c[1], Z: c[2]}
}

// Scale adds amount to all three coordinates. Despite the name this is a uniform
// offset, not a multiplication; use Mat4 or ScalarMul for multiplicative scaling.
func (v *Vertex) Scale(amount float64) {
	v.X += amount
	v.Y += amount
	v.Z += amount
}

// Apply transforms the vertex in place, see Mat4.VecMul.
func (v *Vertex) Apply(m Mat4) {
	*v = m.VecMul(*v)
}

func (v Vertex) Axis(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func (v *Vertex) SetAxis(a Axis, f float64) {
	switch a {
	case AxisX:
		v.X = f
	case AxisY:
		v.Y = f
	default:
		v.Z = f
	}
}

func (v Vertex) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (v Vertex) Cross(w Vertex) Vertex {
	return Vertex{
		X: (v.Y * w.Z) - (v.Z * w.Y),
		Y: (v.Z * w.X) - (v.X * w.Z),
		Z: (v.X * w.Y) - (v.Y * w.X),
	}
}

func (v Vertex) Dot(w Vertex) float64 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z)
}

func (v Vertex) Sub(w Vertex) Vertex {
	return Vertex{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

func (v Vertex) Add(w Vertex) Vertex {
	return Vertex{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
	}
}

func (v Vertex) ScalarMul(factor float64) Vertex {
	return Vertex{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

func (v Vertex) Len() float64 {
	return math.Sqrt((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z))
}

// Norm returns the unit vector of v. The zero vector has no direction and is returned as is.
func (v Vertex) Norm() Vertex {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vertex{
		X: v.X / l,
		Y: v.Y / l,
		Z: v.Z / l,
	}
}

// ApproxEquals compares coordinate-wise with an absolute tolerance.
func (v Vertex) ApproxEquals(w Vertex, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps && math.Abs(v.Z-w.Z) <= eps
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
