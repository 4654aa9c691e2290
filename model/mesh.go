package model

import (
	"math"

	vm "trigger_wireframe/vector_math"
)

// Mesh owns an ordered list of triangles. Transforms work in place and never change
// the number of triangles.
type Mesh struct {
	Triangles []Triangle
}

func NewMesh(t []Triangle) *Mesh {
	return &Mesh{
		Triangles: t,
	}
}

// Clone deep-copies the mesh so display-space transforms can run without touching the
// world-space original.
func (m *Mesh) Clone() *Mesh {
	t := make([]Triangle, len(m.Triangles))
	copy(t, m.Triangles)
	return NewMesh(t)
}

func (m *Mesh) Len() int {
	return len(m.Triangles)
}

func (m *Mesh) ApplyVec(mat vm.Mat4) {
	for i := range m.Triangles {
		m.Triangles[i].ApplyVec(mat)
	}
}

func (m *Mesh) Apply(mat vm.Mat4) {
	for i := range m.Triangles {
		m.Triangles[i].Apply(mat)
	}
}

func (m *Mesh) ScaleMul(factor float64, axis vm.Axis) {
	for i := range m.Triangles {
		m.Triangles[i].ScaleMul(factor, axis)
	}
}

func (m *Mesh) ScaleAdd(factor float64, axis vm.Axis) {
	for i := range m.Triangles {
		m.Triangles[i].ScaleAdd(factor, axis)
	}
}

// AsVertices returns the vertices of every triangle, in triangle order.
func (m *Mesh) AsVertices() [][3]vm.Vertex {
	v := make([][3]vm.Vertex, len(m.Triangles))
	for i, t := range m.Triangles {
		v[i] = t.AsVertices()
	}
	return v
}

// Bounds returns the axis aligned bounding box. An empty mesh returns two zero vertices.
func (m *Mesh) Bounds() (vm.Vertex, vm.Vertex) {
	if len(m.Triangles) == 0 {
		return vm.Vertex{}, vm.Vertex{}
	}
	lo := vm.Vertex{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := vm.Vertex{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, t := range m.Triangles {
		for _, v := range t {
			lo = vm.Vertex{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = vm.Vertex{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}
	return lo, hi
}

func (m *Mesh) Center() vm.Vertex {
	lo, hi := m.Bounds()
	return lo.Add(hi).ScalarMul(0.5)
}
