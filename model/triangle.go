package model

import vm "trigger_wireframe/vector_math"

// Triangle is one face of a mesh. The vertex order decides the edge order when drawn:
// (0,1), (1,2), (2,0).
type Triangle [3]vm.Vertex

func NewTriangle(coords [3][3]float64) Triangle {
	return Triangle{
		vm.NewVertex(coords[0]),
		vm.NewVertex(coords[1]),
		vm.NewVertex(coords[2]),
	}
}

// ApplyVec transforms every vertex with m.VecMul, perspective divide included.
func (t *Triangle) ApplyVec(m vm.Mat4) {
	for i := range t {
		t[i].Apply(m)
	}
}

// Apply promotes each vertex to a diagonal matrix, composes it with m and reads the
// diagonal back. Only m's diagonal contributes, so this is a per-axis scale without a
// perspective divide. Use ApplyVec for anything that rotates, translates or projects.
func (t *Triangle) Apply(m vm.Mat4) {
	for i := range t {
		t[i] = m.Mul(vm.FromVertex(t[i])).ToVertex()
	}
}

// ScaleMul multiplies one coordinate of every vertex by factor.
func (t *Triangle) ScaleMul(factor float64, axis vm.Axis) {
	for i := range t {
		t[i].SetAxis(axis, t[i].Axis(axis)*factor)
	}
}

// ScaleAdd adds factor to one coordinate of every vertex.
func (t *Triangle) ScaleAdd(factor float64, axis vm.Axis) {
	for i := range t {
		t[i].SetAxis(axis, t[i].Axis(axis)+factor)
	}
}

func (t Triangle) AsVertices() [3]vm.Vertex {
	return t
}

// Edges returns the three line segments of the wireframe in drawing order.
func (t Triangle) Edges() [3][2]vm.Vertex {
	return [3][2]vm.Vertex{
		{t[0], t[1]},
		{t[1], t[2]},
		{t[2], t[0]},
	}
}
