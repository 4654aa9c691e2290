package vector_math

import "math"

// Vec2 is a point on the screen after projection and viewport mapping.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{
		X: v.X - w.X,
		Y: v.Y - w.Y,
	}
}

func (v Vec2) Len() float64 {
	return math.Sqrt((v.X * v.X) + (v.Y * v.Y))
}

// Finite reports whether both coordinates can be mapped to a pixel.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// XY drops the depth of a projected vertex.
func (v Vertex) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}
