package model

// NewGridPlane builds a flat grid of cells*cells squares on the XZ plane (y = 0),
// size units wide and centered on the origin. Each square is split into two triangles.
func NewGridPlane(size float64, cells int) *Mesh {
	if cells < 1 {
		cells = 1
	}
	step := size / float64(cells)
	start := -size / 2

	triangles := make([]Triangle, 0, cells*cells*2)
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			x0, z0 := start+float64(i)*step, start+float64(j)*step
			x1, z1 := x0+step, z0+step
			triangles = append(triangles,
				NewTriangle([3][3]float64{{x0, 0, z0}, {x0, 0, z1}, {x1, 0, z1}}),
				NewTriangle([3][3]float64{{x1, 0, z1}, {x1, 0, z0}, {x0, 0, z0}}),
			)
		}
	}
	return NewMesh(triangles)
}
