package model

// NewCube builds an axis aligned cube of edge length size centered on the origin. The
// 12 triangles come in face pairs: front (-z), east (+x), back (+z), west (-x),
// north (+y) and south (-y).
func NewCube(size float64) *Mesh {
	l, h := -size/2, size/2

	t := [][3][3]float64{
		// front
		{{l, l, l}, {l, h, l}, {h, h, l}},
		{{l, l, l}, {h, h, l}, {h, l, l}},
		// east
		{{h, l, l}, {h, h, l}, {h, h, h}},
		{{h, l, l}, {h, h, h}, {h, l, h}},
		// back
		{{h, l, h}, {h, h, h}, {l, h, h}},
		{{h, l, h}, {l, h, h}, {l, l, h}},
		// west
		{{l, l, h}, {l, h, h}, {l, h, l}},
		{{l, l, h}, {l, h, l}, {l, l, l}},
		// north
		{{l, h, l}, {l, h, h}, {h, h, h}},
		{{l, h, l}, {h, h, h}, {h, h, l}},
		// south
		{{l, l, l}, {l, l, h}, {h, l, h}},
		{{l, l, l}, {h, l, h}, {h, l, l}},
	}

	triangles := make([]Triangle, len(t))
	for i, c := range t {
		triangles[i] = NewTriangle(c)
	}
	return NewMesh(triangles)
}
