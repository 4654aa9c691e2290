package model

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	vm "trigger_wireframe/vector_math"
)

// ExportGLTF writes the mesh as a single indexed triangle primitive. Equal corners
// share one position, the triangle order is kept.
func (m *Mesh) ExportGLTF(name string) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, 0, len(m.Triangles))
	indices := make([]uint32, 0, len(m.Triangles)*3)
	seen := make(map[vm.Vertex]uint32)
	for _, t := range m.Triangles {
		for _, v := range t {
			idx, ok := seen[v]
			if !ok {
				idx = uint32(len(positions))
				seen[v] = idx
				positions = append(positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
			}
			indices = append(indices, idx)
		}
	}
	if len(positions) == 0 {
		return doc
	}

	positionAccessor := modeler.WritePosition(doc, positions)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{
			{
				Indices:    gltf.Index(indicesAccessor),
				Attributes: map[string]uint32{gltf.POSITION: positionAccessor},
				Mode:       gltf.PrimitiveTriangles,
			},
		},
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	return doc
}
