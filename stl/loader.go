package stl

import (
	"encoding/binary"
	"io"
	"log"
	"math"
	"os"

	"github.com/pkg/errors"

	"trigger_wireframe/model"
	vm "trigger_wireframe/vector_math"
)

const (
	headerSize = 80
	stride     = 50
)

// ReadStlFile loads a binary STL file. Normals and attribute bytes are dropped, only
// the triangle corners are kept.
func ReadStlFile(path string) (*model.Mesh, error) {
	log.Printf("Reading stl file %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(&model.FileError{Path: path, Err: err}, "failed to load stl")
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	mesh, err := ReadStl(b)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	log.Printf("Successfully read stl file, Header: '%s', Triangle Count: %d, Triangle memory size: %d KiB",
		trimHeader(b[:headerSize]), mesh.Len(), len(b[headerSize+4:])/1024)
	return mesh, nil
}

// ReadStl decodes an in-memory binary STL.
func ReadStl(b []byte) (*model.Mesh, error) {
	if len(b) < headerSize+4 {
		return nil, &model.ParseError{Err: errors.Errorf("stl data too short: %d bytes", len(b))}
	}
	tCnt := binary.LittleEndian.Uint32(b[headerSize : headerSize+4])
	body := b[headerSize+4:]
	if uint64(len(body)) < uint64(tCnt)*stride {
		return nil, &model.ParseError{Err: errors.Errorf(
			"stl header announces %d triangles but only %d bytes follow", tCnt, len(body))}
	}
	return toMesh(body, tCnt), nil
}

func toMesh(bytes []byte, triangleCnt uint32) *model.Mesh {
	t := make([]model.Triangle, triangleCnt)
	for i := range t {
		off := i * stride
		// bytes[off : off+12] holds the facet normal, bytes[off+48 : off+50] the attributes
		t[i] = model.Triangle{
			toVertex(bytes[off+12 : off+24]),
			toVertex(bytes[off+24 : off+36]),
			toVertex(bytes[off+36 : off+48]),
		}
	}
	return model.NewMesh(t)
}

func toVertex(bytes []byte) vm.Vertex {
	return vm.Vertex{
		X: float64(toFloat32(bytes[:4])),
		Y: float64(toFloat32(bytes[4:8])),
		Z: float64(toFloat32(bytes[8:12])),
	}
}

func toFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	float := math.Float32frombits(bits)
	return float
}

func trimHeader(h []byte) string {
	for i, c := range h {
		if c == 0 {
			return string(h[:i])
		}
	}
	return string(h)
}
