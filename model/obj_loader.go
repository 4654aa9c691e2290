package model

import (
	"bufio"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	vm "trigger_wireframe/vector_math"
)

// LoadObj reads a Wavefront OBJ file restricted to vertex ("v") and triangular face
// ("f") records. An unreadable path yields a *FileError, a malformed record a
// *ParseError.
func LoadObj(path string) (*Mesh, error) {
	log.Printf("Reading obj file %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(&FileError{Path: path, Err: err}, "failed to load obj")
	}
	defer f.Close()

	mesh, err := ReadObj(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	log.Printf("Successfully read obj file %s, Triangle Count: %d", path, mesh.Len())
	return mesh, nil
}

// ReadObj parses OBJ text from r. Faces may only reference vertices that appear
// before them. Lines have no length limit.
func ReadObj(r io.Reader) (*Mesh, error) {
	var vertices []vm.Vertex
	var triangles []Triangle

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrap(readErr, "failed to read obj data")
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			vertices = append(vertices, v)
		case "f":
			t, err := parseFace(fields[1:], vertices)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			triangles = append(triangles, t)
		}
		if readErr == io.EOF {
			break
		}
	}
	return NewMesh(triangles), nil
}

// parseVertex accepts "x y z" and the optional homogeneous "w", which is ignored.
func parseVertex(fields []string) (vm.Vertex, error) {
	if len(fields) != 3 && len(fields) != 4 {
		return vm.Vertex{}, errors.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vm.Vertex{}, errors.Wrapf(err, "invalid coordinate %q", fields[i])
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return vm.Vertex{}, errors.Errorf("coordinate %q is not finite", fields[i])
		}
		c[i] = f
	}
	return vm.NewVertex(c), nil
}

func parseFace(fields []string, vertices []vm.Vertex) (Triangle, error) {
	var t Triangle
	if len(fields) != 3 {
		return t, errors.Errorf("face needs exactly 3 vertex indices, got %d", len(fields))
	}
	for i, field := range fields {
		idx, err := parseIndex(field, len(vertices))
		if err != nil {
			return t, err
		}
		t[i] = vertices[idx]
	}
	return t, nil
}

// parseIndex resolves a 1-based (or negative, relative) OBJ index into a 0-based
// index below count. In "v/vt/vn" forms only the vertex part is used.
func parseIndex(field string, count int) (int, error) {
	raw, _, _ := strings.Cut(field, "/")
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid vertex index %q", field)
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	default:
		return 0, errors.Errorf("vertex index %d out of range, %d vertices read so far", i, count)
	}
}
