package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"

	"trigger_wireframe/model"
)

func TestLoadAndDescribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 2 0 0\nv 0 4 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	mesh, err := load(path)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	describe(&out, path, mesh)
	if !strings.Contains(out.String(), "triangles: 1\n") {
		t.Errorf("unexpected description:\n%s", out.String())
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "missing.obj"))
	var fileErr *model.FileError
	if !errors.As(err, &fileErr) {
		t.Errorf("expected FileError, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "mesh.ply")
	os.WriteFile(path, []byte("ply\n"), 0o644)
	if _, err := load(path); err == nil {
		t.Error("ply should not be accepted")
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cube.glb", "cube.gltf"} {
		path := filepath.Join(dir, name)
		if err := export(model.NewCube(1), path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		doc, err := gltf.Open(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(doc.Meshes) != 1 || doc.Meshes[0].Name != "cube" {
			t.Errorf("%s: unexpected meshes %v", name, doc.Meshes)
		}
	}
}
