// objinfo prints what the viewer would load from a mesh file and can convert it to glTF.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/schollz/progressbar/v3"

	"trigger_wireframe/model"
	"trigger_wireframe/stl"
)

func main() {
	var dump bool
	var gltfPath string
	flag.BoolVar(&dump, "dump", false, "Dump every triangle")
	flag.StringVar(&gltfPath, "gltf", "", "Export the mesh to this .gltf or .glb file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-dump] [-gltf out.glb] mesh.obj|mesh.stl\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	mesh, err := load(path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}
	describe(os.Stdout, path, mesh)

	if dump {
		cfg := spew.NewDefaultConfig()
		cfg.DisableCapacities = true
		cfg.Fdump(os.Stdout, mesh.Triangles)
	}

	if gltfPath != "" {
		if err := export(mesh, gltfPath); err != nil {
			log.Fatalf("Failed to export %s: %v", gltfPath, err)
		}
		log.Printf("Wrote %s", gltfPath)
	}
}

// load reads the file through a progress bar; large OBJ files take a while.
func load(path string) (*model.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(&model.FileError{Path: path, Err: err}, "failed to open mesh")
	}
	defer f.Close()

	size := int64(-1)
	if st, err := f.Stat(); err == nil {
		size = st.Size()
	}
	bar := progressbar.DefaultBytes(size, "reading")
	defer bar.Close()
	r := io.TeeReader(f, bar)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return model.ReadObj(r)
	case ".stl":
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stl")
		}
		return stl.ReadStl(b)
	}
	return nil, errors.Errorf("unsupported mesh format %q", filepath.Ext(path))
}

func describe(w io.Writer, path string, mesh *model.Mesh) {
	lo, hi := mesh.Bounds()
	fmt.Fprintf(w, "file:      %s\n", path)
	fmt.Fprintf(w, "triangles: %d\n", mesh.Len())
	fmt.Fprintf(w, "bounds:    %s .. %s\n", lo, hi)
	fmt.Fprintf(w, "size:      %s\n", hi.Sub(lo))
	fmt.Fprintf(w, "center:    %s\n", mesh.Center())
}

func export(mesh *model.Mesh, path string) error {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc := mesh.ExportGLTF(name)
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		return errors.Wrap(gltf.SaveBinary(doc, path), "failed to save glb")
	}
	if len(doc.Buffers) > 0 {
		doc.Buffers[0].EmbeddedResource()
	}
	return errors.Wrap(gltf.Save(doc, path), "failed to save gltf")
}
