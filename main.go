package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"trigger_wireframe/config"
	"trigger_wireframe/display"
	_ "trigger_wireframe/display/ebitendisplay"
	_ "trigger_wireframe/display/sdldisplay"
	"trigger_wireframe/display/termdisplay"
	"trigger_wireframe/scene"
)

const PROGRAM_NAME = "trigger wireframe"

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

func main() {
	var configPath, mesh, backend string
	var printConfig bool
	flag.StringVar(&configPath, "config", "", "Path to a yaml config, defaults are used when empty")
	flag.StringVar(&mesh, "mesh", "", "Mesh override: cube, grid, *.obj or *.stl")
	flag.StringVar(&backend, "backend", "", fmt.Sprintf("Display backend override, one of %v", display.Backends()))
	flag.BoolVar(&printConfig, "print-config", false, "Print the resolved config and exit")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if mesh != "" {
		cfg.Scene.Mesh = mesh
	}
	if backend != "" {
		cfg.Window.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if printConfig {
		fmt.Print(cfg)
		return
	}

	if cfg.Window.Backend == termdisplay.NAME {
		// stdout belongs to the frame
		log.SetOutput(os.Stderr)
	}
	log.Printf("Starting %s", PROGRAM_NAME)
	log.Printf("Using GoLang: [%s]", runtime.Version())

	state, err := scene.NewState(cfg)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	log.Printf("Scene ready, mesh %s with %d triangles", cfg.Scene.Mesh, state.Mesh.Len())

	engine, err := display.New(cfg.Window.Backend)
	if err != nil {
		log.Fatal(err)
	}
	if err := engine.Setup(cfg.DisplaySettings()); err != nil {
		engine.Close()
		log.Fatalf("Failed to set up %s display: %v", cfg.Window.Backend, err)
	}

	runErr := engine.Run(state.Frame)
	if err := engine.Close(); err != nil {
		log.Printf("Failed to close display: %v", err)
	}
	if runErr != nil {
		log.Fatalf("Display stopped: %v", runErr)
	}
	log.Printf("Bye")
}
