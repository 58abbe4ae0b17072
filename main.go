package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	defaultWidth  = 400
	defaultHeight = 225 // 16:9 aspect ratio
	scenesDir     = "scenes"
)

// options collects the command line flags
type options struct {
	sceneType string
	file      string
	width     int
	height    int
	maxDepth  int // negative keeps the scene's depth
	workers   int
	tileSize  int
	out       string
}

// sceneSetup is a scene plus the render settings that came with it
type sceneSetup struct {
	scene    *scene.Scene
	name     string
	width    int
	height   int
	maxDepth int
}

func main() {
	var opts options
	flag.StringVar(&opts.sceneType, "scene", "default", "Built-in scene name (see -list)")
	flag.StringVar(&opts.file, "file", "", "JSON scene file (overrides -scene)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&opts.maxDepth, "depth", -1, "Maximum reflection/refraction depth (0 = no reflection/refraction, -1 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.IntVar(&opts.tileSize, "tile", renderer.DefaultTileSize, "Tile size in pixels")
	flag.StringVar(&opts.out, "out", "", "Output file: .png, .ppm, .ppm.gz, .ppm.zst or .ppm.sz (default output/<scene>/render_<timestamp>.png)")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return
	}
	if *list {
		printScenes()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
	jsonScenes, err := scene.ListJSONScenes(scenesDir)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		return
	}
	if len(jsonScenes) > 0 {
		fmt.Println()
		fmt.Println("Scene files (use -file):")
		for _, info := range jsonScenes {
			fmt.Printf("  %s\n", info.FilePath)
		}
	}
}

func run(ctx context.Context, opts options) error {
	setup, err := createScene(opts.sceneType, opts.file)
	if err != nil {
		return err
	}
	applyOverrides(setup, opts)

	camera, err := renderer.NewCameraFromConfig(setup.width, setup.height, setup.scene.CameraConfig)
	if err != nil {
		return err
	}

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = opts.workers
	config.TileSize = opts.tileSize
	config.MaxDepth = setup.maxDepth

	fmt.Printf("Rendering scene %q...\n", setup.name)
	rt := renderer.NewRaytracer(camera, setup.scene.World, config, renderer.NewDefaultLogger())
	canvas, _, err := rt.Render(ctx)
	if err != nil {
		return err
	}

	outPath := opts.out
	if outPath == "" {
		outPath = createOutputPath(setup.name, time.Now())
	}
	if err := output.SaveFile(outPath, canvas); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", outPath)
	return nil
}

// createScene builds the scene from a JSON file when one is given, otherwise by built-in name
func createScene(sceneType, file string) (*sceneSetup, error) {
	if file != "" {
		sf, err := loaders.LoadScene(file)
		if err != nil {
			return nil, err
		}
		return &sceneSetup{
			scene:    sf.Scene,
			name:     sf.Scene.Name,
			width:    sf.Width,
			height:   sf.Height,
			maxDepth: sf.MaxDepth,
		}, nil
	}

	s, err := scene.NewBuiltinScene(sceneType)
	if err != nil {
		return nil, err
	}
	return &sceneSetup{
		scene:    s,
		name:     s.Name,
		width:    defaultWidth,
		height:   defaultHeight,
		maxDepth: integrator.DefaultMaxDepth,
	}, nil
}

// applyOverrides replaces scene defaults with any sizes or depth given on the command line
func applyOverrides(setup *sceneSetup, opts options) {
	if opts.width > 0 {
		setup.width = opts.width
	}
	if opts.height > 0 {
		setup.height = opts.height
	}
	if opts.maxDepth >= 0 {
		setup.maxDepth = opts.maxDepth
	}
}

// createOutputPath returns output/<scene>/render_<timestamp>.png
func createOutputPath(sceneName string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	if base == "" || base == "." {
		base = "scene"
	}
	filename := fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))
	return filepath.Join("output", base, filename)
}
