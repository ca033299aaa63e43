package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/raster"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// errUsage marks command-line mistakes, which exit with status 2
var errUsage = errors.New("usage error")

// options holds the parsed command line
type options struct {
	sceneType  string
	width      int
	height     int
	workers    int
	outputPath string
	list       bool
	help       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, flags, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	if opts.help {
		printHelp(stdout, flags)
		return nil
	}
	if opts.list {
		printScenes(stdout)
		return nil
	}

	selectedScene, info, err := createScene(opts.sceneType)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	width, height := info.Width, info.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	fmt.Fprintf(stdout, "Using %s scene...\n", info.DisplayName)

	config := renderer.DefaultConfig()
	config.NumWorkers = opts.workers
	raytracer := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())

	img, stats, err := raytracer.Render(ctx, width, height)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", info.ID, err)
	}
	fmt.Fprintf(stdout, "Average luminance: %.3f\n", stats.AverageLuminance)

	if err := img.WritePPM(opts.outputPath); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Render saved as %s\n", opts.outputPath)
	return nil
}

// parseFlags parses the command line. The single positional argument is the
// output path, which must be a .ppm file.
func parseFlags(args []string, output io.Writer) (options, *flag.FlagSet, error) {
	var opts options

	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&opts.sceneType, "scene", "default", "Built-in scene to render (see -list)")
	flags.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flags.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flags.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flags.BoolVar(&opts.list, "list", false, "List available scenes")
	flags.BoolVar(&opts.help, "help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		return opts, flags, fmt.Errorf("%w: %v", errUsage, err)
	}
	if opts.help || opts.list {
		return opts, flags, nil
	}

	if flags.NArg() != 1 {
		return opts, flags, fmt.Errorf("%w: expected exactly one output path, got %d", errUsage, flags.NArg())
	}
	opts.outputPath = flags.Arg(0)
	if !strings.HasSuffix(opts.outputPath, raster.PPMExtension) {
		return opts, flags, fmt.Errorf("%w: %w: %s", errUsage, raster.ErrUnsupportedFormat, opts.outputPath)
	}
	if opts.width < 0 || opts.height < 0 {
		return opts, flags, fmt.Errorf("%w: width and height must not be negative", errUsage)
	}

	return opts, flags, nil
}

// createScene creates a built-in scene by name
func createScene(sceneType string) (*scene.Scene, scene.SceneInfo, error) {
	return scene.Lookup(sceneType)
}

func printHelp(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(w, "Phong Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] <output.ppm>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags.PrintDefaults()
	fmt.Fprintln(w)
	printScenes(w)
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s %s (%dx%d)\n", info.ID, info.Description, info.Width, info.Height)
	}
}
