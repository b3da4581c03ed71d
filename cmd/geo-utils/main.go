package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/dpup/prefab"
	prefaberrors "github.com/dpup/prefab/errors"
	"github.com/dpup/prefab/logging"

	"github.com/dpup/planar/internal/config"
)

// errUsage is returned when a command was invoked without the input it needs
var errUsage = errors.New("missing required arguments")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	appConfig := loadConfig()

	if err := run(context.Background(), appConfig, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

// run dispatches a single command
func run(ctx context.Context, cfg *config.Config, command string, args []string, out io.Writer) error {
	return guard(ctx, command, func() error {
		return dispatch(cfg, command, args, out)
	})
}

// guard calls fn, converting a panic into an error and a help request into errUsage
func guard(ctx context.Context, command string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack, _ := prefaberrors.ParseStack(debug.Stack())
			skipFrames := 3
			numFrames := 5
			logging.Errorw(ctx, "geo-utils: recovered from panic",
				"command", command, "error", r, "error.stack_trace", stack.MinimalStack(skipFrames, numFrames))
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	err = fn()
	if errors.Is(err, flag.ErrHelp) {
		return errUsage
	}
	return err
}

func dispatch(cfg *config.Config, command string, args []string, out io.Writer) error {
	switch command {
	case "point-distance":
		return handlePointDistance(args, out)
	case "area":
		return handleArea(args, out)
	case "furthest":
		return handleFurthest(args, out)
	case "closest":
		return handleClosest(args, out)
	case "encode-polyline":
		return handleEncodePolyline(args, out)
	case "decode-polyline":
		return handleDecodePolyline(args, out)
	case "scene":
		return handleScene(cfg, args, out)
	case "help":
		printUsage(out)
		return nil
	default:
		fmt.Fprintf(out, "Unknown command: %s\n\n", command)
		printUsage(out)
		return errUsage
	}
}

// loadConfig loads configuration using Prefab's config system
// Configuration is loaded from prefab.yaml and environment variables with PF__ prefix
func loadConfig() *config.Config {
	appConfig := config.DefaultConfig()

	if err := prefab.Config.Unmarshal("geometry", &appConfig.Geometry); err != nil {
		log.Fatalf("Failed to unmarshal geometry section: %v", err)
	}

	if err := prefab.Config.Unmarshal("output", &appConfig.Output); err != nil {
		log.Fatalf("Failed to unmarshal output section: %v", err)
	}

	appConfig.Validate()
	slog.Debug("Configuration loaded",
		"circle_segments", appConfig.Geometry.CircleSegments,
		"default_scene", appConfig.Geometry.DefaultScene)

	return appConfig
}

func printUsage(out io.Writer) {
	fmt.Fprintf(out, `geo-utils - Planar geometry utility tool

USAGE:
    geo-utils <command> [options]

COMMANDS:
    point-distance      Calculate Euclidean distance between two points
    area                Calculate the area of a circle, rectangle or triangle
    furthest            Find the point furthest from the origin
    closest             Find the point nearest to a target
    encode-polyline     Encode points as a Google polyline string
    decode-polyline     Decode a Google polyline string to points
    scene               Summarize a YAML scene and optionally export it as KML
    help                Show this help message

EXAMPLES:
    geo-utils point-distance --x1 0 --y1 0 --x2 3 --y2 4
    geo-utils area --circle 2
    geo-utils area --rect 3,4
    geo-utils area --triangle "0,0;3,0;0,4"
    geo-utils furthest --points "1,1;-5,0;2,2"
    geo-utils closest --points "1,1;-5,0;2,2" --x 2 --y 1
    geo-utils scene --file scene.yaml --kml scene.kml
`)
}
