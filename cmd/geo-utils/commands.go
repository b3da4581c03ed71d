package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dpup/planar/internal/config"
	"github.com/dpup/planar/internal/lib/geo"
	"github.com/dpup/planar/internal/lib/kml"
	"github.com/dpup/planar/internal/scene"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func handlePointDistance(args []string, out io.Writer) error {
	fs := newFlagSet("point-distance", out)
	x1 := fs.Float64("x1", 0, "X of first point")
	y1 := fs.Float64("y1", 0, "Y of first point")
	x2 := fs.Float64("x2", 0, "X of second point")
	y2 := fs.Float64("y2", 0, "Y of second point")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NFlag() == 0 {
		fmt.Fprintln(out, "Example usage:")
		fmt.Fprintln(out, "  geo-utils point-distance --x1 0 --y1 0 --x2 3 --y2 4")
		return errUsage
	}

	p1 := geo.Point{X: *x1, Y: *y1}
	p2 := geo.Point{X: *x2, Y: *y2}

	fmt.Fprintf(out, "Distance between points:\n")
	fmt.Fprintf(out, "  Point 1: %s\n", p1)
	fmt.Fprintf(out, "  Point 2: %s\n", p2)
	fmt.Fprintf(out, "  Distance: %g\n", p1.DistanceTo(p2))
	return nil
}

func handleArea(args []string, out io.Writer) error {
	fs := newFlagSet("area", out)
	radius := fs.Float64("circle", 0, "Circle radius")
	rect := fs.String("rect", "", "Rectangle size as w,h")
	triangle := fs.String("triangle", "", "Triangle vertices as x,y;x,y;x,y")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var shape geo.Shape
	switch {
	case *rect != "":
		pair, err := parsePair(*rect)
		if err != nil {
			return fmt.Errorf("invalid rect: %w", err)
		}
		shape = geo.Rect{TopLeft: geo.Origin(), W: pair[0], H: pair[1]}
	case *triangle != "":
		points, err := parseCoordinatePairs(*triangle)
		if err != nil {
			return fmt.Errorf("invalid triangle: %w", err)
		}
		if len(points) != 3 {
			return fmt.Errorf("triangle needs 3 vertices, got %d", len(points))
		}
		shape = geo.Triangle{A: points[0], B: points[1], C: points[2]}
	case isFlagSet(fs, "circle"):
		shape = geo.Circle{Center: geo.Origin(), Radius: *radius}
	default:
		fmt.Fprintln(out, "Example usage:")
		fmt.Fprintln(out, "  geo-utils area --circle 2")
		fmt.Fprintln(out, "  geo-utils area --rect 3,4")
		fmt.Fprintln(out, "  geo-utils area --triangle \"0,0;3,0;0,4\"")
		return errUsage
	}

	fmt.Fprintf(out, "Area: %g\n", geo.Area(shape))
	return nil
}

func handleFurthest(args []string, out io.Writer) error {
	fs := newFlagSet("furthest", out)
	pointsStr := fs.String("points", "", "Points as x,y;x,y;...")

	if err := fs.Parse(args); err != nil {
		return err
	}

	points, err := parseCoordinatePairs(*pointsStr)
	if err != nil {
		return err
	}

	furthest := geo.FurthestFromOrigin(points)
	if furthest == nil {
		return fmt.Errorf("no points given")
	}

	fmt.Fprintf(out, "Furthest from origin: %s (distance %g)\n", *furthest, furthest.DistanceTo(geo.Origin()))
	return nil
}

func handleClosest(args []string, out io.Writer) error {
	fs := newFlagSet("closest", out)
	pointsStr := fs.String("points", "", "Points as x,y;x,y;...")
	x := fs.Float64("x", 0, "X of target point")
	y := fs.Float64("y", 0, "Y of target point")

	if err := fs.Parse(args); err != nil {
		return err
	}

	points, err := parseCoordinatePairs(*pointsStr)
	if err != nil {
		return err
	}

	target := geo.Point{X: *x, Y: *y}
	closest := geo.ClosestTo(points, target)
	if closest == nil {
		return fmt.Errorf("no points given")
	}

	fmt.Fprintf(out, "Closest to %s: %s (distance %g)\n", target, *closest, closest.DistanceTo(target))
	return nil
}

func handleEncodePolyline(args []string, out io.Writer) error {
	fs := newFlagSet("encode-polyline", out)
	pointsStr := fs.String("points", "", "Points as x,y;x,y;...")

	if err := fs.Parse(args); err != nil {
		return err
	}

	points, err := parseCoordinatePairs(*pointsStr)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, geo.EncodePolyline(points))
	return nil
}

func handleDecodePolyline(args []string, out io.Writer) error {
	fs := newFlagSet("decode-polyline", out)
	polylineStr := fs.String("polyline", "", "Encoded polyline string to decode")
	verbose := fs.Bool("verbose", false, "Show all decoded points")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *polylineStr == "" {
		fmt.Fprintln(out, "Example usage:")
		fmt.Fprintln(out, "  geo-utils decode-polyline --polyline \"_p~iF~ps|U_ulLnnqC_mqNvxq`@\"")
		return errUsage
	}

	points, err := geo.DecodePolyline(*polylineStr)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Polyline decoded successfully:\n")
	fmt.Fprintf(out, "  Points: %d\n", len(points))

	if len(points) > 0 {
		fmt.Fprintf(out, "  Start: %s\n", points[0])
		if len(points) > 1 {
			fmt.Fprintf(out, "  End: %s\n", points[len(points)-1])
		}
	}

	if *verbose {
		for i, point := range points {
			fmt.Fprintf(out, "    %d: %s\n", i+1, point)
		}
	}
	return nil
}

func handleScene(cfg *config.Config, args []string, out io.Writer) error {
	fs := newFlagSet("scene", out)
	file := fs.String("file", cfg.Geometry.DefaultScene, "Path to a YAML scene")
	kmlPath := fs.String("kml", "", "Write the scene shapes to this KML file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *file == "" {
		fmt.Fprintln(out, "Example usage:")
		fmt.Fprintln(out, "  geo-utils scene --file scene.yaml --kml scene.kml")
		return errUsage
	}

	s, err := scene.LoadFile(*file)
	if err != nil {
		return err
	}
	slog.Info("Scene loaded", "file", *file, "points", len(s.Points), "shapes", len(s.Shapes))

	fmt.Fprintf(out, "Scene %s:\n", *file)
	for _, entry := range s.Shapes {
		shape, err := entry.Shape()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s: area %g\n", entry.Name, geo.Area(shape))
	}
	fmt.Fprintf(out, "  Total area: %g\n", s.TotalArea())

	if largest, ok := s.Largest(); ok {
		fmt.Fprintf(out, "  Largest shape: %s\n", largest.Name)
	}
	if furthest, ok := s.Furthest(); ok {
		fmt.Fprintf(out, "  Furthest point: %s %s\n", furthest.Name, furthest.Point)
	}

	if *kmlPath != "" {
		if err := writeSceneKML(cfg, s, *kmlPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "  KML written to %s\n", *kmlPath)
	}
	return nil
}

func writeSceneKML(cfg *config.Config, s *scene.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create KML file: %w", err)
	}
	defer f.Close()

	encoder := kml.NewEncoder(cfg.Output.KMLName, cfg.Geometry.CircleSegments)
	if err := encoder.WriteShapes(f, s.ShapeMarks()); err != nil {
		return err
	}
	return f.Close()
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// parsePair parses a single "a,b" pair
func parsePair(s string) (geo.Pair, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return geo.Pair{}, fmt.Errorf("invalid coordinate pair: %s", s)
	}

	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Pair{}, fmt.Errorf("invalid number: %s", parts[0])
	}

	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Pair{}, fmt.Errorf("invalid number: %s", parts[1])
	}

	return geo.Pair{a, b}, nil
}

// parseCoordinatePairs parses points from a "x,y;x,y" string
func parseCoordinatePairs(coordStr string) ([]geo.Point, error) {
	if coordStr == "" {
		return nil, fmt.Errorf("empty coordinate string")
	}

	pairs := strings.Split(coordStr, ";")
	points := make([]geo.Point, 0, len(pairs))

	for _, pair := range pairs {
		p, err := parsePair(pair)
		if err != nil {
			return nil, err
		}
		points = append(points, p.Point())
	}

	return points, nil
}
