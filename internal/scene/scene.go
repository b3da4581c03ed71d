package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dpup/planar/internal/lib/geo"
	"github.com/dpup/planar/internal/lib/kml"
)

// Scene is a collection of named points and shapes loaded from YAML
type Scene struct {
	Points []NamedPoint `yaml:"points"`
	Shapes []ShapeEntry `yaml:"shapes"`
}

// NamedPoint is a point with a label. It is Plottable through the embedded Point.
type NamedPoint struct {
	Name      string `yaml:"name"`
	geo.Point `yaml:",inline"`
}

// ShapeEntry is a named shape. Exactly one of Circle, Rect or Triangle must be set.
type ShapeEntry struct {
	Name     string        `yaml:"name"`
	Circle   *geo.Circle   `yaml:"circle,omitempty"`
	Rect     *geo.Rect     `yaml:"rect,omitempty"`
	Triangle *geo.Triangle `yaml:"triangle,omitempty"`
}

// Shape returns the single variant set on the entry
func (e ShapeEntry) Shape() (geo.Shape, error) {
	var shapes []geo.Shape
	if e.Circle != nil {
		shapes = append(shapes, *e.Circle)
	}
	if e.Rect != nil {
		shapes = append(shapes, *e.Rect)
	}
	if e.Triangle != nil {
		shapes = append(shapes, *e.Triangle)
	}

	switch len(shapes) {
	case 0:
		return nil, fmt.Errorf("shape %q: one of circle, rect or triangle is required", e.Name)
	case 1:
		return shapes[0], nil
	default:
		return nil, fmt.Errorf("shape %q: only one of circle, rect or triangle may be set", e.Name)
	}
}

// LoadFile reads a scene from a YAML file
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a scene from YAML. Unknown fields and ambiguous shape entries are rejected.
func Load(r io.Reader) (*Scene, error) {
	var s Scene

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	for _, entry := range s.Shapes {
		if _, err := entry.Shape(); err != nil {
			return nil, err
		}
	}

	return &s, nil
}

// Furthest returns the point furthest from the origin, last among equals
func (s *Scene) Furthest() (NamedPoint, bool) {
	p := geo.FurthestFromOrigin(s.Points)
	if p == nil {
		return NamedPoint{}, false
	}
	return *p, true
}

// Closest returns the first point nearest to target
func (s *Scene) Closest(target geo.Point) (NamedPoint, bool) {
	p := geo.ClosestTo(s.Points, target)
	if p == nil {
		return NamedPoint{}, false
	}
	return *p, true
}

// Largest returns the first shape with the biggest area.
// Invalid entries and NaN areas rank last.
func (s *Scene) Largest() (ShapeEntry, bool) {
	e := geo.MinByKey(s.Shapes, func(e ShapeEntry) float64 {
		shape, err := e.Shape()
		if err != nil {
			return math.Inf(1)
		}
		area := geo.Area(shape)
		if math.IsNaN(area) {
			return math.Inf(1)
		}
		return -area
	})
	if e == nil {
		return ShapeEntry{}, false
	}
	return *e, true
}

// TotalArea sums the area of every shape
func (s *Scene) TotalArea() float64 {
	var total float64
	for _, entry := range s.Shapes {
		shape, err := entry.Shape()
		if err != nil {
			continue
		}
		total += geo.Area(shape)
	}
	return total
}

// PointMarks converts the scene points for KML export
func (s *Scene) PointMarks() []kml.PointMark {
	marks := make([]kml.PointMark, len(s.Points))
	for i, p := range s.Points {
		marks[i] = kml.PointMark{Name: p.Name, Point: p.Point}
	}
	return marks
}

// ShapeMarks converts the scene shapes for KML export, skipping invalid entries
func (s *Scene) ShapeMarks() []kml.ShapeMark {
	marks := make([]kml.ShapeMark, 0, len(s.Shapes))
	for _, entry := range s.Shapes {
		shape, err := entry.Shape()
		if err != nil {
			continue
		}
		marks = append(marks, kml.ShapeMark{Name: entry.Name, Shape: shape})
	}
	return marks
}
