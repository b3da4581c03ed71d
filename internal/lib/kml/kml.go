package kml

import (
	"fmt"
	"io"

	gokml "github.com/twpayne/go-kml/v2"

	"github.com/dpup/planar/internal/lib/geo"
)

// DefaultCircleSegments is used when an Encoder has no segment count configured
const DefaultCircleSegments = 64

// PointMark is a named point to place in a KML document
type PointMark struct {
	Name  string
	Point geo.Point
}

// ShapeMark is a named shape to place in a KML document
type ShapeMark struct {
	Name  string
	Shape geo.Shape
}

// Encoder writes planar geometry as KML. X is written as longitude and Y as latitude.
type Encoder struct {
	Name           string
	CircleSegments int
}

// NewEncoder creates a new KML encoder
func NewEncoder(name string, circleSegments int) *Encoder {
	return &Encoder{
		Name:           name,
		CircleSegments: circleSegments,
	}
}

// WritePoints writes a document with one placemark per point
func (e *Encoder) WritePoints(w io.Writer, marks []PointMark) error {
	placemarks := make([]gokml.Element, 0, len(marks))
	for _, mark := range marks {
		placemarks = append(placemarks, gokml.Placemark(
			gokml.Name(mark.Name),
			gokml.Description(mark.Point.String()),
			gokml.Point(gokml.Coordinates(toCoordinate(mark.Point))),
		))
	}
	return e.write(w, placemarks)
}

// WriteShapes writes a document with one polygon placemark per shape
func (e *Encoder) WriteShapes(w io.Writer, marks []ShapeMark) error {
	placemarks := make([]gokml.Element, 0, len(marks))
	for _, mark := range marks {
		placemarks = append(placemarks, gokml.Placemark(
			gokml.Name(mark.Name),
			gokml.Description(describeShape(mark.Shape)),
			gokml.Polygon(
				gokml.OuterBoundaryIs(
					gokml.LinearRing(gokml.Coordinates(e.ring(mark.Shape)...)),
				),
			),
		))
	}
	return e.write(w, placemarks)
}

func (e *Encoder) write(w io.Writer, placemarks []gokml.Element) error {
	children := append([]gokml.Element{gokml.Name(e.Name)}, placemarks...)
	doc := gokml.KML(gokml.Document(children...))

	if err := doc.WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("failed to write KML: %w", err)
	}
	return nil
}

// ring returns the closed outline of a shape, first vertex repeated at the end
func (e *Encoder) ring(s geo.Shape) []gokml.Coordinate {
	segments := e.CircleSegments
	if segments <= 0 {
		segments = DefaultCircleSegments
	}

	vertices := geo.Vertices(s, segments)
	coords := make([]gokml.Coordinate, 0, len(vertices)+1)
	for _, v := range vertices {
		coords = append(coords, toCoordinate(v))
	}
	if len(vertices) > 0 {
		coords = append(coords, toCoordinate(vertices[0]))
	}
	return coords
}

func toCoordinate(p geo.Point) gokml.Coordinate {
	return gokml.Coordinate{Lon: p.X, Lat: p.Y}
}

func describeShape(s geo.Shape) string {
	var kind string
	switch s.(type) {
	case geo.Circle:
		kind = "circle"
	case geo.Rect:
		kind = "rect"
	case geo.Triangle:
		kind = "triangle"
	}
	return fmt.Sprintf("%s, area %g", kind, geo.Area(s))
}
