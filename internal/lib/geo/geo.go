package geo

import (
	"fmt"
	"math"
	"strconv"
)

// Origin returns the point (0, 0)
func Origin() Point {
	return Point{}
}

// DistanceTo calculates the Euclidean distance between two points
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// String renders the point as "(x, y)" using the shortest exact decimal for each coordinate
func (p Point) String() string {
	return "(" + formatCoord(p.X) + ", " + formatCoord(p.Y) + ")"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PlotX implements Plottable
func (p Point) PlotX() float64 { return p.X }

// PlotY implements Plottable
func (p Point) PlotY() float64 { return p.Y }

// PlotX implements Plottable
func (p Pair) PlotX() float64 { return p[0] }

// PlotY implements Plottable
func (p Pair) PlotY() float64 { return p[1] }

// Point converts the pair to a Point
func (p Pair) Point() Point {
	return Point{X: p[0], Y: p[1]}
}

// Area calculates the area of a shape.
// Dimensions are not validated: a negative radius, width or height goes straight
// through the formula.
func Area(s Shape) float64 {
	switch s := s.(type) {
	case Circle:
		return math.Pi * s.Radius * s.Radius
	case Rect:
		return s.W * s.H
	case Triangle:
		// Shoelace formula; the absolute value makes it independent of winding order
		a, b, c := s.A, s.B, s.C
		return math.Abs(a.X*(b.Y-c.Y)+b.X*(c.Y-a.Y)+c.X*(a.Y-b.Y)) / 2
	default:
		panic(fmt.Sprintf("geo: unknown shape %T", s))
	}
}

// MinCircleSegments is the smallest number of points used to outline a circle
const MinCircleSegments = 3

// Vertices returns the outline of a shape as an open ring of points.
// Circles are approximated with the given number of evenly spaced segments.
func Vertices(s Shape, segments int) []Point {
	switch s := s.(type) {
	case Circle:
		if segments < MinCircleSegments {
			segments = MinCircleSegments
		}
		points := make([]Point, segments)
		for i := range points {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			points[i] = Point{
				X: s.Center.X + s.Radius*math.Cos(theta),
				Y: s.Center.Y + s.Radius*math.Sin(theta),
			}
		}
		return points
	case Rect:
		x, y := s.TopLeft.X, s.TopLeft.Y
		return []Point{
			{X: x, Y: y},
			{X: x + s.W, Y: y},
			{X: x + s.W, Y: y + s.H},
			{X: x, Y: y + s.H},
		}
	case Triangle:
		return []Point{s.A, s.B, s.C}
	default:
		panic(fmt.Sprintf("geo: unknown shape %T", s))
	}
}
