package geo

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"
)

// EncodePolyline encodes a point sequence with the Google polyline algorithm.
// Y is stored in the latitude slot and X in the longitude slot, at 1e-5 precision.
func EncodePolyline(points []Point) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Y, p.X}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline decodes a Google polyline string to a point sequence
func DecodePolyline(encoded string) ([]Point, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline string is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}

	points := make([]Point, len(coords))
	for i, coord := range coords {
		points[i] = Point{X: coord[1], Y: coord[0]}
	}

	return points, nil
}
