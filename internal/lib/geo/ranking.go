package geo

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SquaredNorm returns x²+y² for a plottable value
func SquaredNorm(p Plottable) float64 {
	x, y := p.PlotX(), p.PlotY()
	return x*x + y*y
}

// compareFloat orders two floats, treating incomparable (NaN) values as equal
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FurthestFromOrigin returns the item with the largest distance from the origin,
// or nil when items is empty.
//
// The result points into items and aliases the caller's slice. When several
// items share the maximal distance the last one wins. A NaN distance compares
// equal to everything, so it neither definitively wins nor loses.
func FurthestFromOrigin[T Plottable](items []T) *T {
	if len(items) == 0 {
		return nil
	}

	best := 0
	bestNorm := SquaredNorm(items[0])
	for i := 1; i < len(items); i++ {
		norm := SquaredNorm(items[i])
		if compareFloat(bestNorm, norm) <= 0 {
			best, bestNorm = i, norm
		}
	}
	return &items[best]
}

// MinByKey returns the item whose key is smallest, or nil when items is empty.
// The first item wins among equal keys. key is called once per item.
//
// The result points into items and aliases the caller's slice.
func MinByKey[T any, K constraints.Ordered](items []T, key func(T) K) *T {
	if len(items) == 0 {
		return nil
	}

	best := 0
	bestKey := key(items[0])
	for i := 1; i < len(items); i++ {
		k := key(items[i])
		if k < bestKey {
			best, bestKey = i, k
		}
	}
	return &items[best]
}

// ClosestTo returns the first item nearest to target, or nil when items is empty.
// Items whose distance is NaN rank last, wherever they sit in items.
func ClosestTo[T Plottable](items []T, target Point) *T {
	return MinByKey(items, func(item T) float64 {
		dx := item.PlotX() - target.X
		dy := item.PlotY() - target.Y
		d := dx*dx + dy*dy
		if math.IsNaN(d) {
			return math.Inf(1)
		}
		return d
	})
}

// WithinDistance filters items to those within maxDistance of center, keeping input order
func WithinDistance[T Plottable](items []T, center Point, maxDistance float64) []T {
	var filtered []T

	for _, item := range items {
		distance := center.DistanceTo(Point{X: item.PlotX(), Y: item.PlotY()})
		if math.IsNaN(distance) {
			continue // Skip points that cannot be measured
		}

		if distance <= maxDistance {
			filtered = append(filtered, item)
		}
	}

	return filtered
}
