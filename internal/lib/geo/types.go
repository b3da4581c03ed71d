package geo

// Point represents a planar coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pair is a bare (x, y) coordinate pair
type Pair [2]float64

// Plottable is implemented by anything that can report a planar position.
// Both accessors must be pure.
type Plottable interface {
	PlotX() float64
	PlotY() float64
}

// Shape is one of Circle, Rect or Triangle. The set is closed: only types in
// this package implement it.
type Shape interface {
	isShape()
}

// Circle is a disc around Center
type Circle struct {
	Center Point   `json:"center" yaml:"center"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Rect is an axis aligned rectangle anchored at its top-left corner
type Rect struct {
	TopLeft Point   `json:"top_left" yaml:"top_left"`
	W       float64 `json:"w" yaml:"w"`
	H       float64 `json:"h" yaml:"h"`
}

// Triangle is defined by its three vertices, in any winding order
type Triangle struct {
	A Point `json:"a" yaml:"a"`
	B Point `json:"b" yaml:"b"`
	C Point `json:"c" yaml:"c"`
}

func (Circle) isShape()   {}
func (Rect) isShape()     {}
func (Triangle) isShape() {}
