// Package interp provides piecewise-linear interpolation over sparse
// (year, value) control points, used to fill mandate-style ramps.
package interp

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Point is a single control point.
type Point struct {
	X int
	Y decimal.Decimal
}

// Curve interpolates linearly between sorted control points. Queries before
// the first or after the last control point hold the boundary value, and
// every result is clamped to [Lo, Hi] when a clamp range is set.
type Curve struct {
	points []Point
	lo, hi decimal.Decimal
	clamp  bool
}

// NewCurve builds a curve from control points. At least one point is
// required.
func NewCurve(points map[int]decimal.Decimal) (*Curve, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("interp: at least one control point required")
	}
	sorted := make([]Point, 0, len(points))
	for x, y := range points {
		sorted = append(sorted, Point{X: x, Y: y})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })
	return &Curve{points: sorted}, nil
}

// Clamped returns the same curve with results bounded to [lo, hi].
func (c *Curve) Clamped(lo, hi decimal.Decimal) *Curve {
	return &Curve{points: c.points, lo: lo, hi: hi, clamp: true}
}

// At evaluates the curve at x. Control points are returned exactly, with no
// interpolation drift.
func (c *Curve) At(x int) decimal.Decimal {
	return c.bound(c.at(x))
}

func (c *Curve) at(x int) decimal.Decimal {
	first, last := c.points[0], c.points[len(c.points)-1]
	if x <= first.X {
		return first.Y
	}
	if x >= last.X {
		return last.Y
	}
	// Find the segment [prev, next] containing x.
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i].X >= x })
	next := c.points[i]
	if next.X == x {
		return next.Y
	}
	prev := c.points[i-1]
	span := decimal.NewFromInt(int64(next.X - prev.X))
	offset := decimal.NewFromInt(int64(x - prev.X))
	return prev.Y.Add(next.Y.Sub(prev.Y).Mul(offset).Div(span))
}

func (c *Curve) bound(v decimal.Decimal) decimal.Decimal {
	if !c.clamp {
		return v
	}
	if v.LessThan(c.lo) {
		return c.lo
	}
	if v.GreaterThan(c.hi) {
		return c.hi
	}
	return v
}
