// Package area implements a composable algebra of geographic regions on the
// planar model provided by package geo. Regions are immutable expression
// trees built from two primitives (Rectangle, Circle) and four combinators
// (Union, Difference, Intersection, Inverse). Every region can report
// overlap and containment, produce a bounding box, translate itself, and
// flatten into a list of simple non-wrapped rectangles via Pixelate.
package area

import (
	"errors"

	"github.com/dpup/geo"
)

// ErrNoAreas is returned by FromAreas when the input list is empty.
var ErrNoAreas = errors.New("area: at least one area is required")

// Area is a geographic region. Implementations are immutable value types;
// every derived region is a new value. Constructors that can produce an empty
// region reject it, so the bounding box of any compound Area has a positive
// surface; zero-surface rectangles remain valid operands, since a degenerate
// rectangle is how a point participates in the algebra.
type Area interface {
	// Overlaps reports whether the two regions share any surface. It is
	// symmetric: a.Overlaps(b) == b.Overlaps(a) for all areas.
	Overlaps(other Area) bool

	// Contains reports whether other lies entirely within the region.
	Contains(other Area) bool

	// ContainsPoint reports whether the point lies within the region. It is
	// equivalent to containing the degenerate rectangle at that point.
	ContainsPoint(p geo.Point) bool

	// BoundingBox returns the smallest rectangle enclosing the region. For
	// compound regions the box may cover area outside the region itself.
	BoundingBox() Rectangle

	// Translate returns the region moved by v.
	Translate(v geo.Vector) Area

	// MoveTo returns the region translated so that the south-west corner of
	// its bounding box lands on origin.
	MoveTo(origin geo.Point) Area

	// Optimize returns a semantically equal region that may have a simpler
	// representation. Callers must not rely on a canonical form, only on
	// equivalent set semantics.
	Optimize() Area

	// Pixelate flattens the region into one or more axis-aligned rectangles,
	// none of which crosses the antimeridian. The rectangles may overlap and
	// may over-cover the region; they never under-cover it.
	Pixelate() []Rectangle
}

// Equal reports whether two regions cover the same surface, regardless of
// how their expression trees are built.
func Equal(a, b Area) bool {
	return a.Contains(b) && b.Contains(a)
}

// Add combines two regions into their union, collapsing it when one operand
// already contains the other.
func Add(a, b Area) Area {
	return NewUnion(a, b).Optimize()
}

// FromAreas folds a non-empty list of regions into a single one.
func FromAreas(areas []Area) (Area, error) {
	if len(areas) == 0 {
		return nil, ErrNoAreas
	}
	combined := areas[0]
	for _, a := range areas[1:] {
		combined = Add(combined, a)
	}
	return combined, nil
}

// eastDelta returns the eastward angular distance from lon a to lon b, in
// [0, 360).
func eastDelta(a, b float64) float64 {
	d := b - a
	if d < 0 {
		d += 360
	}
	return d
}

// spanContains reports whether the eastward longitude span (start, easting)
// fully contains the span (oStart, oEasting).
func spanContains(start, easting, oStart, oEasting float64) bool {
	d := eastDelta(start, oStart)
	return d+oEasting <= easting
}

// deltaVector returns the translation that moves from onto to. Both deltas
// are guaranteed in range for valid points, so construction cannot fail.
func deltaVector(from, to geo.Point) geo.Vector {
	v, _ := geo.NewVector(to.Lat()-from.Lat(), to.Lon()-from.Lon())
	return v
}

// moveTo implements MoveTo for any area in terms of its bounding box.
func moveTo(a Area, origin geo.Point) geo.Vector {
	return deltaVector(a.BoundingBox().SouthWest(), origin)
}
