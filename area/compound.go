package area

import (
	"errors"
	"math"

	"github.com/dpup/geo"
)

// Compound construction errors.
var (
	ErrDisjointIntersection = errors.New("area: intersection of disjoint areas is empty")
	ErrInverseOfEverything  = errors.New("area: inverse of a world-covering area is empty")
)

// Union is the region covered by either of two operands.
type Union struct {
	left  Area
	right Area
}

// NewUnion combines two regions into their union. Use Add to combine and
// optimize in one step.
func NewUnion(left, right Area) Union {
	return Union{left: left, right: right}
}

// Left returns the left operand.
func (u Union) Left() Area { return u.left }

// Right returns the right operand.
func (u Union) Right() Area { return u.right }

// Overlaps implements Area.
func (u Union) Overlaps(other Area) bool {
	return u.left.Overlaps(other) || u.right.Overlaps(other)
}

// Contains implements Area. When the operands overlap the union is
// contiguous and its bounding box decides containment; a region straddling
// both operands is then handled correctly. When the operands are disjoint
// the bounding box over-approximates, so the region must lie entirely in one
// operand.
func (u Union) Contains(other Area) bool {
	if u.left.Overlaps(u.right) {
		return u.BoundingBox().Contains(other)
	}
	return u.left.Contains(other) || u.right.Contains(other)
}

// ContainsPoint implements Area.
func (u Union) ContainsPoint(p geo.Point) bool {
	return u.Contains(RectangleFromPoint(p))
}

// BoundingBox implements Area: the smallest rectangle covering both
// operands' boxes.
func (u Union) BoundingBox() Rectangle {
	return u.left.BoundingBox().grow(u.right.BoundingBox())
}

// Translate implements Area; both operands move by the same vector.
func (u Union) Translate(v geo.Vector) Area {
	return Union{left: u.left.Translate(v), right: u.right.Translate(v)}
}

// MoveTo implements Area. The union moves as a whole: the vector from its
// bounding box's south-west corner to origin is applied to both operands.
func (u Union) MoveTo(origin geo.Point) Area {
	return u.Translate(moveTo(u, origin))
}

// Optimize implements Area: a union collapses to one operand when that
// operand contains the other.
func (u Union) Optimize() Area {
	left := u.left.Optimize()
	right := u.right.Optimize()
	if left.Contains(right) {
		return left
	}
	if right.Contains(left) {
		return right
	}
	return Union{left: left, right: right}
}

// Pixelate implements Area by concatenating both operands' pixelations.
// The result may contain overlapping rectangles.
func (u Union) Pixelate() []Rectangle {
	return append(u.left.Pixelate(), u.right.Pixelate()...)
}

// Difference is the region covered by base but not by subtracted, evaluated
// as base ∩ ¬subtracted.
type Difference struct {
	base       Area
	subtracted Area
}

// NewDifference creates the difference of two regions.
func NewDifference(base, subtracted Area) Difference {
	return Difference{base: base, subtracted: subtracted}
}

// Left returns the base operand.
func (d Difference) Left() Area { return d.base }

// Right returns the subtracted operand.
func (d Difference) Right() Area { return d.subtracted }

// Overlaps implements Area. A region overlaps the difference unless it
// misses the base or lies entirely inside the subtracted part. A union is
// evaluated per operand, so both call directions distribute identically and
// Overlaps stays symmetric.
func (d Difference) Overlaps(other Area) bool {
	if u, ok := other.(Union); ok {
		return d.Overlaps(u.left) || d.Overlaps(u.right)
	}
	return d.base.Overlaps(other) && !d.subtracted.Contains(other)
}

// Contains implements Area: the base must contain the region and the
// subtracted part must not touch it. A union is contained when both of its
// operands are.
func (d Difference) Contains(other Area) bool {
	if u, ok := other.(Union); ok {
		return d.Contains(u.left) && d.Contains(u.right)
	}
	return d.base.Contains(other) && !d.subtracted.Overlaps(other)
}

// ContainsPoint implements Area.
func (d Difference) ContainsPoint(p geo.Point) bool {
	return d.Contains(RectangleFromPoint(p))
}

// BoundingBox implements Area. The difference is a subset of the base, so
// the base's box bounds it.
func (d Difference) BoundingBox() Rectangle {
	return d.base.BoundingBox()
}

// Translate implements Area.
func (d Difference) Translate(v geo.Vector) Area {
	return Difference{base: d.base.Translate(v), subtracted: d.subtracted.Translate(v)}
}

// MoveTo implements Area.
func (d Difference) MoveTo(origin geo.Point) Area {
	return d.Translate(moveTo(d, origin))
}

// Optimize implements Area: subtracting a region that never touches the base
// is a no-op.
func (d Difference) Optimize() Area {
	base := d.base.Optimize()
	subtracted := d.subtracted.Optimize()
	if !base.Overlaps(subtracted) {
		return base
	}
	return Difference{base: base, subtracted: subtracted}
}

// Pixelate implements Area with the base's pixelation. The subtracted part
// is not carved out; per the pixelation contract the output may over-cover.
func (d Difference) Pixelate() []Rectangle {
	return d.base.Pixelate()
}

// Intersection is the region covered by both operands.
type Intersection struct {
	left  Area
	right Area
	box   Rectangle
}

// NewIntersection creates the intersection of two regions. Operands whose
// bounding boxes do not overlap produce an empty region, which violates the
// positive-surface invariant and is rejected.
func NewIntersection(left, right Area) (Intersection, error) {
	box, ok := intersectRect(left.BoundingBox(), right.BoundingBox())
	if !ok {
		return Intersection{}, ErrDisjointIntersection
	}
	return Intersection{left: left, right: right, box: box}, nil
}

// Left returns the left operand.
func (i Intersection) Left() Area { return i.left }

// Right returns the right operand.
func (i Intersection) Right() Area { return i.right }

// Overlaps implements Area via the intersection's bounding box.
func (i Intersection) Overlaps(other Area) bool {
	return i.box.Overlaps(other)
}

// Contains implements Area: a region inside both operands is inside their
// intersection.
func (i Intersection) Contains(other Area) bool {
	return i.left.Contains(other) && i.right.Contains(other)
}

// ContainsPoint implements Area.
func (i Intersection) ContainsPoint(p geo.Point) bool {
	return i.Contains(RectangleFromPoint(p))
}

// BoundingBox implements Area: the rectangle intersection of both operands'
// boxes, computed at construction.
func (i Intersection) BoundingBox() Rectangle { return i.box }

// Translate implements Area.
func (i Intersection) Translate(v geo.Vector) Area {
	return Intersection{
		left:  i.left.Translate(v),
		right: i.right.Translate(v),
		box:   i.box.translate(v),
	}
}

// MoveTo implements Area.
func (i Intersection) MoveTo(origin geo.Point) Area {
	return i.Translate(moveTo(i, origin))
}

// Optimize implements Area: intersecting with a containing region is a
// no-op.
func (i Intersection) Optimize() Area {
	left := i.left.Optimize()
	right := i.right.Optimize()
	if left.Contains(right) {
		return right
	}
	if right.Contains(left) {
		return left
	}
	return Intersection{left: left, right: right, box: i.box}
}

// Pixelate implements Area via the bounding box, which over-covers the
// intersection as the pixelation contract permits.
func (i Intersection) Pixelate() []Rectangle {
	return i.box.Pixelate()
}

// Inverse is the complement of a region.
type Inverse struct {
	inner Area
}

// NewInverse creates the complement of a region. Inverting an area whose
// bounding box covers the whole globe would leave an empty region and is
// rejected.
func NewInverse(inner Area) (Inverse, error) {
	if len(complementRects(inner.BoundingBox())) == 0 {
		return Inverse{}, ErrInverseOfEverything
	}
	return Inverse{inner: inner}, nil
}

// Inner returns the inverted operand.
func (n Inverse) Inner() Area { return n.inner }

// Overlaps implements Area: the complement misses a region only when the
// inner area fully contains it. A union is evaluated per operand, so both
// call directions distribute identically and Overlaps stays symmetric.
func (n Inverse) Overlaps(other Area) bool {
	if u, ok := other.(Union); ok {
		return n.Overlaps(u.left) || n.Overlaps(u.right)
	}
	return !n.inner.Contains(other)
}

// Contains implements Area: the complement contains a region only when the
// inner area never touches it.
func (n Inverse) Contains(other Area) bool {
	if u, ok := other.(Union); ok {
		return n.Contains(u.left) && n.Contains(u.right)
	}
	return !n.inner.Overlaps(other)
}

// ContainsPoint implements Area.
func (n Inverse) ContainsPoint(p geo.Point) bool {
	return !n.inner.ContainsPoint(p)
}

// BoundingBox implements Area. The complement of a bounded region touches
// the whole globe, so its box is the world rectangle.
func (n Inverse) BoundingBox() Rectangle {
	return makeRect(-90, -180, 90, maxLon)
}

// Translate implements Area: the complement of a translated region.
func (n Inverse) Translate(v geo.Vector) Area {
	return Inverse{inner: n.inner.Translate(v)}
}

// MoveTo implements Area.
func (n Inverse) MoveTo(origin geo.Point) Area {
	return n.Translate(moveTo(n, origin))
}

// Optimize implements Area.
func (n Inverse) Optimize() Area {
	return Inverse{inner: n.inner.Optimize()}
}

// Pixelate implements Area: the complement of the inner bounding box as
// latitude bands, split at the antimeridian where needed.
func (n Inverse) Pixelate() []Rectangle {
	rects := complementRects(n.inner.BoundingBox())
	var out []Rectangle
	for _, r := range rects {
		out = append(out, r.Pixelate()...)
	}
	if len(out) == 0 {
		// Unreachable for areas accepted by NewInverse; keep the >= 1
		// pixelation guarantee regardless.
		out = []Rectangle{makeRect(-90, -180, 90, maxLon)}
	}
	return out
}

// complementRects decomposes the world minus r into up to three bands: the
// polar bands above and below r, and the band of r's latitudes with the
// complementary longitude span.
func complementRects(r Rectangle) []Rectangle {
	var out []Rectangle
	if r.ne.Lat() < 90 {
		out = append(out, makeRect(r.ne.Lat(), -180, 90, maxLon))
	}
	if r.sw.Lat() > -90 {
		out = append(out, makeRect(-90, -180, r.sw.Lat(), maxLon))
	}
	if gap := 360 - r.Easting(); gap > 0 && r.Easting() > 0 {
		out = append(out, makeRect(r.sw.Lat(), r.ne.Lon(), r.ne.Lat(), r.sw.Lon()))
	}
	return out
}

// intersectRect returns the rectangle intersection of two rectangles. When
// the spans intersect in two disjoint arcs around the globe, the result
// grows to the smallest single rectangle covering both arcs.
func intersectRect(a, b Rectangle) (Rectangle, bool) {
	swLat := math.Max(a.sw.Lat(), b.sw.Lat())
	neLat := math.Min(a.ne.Lat(), b.ne.Lat())
	if swLat > neLat {
		return Rectangle{}, false
	}

	arcs := intersectSpans(a.sw.Lon(), a.Easting(), b.sw.Lon(), b.Easting())
	if len(arcs) == 0 {
		return Rectangle{}, false
	}
	out := makeRect(swLat, arcs[0][0], neLat, geo.MapToLon(arcs[0][0]+arcs[0][1]))
	for _, arc := range arcs[1:] {
		out = out.grow(makeRect(swLat, arc[0], neLat, geo.MapToLon(arc[0]+arc[1])))
	}
	return out, true
}

// intersectSpans intersects two eastward longitude spans, returning up to
// two (start, easting) arcs.
func intersectSpans(aStart, aEasting, bStart, bEasting float64) [][2]float64 {
	var arcs [][2]float64
	d := eastDelta(aStart, bStart)
	if d <= aEasting {
		arcs = append(arcs, [2]float64{bStart, math.Min(bEasting, aEasting-d)})
	}
	if d2 := eastDelta(bStart, aStart); d2 <= bEasting && d != 0 && d2 != 0 {
		arcs = append(arcs, [2]float64{aStart, math.Min(aEasting, bEasting-d2)})
	}
	return arcs
}
