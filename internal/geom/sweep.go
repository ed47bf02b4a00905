package geom

// Line2 is a directed segment parametrized as Start + (End-Start)*t.
type Line2 struct {
	Start, End Vec2
}

// Seg is shorthand for Line2{start, end}.
func Seg(start, end Vec2) Line2 { return Line2{Start: start, End: end} }

// Vec returns End - Start.
func (l Line2) Vec() Vec2 { return l.End.Sub(l.Start) }

// Point returns the point at parameter t.
func (l Line2) Point(t float64) Vec2 { return l.Start.Add(l.Vec().Scale(t)) }

// Truncate moves End to the point at parameter t.
func (l *Line2) Truncate(t float64) { l.End = l.Point(t) }

// Intersection solves for the parameters at which l and o cross, t along l
// and u along o. ok is false only when the lines are parallel (determinant
// exactly zero). The segments actually cross when both t and u are in [0, 1].
func (l Line2) Intersection(o Line2) (t, u float64, ok bool) {
	x1, y1 := l.Start.X, l.Start.Y
	x2, y2 := l.End.X, l.End.Y
	x3, y3 := o.Start.X, o.Start.Y
	x4, y4 := o.End.X, o.End.Y

	det := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if det == 0 {
		return 0, 0, false
	}
	t = ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / det
	u = -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / det
	return t, u, true
}

// Collision is the earliest contact of a swept box with an obstacle.
type Collision struct {
	T      float64 // fraction of the movement segment travelled at impact
	Normal Vec2    // outward unit normal of the obstacle face that was hit
}

// Edge indices in the order SweptAABB enumerates them.
const (
	EdgeTop = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Edges returns the four faces of the box as directed segments ordered
// top, bottom, left, right. Each is wound so that Perp of its direction is
// the face's outward normal.
func Edges(center, half Vec2) [4]Line2 {
	l, r := center.X-half.X, center.X+half.X
	b, t := center.Y-half.Y, center.Y+half.Y
	return [4]Line2{
		EdgeTop:    Seg(V(l, t), V(r, t)),
		EdgeBottom: Seg(V(r, b), V(l, b)),
		EdgeLeft:   Seg(V(l, b), V(l, t)),
		EdgeRight:  Seg(V(r, t), V(r, b)),
	}
}

// SweptAABB tests a box of half extent moverHalf travelling along movement
// against a stationary box. The obstacle is grown by the mover's extent so
// the mover can be treated as a point. Of the faces the movement crosses,
// the one with the smallest t wins; exact ties keep the first face in
// top, bottom, left, right order.
func SweptAABB(movement Line2, moverHalf, obstacleCenter, obstacleHalf Vec2) (Collision, bool) {
	edges := Edges(obstacleCenter, obstacleHalf.Add(moverHalf))

	best := -1
	bestT := 0.0
	for i, edge := range edges {
		t, u, ok := movement.Intersection(edge)
		if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
			continue
		}
		if best < 0 || t < bestT {
			best, bestT = i, t
		}
	}
	if best < 0 {
		return Collision{}, false
	}
	return Collision{
		T:      bestT,
		Normal: edges[best].Vec().Normalized().Perp(),
	}, true
}
