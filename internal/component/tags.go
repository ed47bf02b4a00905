package component

import "strings"

// Tags is a set of capability flags. Any entity may carry any combination;
// collision and resolution rules dispatch on membership, not on a kind.
type Tags uint16

const (
	TagBall     Tags = 1 << iota // moves, bounces, is lost on the dead wall
	TagWall                      // arena boundary
	TagBlock                     // breakable target
	TagPlayer                    // the paddle
	TagDeadWall                  // boundary that costs the ball a life
)

// Has reports whether every flag in o is set.
func (t Tags) Has(o Tags) bool { return t&o == o }

// Intersects reports whether any flag in o is set.
func (t Tags) Intersects(o Tags) bool { return t&o != 0 }

// With returns t plus the flags in o.
func (t Tags) With(o Tags) Tags { return t | o }

// Without returns t minus the flags in o.
func (t Tags) Without(o Tags) Tags { return t &^ o }

var tagNames = []struct {
	tag  Tags
	name string
}{
	{TagBall, "Ball"},
	{TagWall, "Wall"},
	{TagBlock, "Block"},
	{TagPlayer, "Player"},
	{TagDeadWall, "DeadWall"},
}

// String lists the set flags, e.g. "Wall|DeadWall".
func (t Tags) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	for _, tn := range tagNames {
		if t.Has(tn.tag) {
			parts = append(parts, tn.name)
		}
	}
	return strings.Join(parts, "|")
}
