package grid

import "fmt"

// Orientation is one of the four cardinal facings.
//
// The numeric value doubles as the fixed tie-break rank used by the
// route frontier: North=0, East=1, South=2, West=3. Changing these values
// changes which of several equal-cost routes is settled first.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// NumOrientations is the size of the cyclic group of facings.
const NumOrientations = 4

// deltas holds (dCol, dRow) per orientation, indexed by rank.
var deltas = [NumOrientations][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

// Orientations returns all facings in rank order.
func Orientations() []Orientation {
	return []Orientation{North, East, South, West}
}

// Valid reports whether o is one of the four cardinal facings.
func (o Orientation) Valid() bool {
	return o < NumOrientations
}

// Rank returns the fixed tie-break rank of o.
func (o Orientation) Rank() int {
	return int(o)
}

// Right rotates o one step clockwise.
func (o Orientation) Right() Orientation {
	return (o + 1) % NumOrientations
}

// Left rotates o one step counter-clockwise.
func (o Orientation) Left() Orientation {
	return (o + NumOrientations - 1) % NumOrientations
}

// Delta returns the column and row offsets of one step forward.
func (o Orientation) Delta() (dCol, dRow int) {
	d := deltas[o%NumOrientations]
	return d[0], d[1]
}

// Ahead returns the position one cell in front of p when facing o.
// The result may be out of bounds.
func (o Orientation) Ahead(p Position) Position {
	dc, dr := o.Delta()
	return p.Add(dc, dr)
}

// String returns the compass name of o.
func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Glyph returns the arrow character used when drawing a route.
func (o Orientation) Glyph() rune {
	switch o {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	default:
		return '?'
	}
}
