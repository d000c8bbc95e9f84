// Package geo provides the reference vertex type of the route planner, a
// named location on a flat plane, and the straight-line heuristic over it.
package geo

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Location is a named point with integer coordinates. It is comparable and
// hashes itself, so it can key a hashtable.Table or a core.Graph directly.
type Location struct {
	Name string
	Lat  int
	Long int
}

// New returns a Location.
func New(name string, lat, long int) Location {
	return Location{Name: name, Lat: lat, Long: long}
}

// String renders "<name> (lat: <lat>, long: <long>)".
func (l Location) String() string {
	return fmt.Sprintf("%s (lat: %d, long: %d)", l.Name, l.Lat, l.Long)
}

// Hash64 reduces the location to 64 bits with xxhash over the name followed
// by both coordinates in little-endian order.
func (l Location) Hash64() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(l.Name)
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(l.Lat))
	binary.LittleEndian.PutUint64(buf[8:], uint64(l.Long))
	_, _ = d.Write(buf[:])

	return d.Sum64()
}

// Number is any integer or float coordinate type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
// The flat-plane model ignores surface curvature.
func Distance[N Number](x1, y1, x2, y2 N) float64 {
	dx := float64(x2) - float64(x1)
	dy := float64(y2) - float64(y1)

	return math.Hypot(dx, dy)
}

// Euclidean is the straight-line heuristic between two locations. It never
// overestimates the cost of a path whose edge costs are at least the
// straight-line length of each edge, so it is admissible for such graphs.
func Euclidean(a, b Location) float64 {
	return Distance(a.Lat, a.Long, b.Lat, b.Long)
}
