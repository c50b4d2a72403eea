package helix

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AngularStep is the twist between consecutive segments, in radians.
const AngularStep = 0.3

// Up is the vertical axis the helix climbs along and rotates about.
var Up = r3.Vec{Y: 1}

type Strand int

const (
	StrandA Strand = iota
	StrandB
)

func (s Strand) String() string {
	if s == StrandB {
		return "B"
	}
	return "A"
}

type StrandPoint struct {
	Strand   Strand
	Index    int
	Angle    float64
	Position r3.Vec
}

// Connector is a rung between the two strands at one segment. Its long
// axis is the local +Y axis, which Orientation maps onto Direction.
type Connector struct {
	Index       int
	Position    r3.Vec
	Direction   r3.Vec
	Orientation r3.Rotation
	Length      float64
}

// Endpoints returns the centres of the cylinder caps.
func (c Connector) Endpoints() (r3.Vec, r3.Vec) {
	half := c.Orientation.Rotate(r3.Scale(c.Length/2, Up))
	return r3.Sub(c.Position, half), r3.Add(c.Position, half)
}

type Geometry struct {
	StrandA    []StrandPoint
	StrandB    []StrandPoint
	Connectors []Connector
}

// Len is the total number of primitives.
func (g Geometry) Len() int {
	return len(g.StrandA) + len(g.StrandB) + len(g.Connectors)
}

// Build generates the full helix for p. It is a pure function of p.
func Build(p Params) Geometry {
	n := p.SegmentCount
	if n < 0 {
		n = 0
	}
	g := Geometry{
		StrandA:    make([]StrandPoint, 0, n),
		StrandB:    make([]StrandPoint, 0, n),
		Connectors: make([]Connector, 0, n),
	}
	for i := 0; i < n; i++ {
		angle := float64(i) * AngularStep
		height := float64(i) * p.HelixHeight

		a := StrandPoint{Strand: StrandA, Index: i, Angle: angle, Position: strandPosition(angle, height, p.HelixRadius)}
		b := StrandPoint{Strand: StrandB, Index: i, Angle: angle + math.Pi, Position: strandPosition(angle+math.Pi, height, p.HelixRadius)}

		g.StrandA = append(g.StrandA, a)
		g.StrandB = append(g.StrandB, b)
		g.Connectors = append(g.Connectors, connect(i, a.Position, b.Position, b.Angle, p.ConnectionLength))
	}
	return g
}

func strandPosition(angle, height, radius float64) r3.Vec {
	return r3.Vec{X: radius * math.Cos(angle), Y: height, Z: radius * math.Sin(angle)}
}

// connect places the rung between a and b. When the strands coincide
// (zero radius) the rung points along the angle of b.
func connect(i int, a, b r3.Vec, angleB, length float64) Connector {
	mid := r3.Scale(0.5, r3.Add(a, b))
	toB := r3.Sub(b, mid)
	dir := r3.Vec{X: math.Cos(angleB), Z: math.Sin(angleB)}
	if r3.Norm(toB) > 1e-12 {
		dir = r3.Unit(toB)
	}
	return Connector{
		Index:       i,
		Position:    mid,
		Direction:   dir,
		Orientation: alignUp(dir),
		Length:      length,
	}
}

// alignUp returns the rotation taking +Y onto dir.
func alignUp(dir r3.Vec) r3.Rotation {
	axis := r3.Cross(Up, dir)
	if r3.Norm(axis) < 1e-12 {
		if r3.Dot(Up, dir) < 0 {
			return r3.NewRotation(math.Pi, r3.Vec{X: 1})
		}
		return r3.NewRotation(0, r3.Vec{X: 1})
	}
	angle := math.Acos(math.Max(-1, math.Min(1, r3.Dot(Up, dir))))
	return r3.NewRotation(angle, r3.Unit(axis))
}

// RotateY rotates v about the vertical axis by angle radians.
func RotateY(v r3.Vec, angle float64) r3.Vec {
	return r3.NewRotation(angle, Up).Rotate(v)
}
