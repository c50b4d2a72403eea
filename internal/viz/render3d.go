package viz

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/helix/internal/helix"
)

// Camera projects world points onto the canvas with a simple perspective.
// It looks down -Z at Target, tilted about the X axis.
type Camera struct {
	Target   r3.Vec
	Extent   float64
	Distance float64
	Tilt     float64
	Zoom     float64
}

func NewCamera() *Camera {
	return &Camera{Extent: 10, Distance: 30, Tilt: 0.25, Zoom: 1}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(8, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.125, c.Zoom/1.2) }

// Fit centres the camera on the helix and sizes the view to hold it.
func (c *Camera) Fit(s *helix.Scene, radius float64) {
	top := s.Top()
	c.Target = r3.Vec{Y: top / 2}
	c.Extent = math.Max(top, 2*radius) * 1.2
	if c.Extent <= 0 {
		c.Extent = 1
	}
	c.Distance = 3 * c.Extent
}

// Project returns sub-pixel coordinates and depth of p on a w x h pixel
// surface. ok is false for points behind the near plane.
func (c *Camera) Project(p r3.Vec, w, h int) (x, y int, depth float64, ok bool) {
	rel := r3.Sub(p, c.Target)
	cs, sn := math.Cos(c.Tilt), math.Sin(c.Tilt)
	rel.Y, rel.Z = rel.Y*cs-rel.Z*sn, rel.Y*sn+rel.Z*cs

	if rel.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - rel.Z)
	unit := float64(min(w, h)) / c.Extent * c.Zoom
	x = int(math.Round(rel.X*persp*unit)) + w/2
	y = int(math.Round(-rel.Y*persp*unit)) + h/2
	return x, y, rel.Z, true
}

type EdgeKind int

const (
	EdgeStrand EdgeKind = iota
	EdgeRung
	EdgePoint
)

type Edge struct {
	Start, End r3.Vec
	Kind       EdgeKind
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{} }

func (w *Wireframe) AddEdge(s, e r3.Vec, k EdgeKind) { w.Edges = append(w.Edges, Edge{s, e, k}) }
func (w *Wireframe) AddPoint(p r3.Vec)               { w.Edges = append(w.Edges, Edge{p, p, EdgePoint}) }
func (w *Wireframe) Clear()                          { w.Edges = w.Edges[:0] }

// HelixWireframe lays out the scene in a new wireframe.
func HelixWireframe(s *helix.Scene) *Wireframe {
	return NewWireframe().AddScene(s)
}

// AddScene appends the scene in world space: each strand as a polyline
// through its points, each connector as a line between its caps.
func (w *Wireframe) AddScene(s *helix.Scene) *Wireframe {
	for _, strand := range [][]helix.StrandPoint{s.StrandA(), s.StrandB()} {
		for i, p := range strand {
			cur := s.World(p.Position)
			w.AddPoint(cur)
			if i > 0 {
				w.AddEdge(s.World(strand[i-1].Position), cur, EdgeStrand)
			}
		}
	}
	for _, c := range s.Connectors() {
		lo, hi := c.Endpoints()
		w.AddEdge(s.World(lo), s.World(hi), EdgeRung)
	}
	return w
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	kind           EdgeKind
}

// Render3D draws the wireframe back to front. Rungs are dotted so they
// read lighter than the strands.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pw, ph := c.PixelSize()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, pw, ph)
		x2, y2, d2, v2 := cam.Project(e.End, pw, ph)
		if v1 && v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Kind})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		switch e.kind {
		case EdgePoint:
			r := 0
			if e.depth > 0 {
				r = 1
			}
			c.DrawDot(e.x1, e.y1, r)
		case EdgeRung:
			c.DrawDotted(e.x1, e.y1, e.x2, e.y2)
		default:
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

// Snapshot renders a single frame of the helix for p at the given rotation.
func Snapshot(p helix.Params, angle float64, w, h int) *Canvas {
	scene := helix.NewScene()
	scene.Rebuild(p)
	scene.SetRotation(angle)
	cam := NewCamera()
	cam.Fit(scene, p.HelixRadius)
	c := NewCanvas(w, h)
	Render3D(c, HelixWireframe(scene), cam)
	return c
}
