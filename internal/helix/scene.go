package helix

import "gonum.org/v1/gonum/spatial/r3"

// Label is a text marker that turns with the helix.
type Label struct {
	Text   string
	Anchor r3.Vec
}

// Scene owns the primitives of the current build. Every rebuild discards
// the previous contents; nothing survives across generations.
type Scene struct {
	geom       Geometry
	rotation   float64
	generation int
	label      *Label
	unbind     func()
}

func NewScene() *Scene {
	return &Scene{}
}

// Rebuild clears the scene and repopulates it from p.
func (s *Scene) Rebuild(p Params) {
	s.Clear()
	s.geom = Build(p)
	s.generation++
}

func (s *Scene) Clear() {
	s.geom = Geometry{}
}

// Bind rebuilds from the store now and again on every geometry change.
// A previous binding is released.
func (s *Scene) Bind(store *Store) {
	if s.unbind != nil {
		s.unbind()
	}
	s.Rebuild(store.Params())
	s.unbind = store.Subscribe(func(c Change) {
		if c.Field.Rebuilds() {
			s.Rebuild(c.New)
		}
	})
}

func (s *Scene) Unbind() {
	if s.unbind != nil {
		s.unbind()
		s.unbind = nil
	}
}

func (s *Scene) SetRotation(angle float64) { s.rotation = angle }
func (s *Scene) Rotation() float64         { return s.rotation }
func (s *Scene) Generation() int           { return s.generation }
func (s *Scene) Geometry() Geometry        { return s.geom }
func (s *Scene) StrandA() []StrandPoint    { return s.geom.StrandA }
func (s *Scene) StrandB() []StrandPoint    { return s.geom.StrandB }
func (s *Scene) Connectors() []Connector   { return s.geom.Connectors }

// Len is the number of primitives currently held, label excluded.
func (s *Scene) Len() int { return s.geom.Len() }

func (s *Scene) SetLabel(l *Label) { s.label = l }
func (s *Scene) Label() *Label     { return s.label }

// World maps a scene-local position into world space using the current
// rotation about the vertical axis.
func (s *Scene) World(v r3.Vec) r3.Vec {
	return RotateY(v, s.rotation)
}

// Top is the height of the highest segment.
func (s *Scene) Top() float64 {
	if n := len(s.geom.StrandA); n > 0 {
		return s.geom.StrandA[n-1].Position.Y
	}
	return 0
}
