package helix

import "slices"

// Change describes one field update delivered to subscribers.
type Change struct {
	Field Field
	Old   Params
	New   Params
}

// Store holds the current parameters and notifies subscribers when an
// editable field changes. Subscribers run synchronously inside Set.
type Store struct {
	params Params
	bounds Bounds
	subs   map[int]func(Change)
	order  []int
	nextID int
}

func NewStore(p Params, b Bounds) *Store {
	return &Store{
		params: p.Clamp(b),
		bounds: b,
		subs:   make(map[int]func(Change)),
	}
}

func (s *Store) Params() Params { return s.params }
func (s *Store) Bounds() Bounds { return s.bounds }

// Subscribe registers fn for every subsequent change. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		delete(s.subs, id)
		s.order = slices.DeleteFunc(slices.Clone(s.order), func(o int) bool { return o == id })
	}
}

// Set clamps v into the range of f and applies it. It returns false when
// the stored value did not change; no notification is sent in that case.
func (s *Store) Set(f Field, v float64) bool {
	next := s.params.With(f, s.bounds.For(f).Clamp(v))
	if next.Get(f) == s.params.Get(f) {
		return false
	}
	old := s.params
	s.params = next
	s.notify(Change{Field: f, Old: old, New: next})
	return true
}

// Step moves f by n slider steps.
func (s *Store) Step(f Field, n float64) bool {
	return s.Set(f, s.params.Get(f)+n*s.bounds.For(f).Step)
}

// Replace applies every editable field of p that differs from the current
// value, one notification per field, and returns the fields that changed.
// ConnectionLength is fixed for the lifetime of the store and is ignored.
func (s *Store) Replace(p Params) []Field {
	var changed []Field
	for _, f := range Fields() {
		if s.Set(f, p.Get(f)) {
			changed = append(changed, f)
		}
	}
	return changed
}

// notify walks a snapshot of the subscriber order, so callbacks may
// subscribe or unsubscribe while it runs.
func (s *Store) notify(c Change) {
	for _, id := range slices.Clone(s.order) {
		if fn, ok := s.subs[id]; ok {
			fn(c)
		}
	}
}
