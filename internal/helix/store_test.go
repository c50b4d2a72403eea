package helix

import (
	"math"
	"strings"
	"testing"
)

func TestStoreSetNotifies(t *testing.T) {
	s := NewStore(DefaultParams(), DefaultBounds())
	var got []Change
	s.Subscribe(func(c Change) { got = append(got, c) })

	if !s.Set(FieldHelixRadius, 3) {
		t.Fatal("expected change")
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if got[0].Field != FieldHelixRadius || got[0].Old.HelixRadius != DefaultHelixRadius || got[0].New.HelixRadius != 3 {
		t.Errorf("unexpected change %+v", got[0])
	}

	if s.Set(FieldHelixRadius, 3) {
		t.Error("expected no change for identical value")
	}
	if len(got) != 1 {
		t.Errorf("expected no extra notification, got %d", len(got))
	}
}

func TestStoreSetClamps(t *testing.T) {
	s := NewStore(DefaultParams(), DefaultBounds())
	s.Set(FieldSegmentCount, 1e6)
	if s.Params().SegmentCount != 200 {
		t.Errorf("expected 200 segments, got %d", s.Params().SegmentCount)
	}
	s.Set(FieldSegmentCount, 12.6)
	if s.Params().SegmentCount != 13 {
		t.Errorf("expected rounding to 13, got %d", s.Params().SegmentCount)
	}
}

func TestStoreStep(t *testing.T) {
	s := NewStore(DefaultParams(), DefaultBounds())
	s.Step(FieldSegmentCount, 1)
	if s.Params().SegmentCount != DefaultSegmentCount+1 {
		t.Errorf("expected %d, got %d", DefaultSegmentCount+1, s.Params().SegmentCount)
	}
	s.Step(FieldSegmentCount, -10)
	if s.Params().SegmentCount != DefaultSegmentCount-9 {
		t.Errorf("expected %d, got %d", DefaultSegmentCount-9, s.Params().SegmentCount)
	}
}

func TestStoreClampsInitial(t *testing.T) {
	p := DefaultParams()
	p.HelixRadius = 100
	s := NewStore(p, DefaultBounds())
	if s.Params().HelixRadius != DefaultBounds().HelixRadius.Max {
		t.Errorf("expected clamped radius, got %v", s.Params().HelixRadius)
	}
}

func TestStoreReplace(t *testing.T) {
	s := NewStore(DefaultParams(), DefaultBounds())
	count := 0
	s.Subscribe(func(Change) { count++ })

	next := DefaultParams()
	next.SegmentCount = 80
	next.RotationSpeed = -1
	next.ConnectionLength = 9

	changed := s.Replace(next)
	if len(changed) != 2 || count != 2 {
		t.Fatalf("expected 2 changes, got %v (%d notifications)", changed, count)
	}
	if changed[0] != FieldSegmentCount || changed[1] != FieldRotationSpeed {
		t.Errorf("unexpected fields %v", changed)
	}
	if s.Params().ConnectionLength != DefaultConnectionLength {
		t.Errorf("connection length should stay fixed, got %v", s.Params().ConnectionLength)
	}
}

func TestStoreUnsubscribe(t *testing.T) {
	s := NewStore(DefaultParams(), DefaultBounds())
	a, b := 0, 0
	unsubA := s.Subscribe(func(Change) { a++ })
	s.Subscribe(func(Change) { b++ })

	s.Set(FieldHelixHeight, 0.5)
	unsubA()
	s.Set(FieldHelixHeight, 0.6)

	if a != 1 || b != 2 {
		t.Errorf("expected a=1 b=2, got a=%d b=%d", a, b)
	}
}

func TestStoreSetNaNClampsToMin(t *testing.T) {
	s := NewStore(DefaultParams(), DefaultBounds())
	calls := 0
	s.Subscribe(func(Change) { calls++ })

	if !s.Set(FieldHelixRadius, math.NaN()) {
		t.Fatal("expected change")
	}
	if got, want := s.Params().HelixRadius, DefaultBounds().HelixRadius.Min; got != want {
		t.Errorf("expected radius %v, got %v", want, got)
	}
	if err := s.Params().Validate(s.Bounds()); err != nil {
		t.Errorf("expected valid params, got %v", err)
	}
	if s.Set(FieldHelixRadius, math.NaN()) {
		t.Error("expected repeated NaN to be a no-op")
	}
	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
}

func TestStoreUnsubscribeDuringNotify(t *testing.T) {
	s := NewStore(DefaultParams(), DefaultBounds())
	calls := map[string]int{}
	var unsubA func()
	unsubA = s.Subscribe(func(Change) {
		calls["a"]++
		unsubA()
	})
	s.Subscribe(func(Change) { calls["b"]++ })
	s.Subscribe(func(Change) { calls["c"]++ })

	s.Set(FieldHelixRadius, 3)
	for _, name := range []string{"a", "b", "c"} {
		if calls[name] != 1 {
			t.Errorf("expected %s called once, got %d", name, calls[name])
		}
	}

	s.Set(FieldHelixRadius, 4)
	if calls["a"] != 1 || calls["b"] != 2 || calls["c"] != 2 {
		t.Errorf("unexpected calls after second Set: %v", calls)
	}
}

func TestStoreUnsubscribeLaterDuringNotify(t *testing.T) {
	s := NewStore(DefaultParams(), DefaultBounds())
	var got []string
	var unsubC func()
	s.Subscribe(func(Change) {
		got = append(got, "a")
		unsubC()
	})
	s.Subscribe(func(Change) { got = append(got, "b") })
	unsubC = s.Subscribe(func(Change) { got = append(got, "c") })

	s.Set(FieldHelixHeight, 0.5)
	if strings.Join(got, ",") != "a,b" {
		t.Errorf("expected a,b, got %v", got)
	}
}
