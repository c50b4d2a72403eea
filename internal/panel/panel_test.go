package panel

import (
	"testing"

	"github.com/san-kum/helix/internal/helix"
)

func newPanel() *Panel {
	store := helix.NewStore(helix.DefaultParams(), helix.DefaultBounds())
	presets := map[string]helix.Params{
		"tight": {SegmentCount: 100, HelixRadius: 1, HelixHeight: 0.1, RotationSpeed: 1},
	}
	return New(store, presets)
}

func TestCursorWraps(t *testing.T) {
	p := newPanel()
	if p.Selected() != helix.FieldSegmentCount {
		t.Fatalf("expected segments selected, got %s", p.Selected())
	}
	p.Prev()
	if p.Selected() != helix.FieldRotationSpeed {
		t.Errorf("expected wrap to speed, got %s", p.Selected())
	}
	p.Next()
	p.Next()
	if p.Selected() != helix.FieldHelixRadius {
		t.Errorf("expected radius, got %s", p.Selected())
	}
}

func TestAdjustSelected(t *testing.T) {
	p := newPanel()
	p.Increase(false)
	if got := p.Store().Params().SegmentCount; got != helix.DefaultSegmentCount+1 {
		t.Errorf("expected %d segments, got %d", helix.DefaultSegmentCount+1, got)
	}
	p.Decrease(true)
	if got := p.Store().Params().SegmentCount; got != helix.DefaultSegmentCount-9 {
		t.Errorf("expected %d segments, got %d", helix.DefaultSegmentCount-9, got)
	}

	for i := 0; i < 100; i++ {
		p.Decrease(true)
	}
	if got := p.Store().Params().SegmentCount; got != 4 {
		t.Errorf("expected clamp at 4, got %d", got)
	}
	if p.Decrease(false) {
		t.Error("expected no change at the lower bound")
	}
}

func TestSliders(t *testing.T) {
	p := newPanel()
	p.Next()
	sliders := p.Sliders()
	if len(sliders) != 4 {
		t.Fatalf("expected 4 sliders, got %d", len(sliders))
	}
	s := sliders[1]
	if !s.Selected || s.Field != helix.FieldHelixRadius {
		t.Errorf("expected radius slider selected, got %+v", s)
	}
	if s.Fraction <= 0 || s.Fraction >= 1 {
		t.Errorf("expected fraction inside (0,1), got %v", s.Fraction)
	}
	if sliders[0].Text() != "40" {
		t.Errorf("expected segment text 40, got %q", sliders[0].Text())
	}
	if s.Text() != "2.00" {
		t.Errorf("expected radius text 2.00, got %q", s.Text())
	}
}

func TestApplyPreset(t *testing.T) {
	p := newPanel()
	if err := p.ApplyPreset("tight"); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := p.Store().Params().SegmentCount; got != 100 {
		t.Errorf("expected 100 segments, got %d", got)
	}
	if err := p.ApplyPreset("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
