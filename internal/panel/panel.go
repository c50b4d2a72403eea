// Package panel implements the slider control panel shared by the window
// and terminal front ends. It only edits a helix.Store; drawing is left to
// the caller.
package panel

import (
	"fmt"

	"github.com/san-kum/helix/internal/helix"
)

// CoarseFactor multiplies the slider step when the coarse modifier is held.
const CoarseFactor = 10

type Slider struct {
	Field    helix.Field
	Label    string
	Value    float64
	Min, Max float64
	Fraction float64
	Selected bool
}

// Text formats the slider value the way the panel shows it.
func (s Slider) Text() string {
	if s.Field == helix.FieldSegmentCount {
		return fmt.Sprintf("%d", int(s.Value))
	}
	return fmt.Sprintf("%.2f", s.Value)
}

type Panel struct {
	store   *helix.Store
	fields  []helix.Field
	cursor  int
	presets map[string]helix.Params
}

func New(store *helix.Store, presets map[string]helix.Params) *Panel {
	return &Panel{store: store, fields: helix.Fields(), presets: presets}
}

func (p *Panel) Store() *helix.Store { return p.store }

func (p *Panel) Selected() helix.Field { return p.fields[p.cursor] }

func (p *Panel) Next() { p.cursor = (p.cursor + 1) % len(p.fields) }

func (p *Panel) Prev() {
	p.cursor--
	if p.cursor < 0 {
		p.cursor = len(p.fields) - 1
	}
}

func (p *Panel) Increase(coarse bool) bool { return p.store.Step(p.Selected(), p.steps(coarse)) }
func (p *Panel) Decrease(coarse bool) bool { return p.store.Step(p.Selected(), -p.steps(coarse)) }

func (p *Panel) steps(coarse bool) float64 {
	if coarse {
		return CoarseFactor
	}
	return 1
}

// ApplyPreset replaces the parameters with a named preset.
func (p *Panel) ApplyPreset(name string) error {
	preset, ok := p.presets[name]
	if !ok {
		return fmt.Errorf("panel: unknown preset %q", name)
	}
	p.store.Replace(preset)
	return nil
}

func (p *Panel) Sliders() []Slider {
	params, bounds := p.store.Params(), p.store.Bounds()
	out := make([]Slider, len(p.fields))
	for i, f := range p.fields {
		r, v := bounds.For(f), params.Get(f)
		out[i] = Slider{
			Field:    f,
			Label:    f.Label(),
			Value:    v,
			Min:      r.Min,
			Max:      r.Max,
			Fraction: r.Fraction(v),
			Selected: i == p.cursor,
		}
	}
	return out
}
