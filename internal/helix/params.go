package helix

import (
	"fmt"
	"math"
)

const (
	DefaultSegmentCount     = 40
	DefaultHelixRadius      = 2.0
	DefaultHelixHeight      = 0.3
	DefaultRotationSpeed    = 0.5
	DefaultConnectionLength = 4.0
)

// Params are the tunable values the geometry and the render loop read.
type Params struct {
	SegmentCount     int     `yaml:"segment_count" json:"segment_count"`
	HelixRadius      float64 `yaml:"helix_radius" json:"helix_radius"`
	HelixHeight      float64 `yaml:"helix_height" json:"helix_height"`
	RotationSpeed    float64 `yaml:"rotation_speed" json:"rotation_speed"`
	ConnectionLength float64 `yaml:"connection_length" json:"connection_length"`
}

func DefaultParams() Params {
	return Params{
		SegmentCount:     DefaultSegmentCount,
		HelixRadius:      DefaultHelixRadius,
		HelixHeight:      DefaultHelixHeight,
		RotationSpeed:    DefaultRotationSpeed,
		ConnectionLength: DefaultConnectionLength,
	}
}

// Field names a panel-editable parameter.
type Field int

const (
	FieldSegmentCount Field = iota
	FieldHelixRadius
	FieldHelixHeight
	FieldRotationSpeed
	numFields
)

var fieldNames = [numFields]string{
	FieldSegmentCount:  "segment_count",
	FieldHelixRadius:   "helix_radius",
	FieldHelixHeight:   "helix_height",
	FieldRotationSpeed: "rotation_speed",
}

var fieldLabels = [numFields]string{
	FieldSegmentCount:  "segments",
	FieldHelixRadius:   "radius",
	FieldHelixHeight:   "height",
	FieldRotationSpeed: "speed",
}

// Fields returns the editable fields in panel order.
func Fields() []Field {
	return []Field{FieldSegmentCount, FieldHelixRadius, FieldHelixHeight, FieldRotationSpeed}
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Label is the short name shown next to a slider.
func (f Field) Label() string {
	if f < 0 || f >= numFields {
		return f.String()
	}
	return fieldLabels[f]
}

// Rebuilds reports whether a change to f requires regenerating geometry.
// Rotation speed is read by the render loop directly.
func (f Field) Rebuilds() bool {
	return f != FieldRotationSpeed
}

// ParseField accepts either the config name ("helix_radius") or the
// slider label ("radius").
func ParseField(name string) (Field, error) {
	for _, f := range Fields() {
		if name == fieldNames[f] || name == fieldLabels[f] {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Get returns the value of f as a float.
func (p Params) Get(f Field) float64 {
	switch f {
	case FieldSegmentCount:
		return float64(p.SegmentCount)
	case FieldHelixRadius:
		return p.HelixRadius
	case FieldHelixHeight:
		return p.HelixHeight
	case FieldRotationSpeed:
		return p.RotationSpeed
	}
	return 0
}

// With returns a copy of p with f set to v. Segment counts are rounded.
func (p Params) With(f Field, v float64) Params {
	switch f {
	case FieldSegmentCount:
		p.SegmentCount = int(math.Round(v))
	case FieldHelixRadius:
		p.HelixRadius = v
	case FieldHelixHeight:
		p.HelixHeight = v
	case FieldRotationSpeed:
		p.RotationSpeed = v
	}
	return p
}

// Clamp returns p with every editable field inside its range.
func (p Params) Clamp(b Bounds) Params {
	for _, f := range Fields() {
		p = p.With(f, b.For(f).Clamp(p.Get(f)))
	}
	if !(p.ConnectionLength > 0) {
		p.ConnectionLength = DefaultConnectionLength
	}
	return p
}

// Validate reports the first field outside its range.
func (p Params) Validate(b Bounds) error {
	for _, f := range Fields() {
		r, v := b.For(f), p.Get(f)
		if !r.Contains(v) {
			return &FieldError{Field: f, Value: v, Range: r, Wrapped: ErrParameterBounds}
		}
	}
	if !(p.ConnectionLength > 0) {
		return fmt.Errorf("%w: connection_length=%g must be positive", ErrParameterBounds, p.ConnectionLength)
	}
	return nil
}

// Range is the slider range of one field.
type Range struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Step float64 `yaml:"step" json:"step"`
}

// Clamp pulls v into the range. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Fraction maps v onto [0, 1] across the range.
func (r Range) Fraction(v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}

// Bounds holds one Range per editable field.
type Bounds struct {
	SegmentCount  Range `yaml:"segment_count" json:"segment_count"`
	HelixRadius   Range `yaml:"helix_radius" json:"helix_radius"`
	HelixHeight   Range `yaml:"helix_height" json:"helix_height"`
	RotationSpeed Range `yaml:"rotation_speed" json:"rotation_speed"`
}

func DefaultBounds() Bounds {
	return Bounds{
		SegmentCount:  Range{Min: 4, Max: 200, Step: 1},
		HelixRadius:   Range{Min: 0.5, Max: 6, Step: 0.1},
		HelixHeight:   Range{Min: 0.05, Max: 1, Step: 0.01},
		RotationSpeed: Range{Min: -3, Max: 3, Step: 0.05},
	}
}

func (b Bounds) For(f Field) Range {
	switch f {
	case FieldSegmentCount:
		return b.SegmentCount
	case FieldHelixRadius:
		return b.HelixRadius
	case FieldHelixHeight:
		return b.HelixHeight
	case FieldRotationSpeed:
		return b.RotationSpeed
	}
	return Range{}
}

// Validate rejects empty ranges and non-positive lower limits on the
// fields that must stay positive.
func (b Bounds) Validate() error {
	for _, f := range Fields() {
		r := b.For(f)
		if r.Min > r.Max {
			return fmt.Errorf("%w: %s min %g > max %g", ErrInvalidBounds, f, r.Min, r.Max)
		}
		if r.Step <= 0 {
			return fmt.Errorf("%w: %s step must be positive", ErrInvalidBounds, f)
		}
		if f != FieldRotationSpeed && r.Min <= 0 {
			return fmt.Errorf("%w: %s min must be positive", ErrInvalidBounds, f)
		}
	}
	return nil
}
