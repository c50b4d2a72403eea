package config

import (
	"sort"

	"github.com/san-kum/helix/internal/helix"
)

var Presets = map[string]helix.Params{
	"classic": helix.DefaultParams(),
	"tight": {
		SegmentCount: 120, HelixRadius: 1.2, HelixHeight: 0.12, RotationSpeed: 0.8,
		ConnectionLength: 2.4,
	},
	"wide": {
		SegmentCount: 30, HelixRadius: 5, HelixHeight: 0.4, RotationSpeed: 0.3,
		ConnectionLength: 10,
	},
	"tall": {
		SegmentCount: 200, HelixRadius: 2, HelixHeight: 0.6, RotationSpeed: 0.5,
		ConnectionLength: 4,
	},
	"still": {
		SegmentCount: 40, HelixRadius: 2, HelixHeight: 0.3, RotationSpeed: 0,
		ConnectionLength: 4,
	},
	"reverse": {
		SegmentCount: 40, HelixRadius: 2, HelixHeight: 0.3, RotationSpeed: -1,
		ConnectionLength: 4,
	},
}

func GetPreset(name string) (helix.Params, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names in stable order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
