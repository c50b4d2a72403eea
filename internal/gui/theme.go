package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type palette struct {
	Bg, StrandA, StrandB, Rung, Label rl.Color
	Text, TextDim, Select, Track      rl.Color
}

var palettes = map[string]palette{
	"mono": {
		Bg:      rl.NewColor(10, 10, 10, 255),
		StrandA: rl.NewColor(255, 255, 255, 255),
		StrandB: rl.NewColor(180, 180, 180, 255),
		Rung:    rl.NewColor(90, 90, 90, 255),
		Label:   rl.NewColor(255, 255, 255, 255),
		Text:    rl.NewColor(140, 140, 140, 255),
		TextDim: rl.NewColor(60, 60, 60, 255),
		Select:  rl.NewColor(255, 255, 255, 255),
		Track:   rl.NewColor(30, 30, 30, 255),
	},
	"retro": {
		Bg:      rl.NewColor(0, 17, 0, 255),
		StrandA: rl.NewColor(0, 255, 0, 255),
		StrandB: rl.NewColor(0, 204, 0, 255),
		Rung:    rl.NewColor(136, 255, 136, 255),
		Label:   rl.NewColor(136, 255, 136, 255),
		Text:    rl.NewColor(0, 200, 0, 255),
		TextDim: rl.NewColor(0, 85, 0, 255),
		Select:  rl.NewColor(136, 255, 136, 255),
		Track:   rl.NewColor(0, 40, 0, 255),
	},
	"ocean": {
		Bg:      rl.NewColor(0, 26, 51, 255),
		StrandA: rl.NewColor(0, 119, 190, 255),
		StrandB: rl.NewColor(0, 168, 204, 255),
		Rung:    rl.NewColor(255, 215, 0, 255),
		Label:   rl.NewColor(224, 240, 255, 255),
		Text:    rl.NewColor(224, 240, 255, 255),
		TextDim: rl.NewColor(68, 136, 170, 255),
		Select:  rl.NewColor(255, 215, 0, 255),
		Track:   rl.NewColor(0, 50, 90, 255),
	},
	"sunset": {
		Bg:      rl.NewColor(45, 27, 46, 255),
		StrandA: rl.NewColor(255, 107, 107, 255),
		StrandB: rl.NewColor(254, 202, 87, 255),
		Rung:    rl.NewColor(255, 159, 243, 255),
		Label:   rl.NewColor(255, 245, 245, 255),
		Text:    rl.NewColor(255, 245, 245, 255),
		TextDim: rl.NewColor(139, 107, 140, 255),
		Select:  rl.NewColor(255, 159, 243, 255),
		Track:   rl.NewColor(70, 45, 72, 255),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["mono"]
}
