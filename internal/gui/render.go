package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	connectorSides = 8
	sliderWidth    = 180
	panelRow       = 26
	panelMargin    = 30
)

func vec(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.colors.Bg)

	rl.BeginMode3D(a.camera)
	a.drawHelix()
	a.drawLabelPlate()
	rl.EndMode3D()

	a.drawLabelText()
	a.drawPanel()
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawHelix() {
	sphere := float32(a.cfg.Style.SphereRadius)
	for _, p := range a.scene.StrandA() {
		rl.DrawSphere(vec(a.scene.World(p.Position)), sphere, a.colors.StrandA)
	}
	for _, p := range a.scene.StrandB() {
		rl.DrawSphere(vec(a.scene.World(p.Position)), sphere, a.colors.StrandB)
	}

	rung := float32(a.cfg.Style.ConnectorRadius)
	for _, c := range a.scene.Connectors() {
		lo, hi := c.Endpoints()
		rl.DrawCylinderEx(vec(a.scene.World(lo)), vec(a.scene.World(hi)), rung, rung, connectorSides, a.colors.Rung)
	}
}

func (a *App) drawLabelPlate() {
	l := a.scene.Label()
	if l == nil || !a.hasTexture {
		return
	}
	rl.DrawBillboard(a.camera, a.labelTex, vec(a.scene.World(l.Anchor)), 2.0, rl.White)
}

// drawLabelText places the label at the screen projection of its anchor so
// it follows the rotation and the current surface size.
func (a *App) drawLabelText() {
	l := a.scene.Label()
	if l == nil || !a.hasFont {
		return
	}
	pos := rl.GetWorldToScreen(vec(a.scene.World(l.Anchor)), a.camera)
	size := float32(a.cfg.Label.Size)
	dims := rl.MeasureTextEx(a.labelFont, l.Text, size, 1)
	pos.X -= dims.X / 2
	pos.Y -= dims.Y / 2
	rl.DrawTextEx(a.labelFont, l.Text, pos, size, 1, a.colors.Label)
}

func (a *App) drawPanel() {
	x := int32(panelMargin)
	y := a.height - int32(panelMargin) - int32(len(a.panel.Sliders()))*panelRow
	for _, s := range a.panel.Sliders() {
		col := a.colors.Text
		prefix := "  "
		if s.Selected {
			col, prefix = a.colors.Select, "> "
		}
		a.drawText(fmt.Sprintf("%s%-9s", prefix, s.Label), x, y, 16, col)

		trackX := x + 130
		rl.DrawRectangle(trackX, y+7, sliderWidth, 3, a.colors.Track)
		knob := trackX + int32(s.Fraction*float64(sliderWidth))
		rl.DrawRectangle(knob-3, y+2, 6, 13, col)
		a.drawText(s.Text(), trackX+sliderWidth+14, y, 16, col)
		y += panelRow
	}
}

func (a *App) drawHUD() {
	a.drawText("helix", panelMargin, panelMargin, 24, a.colors.Select)
	a.drawText(fmt.Sprintf(":: %d primitives", a.scene.Len()), 110, 34, 16, a.colors.Text)

	status, col := "ROTATING", a.colors.Select
	if a.paused {
		status, col = "PAUSED", a.colors.TextDim
	}
	a.drawText(status, a.width-140, panelMargin, 16, col)

	if a.status != "" {
		a.drawText(a.status, panelMargin, 60, 14, a.colors.TextDim)
	}
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), a.width-90, a.height-panelMargin, 14, a.colors.TextDim)
	a.drawText("[ARROWS] ADJUST  [SHIFT] COARSE  [1-9] PRESET  [P] PAUSE  [Q] QUIT",
		a.width/2-220, a.height-panelMargin, 14, a.colors.TextDim)
}

func (a *App) drawText(text string, x, y int32, size int, color rl.Color) {
	rl.DrawTextEx(rl.GetFontDefault(), text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
