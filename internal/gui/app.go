package gui

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/helix/internal/assets"
	"github.com/san-kum/helix/internal/config"
	"github.com/san-kum/helix/internal/helix"
	"github.com/san-kum/helix/internal/panel"
)

type Options struct {
	Logger *zap.Logger
	// Reloads delivers configs from a file watcher; nil disables reload.
	Reloads <-chan *config.Config
}

type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *helix.Store
	scene   *helix.Scene
	panel   *panel.Panel
	spin    *helix.Spinner
	camera  rl.Camera3D
	colors  palette
	presets []string

	assets  <-chan assets.Result
	reloads <-chan *config.Config

	labelFont  rl.Font
	labelTex   rl.Texture2D
	hasFont    bool
	hasTexture bool

	width, height int32
	paused        bool
	quit          bool
	status        string
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// NewApp wires store, scene and panel and starts loading the label assets.
// It must be called after the window exists.
func NewApp(ctx context.Context, cfg *config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := helix.NewStore(cfg.Params, cfg.Bounds)
	a := &App{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		scene:   helix.NewScene(),
		panel:   panel.New(store, config.Presets),
		spin:    helix.NewSpinner(nil),
		colors:  paletteFor(cfg.Style.Theme),
		presets: config.ListPresets(),
		reloads: opts.Reloads,
		width:   int32(cfg.Window.Width),
		height:  int32(cfg.Window.Height),
	}
	a.scene.Bind(store)
	store.Subscribe(func(c helix.Change) {
		if c.Field.Rebuilds() {
			a.frame()
			a.logger.Debug("helix rebuilt",
				zap.Stringer("field", c.Field),
				zap.Int("primitives", a.scene.Len()))
		}
	})
	a.frame()

	if cfg.Label.Font != "" {
		a.assets = assets.Load(ctx, cfg.Label.Font, cfg.Label.Texture)
	}
	return a
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, cfg *config.Config, opts Options) {
	initWindow(cfg)
	defer rl.CloseWindow()

	a := NewApp(ctx, cfg, opts)
	defer a.unload()
	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// frame points the camera at the middle of the helix from a distance that
// keeps it in view.
func (a *App) frame() {
	top := float32(a.scene.Top())
	radius := float32(a.store.Params().HelixRadius)
	dist := top*1.1 + radius*4 + 5
	mid := top / 2
	a.camera = rl.NewCamera3D(
		rl.NewVector3(0, mid+dist*0.25, dist),
		rl.NewVector3(0, mid, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
	if l := a.scene.Label(); l != nil {
		l.Anchor = r3.Vec{Y: a.scene.Top() + a.cfg.Label.OffsetY}
	}
}

func (a *App) Update() {
	a.pollReload()
	a.pollAssets()

	if rl.IsWindowResized() {
		a.width, a.height = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		a.logger.Debug("window resized", zap.Int32("width", a.width), zap.Int32("height", a.height))
	}

	a.handleInput()

	if !a.paused {
		a.spin.Tick(a.scene, a.store.Params().RotationSpeed)
	}
}

func (a *App) pollReload() {
	if a.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-a.reloads:
		if !ok {
			a.reloads = nil
			return
		}
		changed := a.store.Replace(cfg.Params)
		a.status = fmt.Sprintf("config reloaded (%d changed)", len(changed))
	default:
	}
}

// pollAssets picks up the label assets once the loader finishes. GPU
// resources are created here because they must live on the window thread.
func (a *App) pollAssets() {
	if a.assets == nil {
		return
	}
	var res assets.Result
	select {
	case res = <-a.assets:
		a.assets = nil
	default:
		return
	}
	if res.Err != nil {
		a.logger.Warn("label disabled", zap.Error(res.Err))
		return
	}

	a.labelFont = rl.LoadFontFromMemory(res.FontType, res.Font, int32(a.cfg.Label.Size), nil)
	rl.SetTextureFilter(a.labelFont.Texture, rl.FilterBilinear)
	a.hasFont = true

	if len(res.Texture) > 0 {
		img := rl.LoadImageFromMemory(res.TextureType, res.Texture, int32(len(res.Texture)))
		a.labelTex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		a.hasTexture = true
	}

	a.scene.SetLabel(&helix.Label{Text: a.cfg.Label.Text})
	a.frame()
	a.logger.Info("label loaded", zap.String("font", a.cfg.Label.Font), zap.Bool("texture", a.hasTexture))
}

func (a *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}
	coarse := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if pressed(rl.KeyDown) || pressed(rl.KeyJ) {
		a.panel.Next()
	}
	if pressed(rl.KeyUp) || pressed(rl.KeyK) {
		a.panel.Prev()
	}
	if pressed(rl.KeyRight) || pressed(rl.KeyL) {
		a.panel.Increase(coarse)
	}
	if pressed(rl.KeyLeft) || pressed(rl.KeyH) {
		a.panel.Decrease(coarse)
	}
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	for i := int32(0); i < 9; i++ {
		if rl.IsKeyPressed(rl.KeyOne+i) && int(i) < len(a.presets) {
			name := a.presets[i]
			if err := a.panel.ApplyPreset(name); err != nil {
				a.status = err.Error()
			} else {
				a.status = "preset " + name
			}
		}
	}
}

func pressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

func (a *App) unload() {
	if a.hasFont {
		rl.UnloadFont(a.labelFont)
	}
	if a.hasTexture {
		rl.UnloadTexture(a.labelTex)
	}
}
