package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/helix/internal/config"
	"github.com/san-kum/helix/internal/helix"
	"github.com/san-kum/helix/internal/panel"
)

const (
	panelLines  = 8
	sliderWidth = 24
	minCanvasW  = 20
	minCanvasH  = 6
)

type Options struct {
	Config  *config.Config
	Presets []string
	// Reloads delivers configs from a file watcher; nil disables reload.
	Reloads <-chan *config.Config
	Now     func() time.Time
}

// Model is the terminal front end: a braille helix above a slider panel.
type Model struct {
	store   *helix.Store
	scene   *helix.Scene
	panel   *panel.Panel
	spin    *helix.Spinner
	cam     *Camera
	wire    *Wireframe
	canvas  *Canvas
	theme   Theme
	styles  styles
	presets []string
	reloads <-chan *config.Config
	fps     int
	paused  bool
	status  string
	width   int
	height  int
}

type tickMsg time.Time

type reloadMsg struct{ cfg *config.Config }

func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	store := helix.NewStore(cfg.Params, cfg.Bounds)
	scene := helix.NewScene()
	scene.Bind(store)
	if cfg.Label.Text != "" {
		scene.SetLabel(&helix.Label{Text: cfg.Label.Text})
	}

	m := &Model{
		store:   store,
		scene:   scene,
		panel:   panel.New(store, config.Presets),
		spin:    helix.NewSpinner(opts.Now),
		cam:     NewCamera(),
		wire:    NewWireframe(),
		canvas:  NewCanvas(60, 16),
		theme:   GetTheme(cfg.Style.Theme),
		presets: opts.Presets,
		reloads: opts.Reloads,
		fps:     cfg.Window.FPS,
		width:   80,
		height:  24,
	}
	if m.presets == nil {
		m.presets = config.ListPresets()
	}
	m.styles = newStyles(m.theme)
	m.resize(m.width, m.height)
	return m
}

func (m *Model) Store() *helix.Store { return m.store }
func (m *Model) Scene() *helix.Scene { return m.scene }
func (m *Model) Canvas() *Canvas     { return m.canvas }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitReload())
}

func (m *Model) tick() tea.Cmd {
	fps := m.fps
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) waitReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg{cfg}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.Frame()
		return m, m.tick()
	case reloadMsg:
		changed := m.store.Replace(msg.cfg.Params)
		m.status = fmt.Sprintf("config reloaded (%d changed)", len(changed))
		return m, m.waitReload()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

// Frame advances rotation and redraws the canvas.
func (m *Model) Frame() {
	if !m.paused {
		m.spin.Tick(m.scene, m.store.Params().RotationSpeed)
	}
	m.cam.Fit(m.scene, m.store.Params().HelixRadius)
	m.canvas.Clear()
	m.wire.Clear()
	Render3D(m.canvas, m.wire.AddScene(m.scene), m.cam)
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "up", "k":
		m.panel.Prev()
	case "down", "j":
		m.panel.Next()
	case "left", "h":
		m.panel.Decrease(false)
	case "right", "l":
		m.panel.Increase(false)
	case "shift+left", "H":
		m.panel.Decrease(true)
	case "shift+right", "L":
		m.panel.Increase(true)
	case "+", "=":
		m.cam.ZoomIn()
	case "-":
		m.cam.ZoomOut()
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
		m.status = "theme " + m.theme.Name
	case "p", " ":
		m.paused = !m.paused
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.applyPreset(int(key[0] - '1'))
		}
	}
	return nil
}

func (m *Model) applyPreset(i int) {
	if i >= len(m.presets) {
		return
	}
	name := m.presets[i]
	if err := m.panel.ApplyPreset(name); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "preset " + name
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cw := max(w-2, minCanvasW)
	ch := max(h-panelLines-2, minCanvasH)
	m.canvas.Resize(cw, ch)
}

func (m *Model) View() string {
	var b strings.Builder

	title := m.styles.title.Render("helix")
	state := m.styles.muted.Render(fmt.Sprintf(":: %d primitives  rot %.2f", m.scene.Len(), m.scene.Rotation()))
	if m.paused {
		state += m.styles.accent.Render("  PAUSED")
	}
	b.WriteString(title + " " + state + "\n")
	b.WriteString(m.styles.helix.Render(m.canvas.String()))
	b.WriteString("\n")
	if l := m.scene.Label(); l != nil {
		b.WriteString(m.styles.accent.Render(l.Text) + "\n")
	}
	b.WriteString(m.styles.renderPanel(m.panel.Sliders(), sliderWidth))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.text.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.muted.Render("↑↓ select  ←→ adjust  HL coarse  1-9 presets  t theme  p pause  q quit"))
	return b.String()
}

// Run starts the terminal front end and blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}
