package ebitenhost

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/panzoom"
)

// View draws the scene through the camera every frame.
type View interface {
	Draw(screen *ebiten.Image, cam *panzoom.Camera)
}

// ViewFunc adapts a function to View.
type ViewFunc func(screen *ebiten.Image, cam *panzoom.Camera)

func (f ViewFunc) Draw(screen *ebiten.Image, cam *panzoom.Camera) { f(screen, cam) }

// RunConfig holds window and input settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS prints FPS, TPS and the camera zoom in the top-left corner.
	ShowFPS bool
	// Config tunes the tracker and camera. The zero value uses
	// panzoom.DefaultConfig.
	Config panzoom.Config
	// Logger receives tracker diagnostics. Nil builds one from Config.
	Logger *slog.Logger
	// OnTap is called with world coordinates for every tap or click.
	OnTap func(worldX, worldY float64)
}

// Game is an ebiten.Game that routes input through a Tracker into a Camera
// and draws a View.
type Game struct {
	view    View
	camera  *panzoom.Camera
	tracker *panzoom.Tracker
	source  *Source
	showFPS bool
	focused bool
}

// NewGame wires Source, Tracker and Camera for view.
func NewGame(view View, cfg RunConfig) (*Game, error) {
	pc := cfg.Config
	if pc == (panzoom.Config{}) {
		pc = panzoom.DefaultConfig()
	}
	if err := pc.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		var err error
		if logger, err = panzoom.NewLogger(pc.LogOptions()); err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	}

	cam := panzoom.NewCameraFromConfig(panzoom.Rect{
		Width: float64(cfg.Width), Height: float64(cfg.Height),
	}, pc)
	cam.OnTap = cfg.OnTap
	tracker := panzoom.NewTracker(cam, panzoom.WithConfig(pc), panzoom.WithLogger(logger))

	return &Game{
		view:    view,
		camera:  cam,
		tracker: tracker,
		source:  NewSource(tracker, pc.ClickSlop),
		showFPS: cfg.ShowFPS,
		focused: true,
	}, nil
}

// Camera returns the camera driven by input.
func (g *Game) Camera() *panzoom.Camera { return g.camera }

// Tracker returns the gesture tracker.
func (g *Game) Tracker() *panzoom.Tracker { return g.tracker }

// Update polls input and advances camera animations.
func (g *Game) Update() error {
	focused := ebiten.IsFocused()
	if !focused && g.focused {
		g.source.Reset()
	}
	g.focused = focused
	if focused {
		g.source.Poll()
	}
	g.camera.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Draw renders the view and the optional FPS overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.camera)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nZoom: %.2f",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.camera.Zoom))
	}
}

// Layout keeps the camera viewport equal to the window. The window is the
// whole surface, so the surface offset stays zero.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.SetViewport(panzoom.Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs view until the window is closed.
func Run(view View, cfg RunConfig) error {
	g, err := NewGame(view, cfg)
	if err != nil {
		return err
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
