//go:build ebiten

package app

import (
	"image/color"
	"log"

	"life/internal/render"
	"life/internal/ui"
	"life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a core controller to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	aliveColor color.Color
	deadColor  color.Color
}

// New constructs a Game for the provided simulation.
func New(ctrl core.Controller, cfg *Config) *Game {
	size := ctrl.Size()
	g := &Game{
		session:    NewSession(ctrl, cfg.CellSize, cfg.TPS, cfg.Seed),
		painter:    render.NewGridPainter(size.W, size.H),
		overlay:    ui.NewOverlay(ctrl, cfg.CellSize),
		aliveColor: color.Black,
		deadColor:  color.White,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(ctrl, hudWidth)
	}
	return g
}

// WindowSize returns the initial window size in pixels.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyDigit5) {
		log.Printf("randomized board with seed %d", g.session.Randomize())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}

	boardW, _ := g.session.BoardSize()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < boardW {
			if err := g.session.ToggleAt(mx, my); err != nil {
				log.Printf("ignored click: %v", err)
			}
		}
	}

	g.overlay.Update()
	g.hud.Update(boardW)

	g.session.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	ctrl := g.session.Controller()
	g.painter.Blit(screen, ctrl.Cells(), g.aliveColor, g.deadColor, g.session.CellSize())
	g.overlay.Draw(screen)
	boardW, _ := g.session.BoardSize()
	g.hud.Draw(screen, boardW, g.session.CellSize())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.session.BoardSize()
	if g.hud != nil {
		w += hudWidth
	}
	return w, h
}
