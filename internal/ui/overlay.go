//go:build ebiten

package ui

import (
	"image/color"

	"life/internal/render"
	"life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type neighborCounter interface {
	NeighborCounts(dst []uint8) []uint8
}

// Overlay draws optional visuals on top of the board: grid lines, a
// neighbour-count heat map and an outline of the hovered cell.
type Overlay struct {
	sim      core.Sim
	cellSize int
	showGrid bool
	showHeat bool

	heatImg    *ebiten.Image
	heatBuf    []byte
	heatCounts []uint8
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, cellSize int) *Overlay {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Overlay{sim: sim, cellSize: cellSize, showGrid: cellSize >= 6}
}

// Update toggles overlay layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showHeat {
		if counter, ok := o.sim.(neighborCounter); ok {
			o.drawHeat(screen, counter, size)
		}
	}
	if o.showGrid {
		o.drawGrid(screen, size)
	}
	o.drawHover(screen, size)
}

func (o *Overlay) drawHeat(screen *ebiten.Image, counter neighborCounter, size core.Size) {
	total := size.W * size.H
	if o.heatImg == nil || o.heatImg.Bounds().Dx() != size.W || o.heatImg.Bounds().Dy() != size.H {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*total)
	}
	o.heatCounts = counter.NeighborCounts(o.heatCounts)
	fillHeatRGBA(o.heatBuf, o.heatCounts, color.RGBA{R: 235, G: 90, B: 40, A: 255})
	o.heatImg.WritePixels(o.heatBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.cellSize), float64(o.cellSize))
	screen.DrawImage(o.heatImg, op)
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size) {
	lineColor := color.RGBA{R: 190, G: 190, B: 190, A: 255}
	w := float32(size.W * o.cellSize)
	h := float32(size.H * o.cellSize)
	for x := 1; x < size.W; x++ {
		fx := float32(x * o.cellSize)
		vector.StrokeLine(screen, fx, 0, fx, h, 1, lineColor, false)
	}
	for y := 1; y < size.H; y++ {
		fy := float32(y * o.cellSize)
		vector.StrokeLine(screen, 0, fy, w, fy, 1, lineColor, false)
	}
}

func (o *Overlay) drawHover(screen *ebiten.Image, size core.Size) {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return
	}
	x, y := mx/o.cellSize, my/o.cellSize
	if x >= size.W || y >= size.H {
		return
	}
	r := render.CellRect(x, y, o.cellSize)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, color.RGBA{R: 40, G: 120, B: 220, A: 255}, false)
}
