package life

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life/pkg/core"
)

// ErrOutOfBounds is returned when grid coordinates fall outside the board.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	w, h int
	cur  *core.Grid
	nxt  *core.Grid

	rule       Rule
	seed       int64
	density    float64
	workers    int
	paused     bool
	generation int
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided
// options. All cells start dead; call Reset or Randomize to seed the board.
func NewWithConfig(cfg Config) *Life {
	cur := core.NewGrid(cfg.Width, cfg.Height)
	return &Life{
		w:       cur.W,
		h:       cur.H,
		cur:     cur,
		nxt:     core.NewGrid(cur.W, cur.H),
		rule:    cfg.Rule,
		seed:    cfg.Seed,
		density: cfg.Density,
		workers: cfg.Workers,
		paused:  cfg.Paused,
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []core.Cell { return l.cur.Cells() }

// Rule returns the transition rule in use.
func (l *Life) Rule() Rule { return l.rule }

// Seed returns the seed of the last randomization.
func (l *Life) Seed() int64 { return l.seed }

// Generation returns the number of steps since the board was last seeded.
func (l *Life) Generation() int { return l.generation }

// Population counts the live cells.
func (l *Life) Population() int { return l.cur.Population() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) { l.Randomize(seed) }

// Randomize assigns every cell a random state and copies it into the next
// buffer, so a draw right after never sees a half-applied transition.
func (l *Life) Randomize(seed int64) {
	l.seed = seed
	core.FillRandom(core.NewRNG(seed).Source(), l.cur.Cells(), l.density)
	copy(l.nxt.Cells(), l.cur.Cells())
	l.generation = 0
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.nxt.Clear()
	l.generation = 0
}

// SetPaused gates whether Tick advances the board.
func (l *Life) SetPaused(paused bool) { l.paused = paused }

// Paused reports whether Tick is currently a no-op.
func (l *Life) Paused() bool { return l.paused }

// Tick advances one generation unless paused.
func (l *Life) Tick() bool {
	if l.paused {
		return false
	}
	l.Step()
	return true
}

// Step advances the simulation by one generation regardless of the pause flag.
func (l *Life) Step() {
	if l.workers > 1 && l.h > 1 {
		l.stepParallel()
	} else {
		l.stepRows(0, l.h)
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

func (l *Life) stepRows(y0, y1 int) {
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < l.w; x++ {
			idx := l.cur.Index(x, y)
			nxt[idx] = l.rule.Next(cur[idx], l.NeighborCount(x, y))
		}
	}
}

// stepParallel evaluates disjoint row strips of the next buffer. Strips only
// read cur, so the result matches the serial scan.
func (l *Life) stepParallel() {
	var (
		eg      errgroup.Group
		workers = min(l.workers, l.h)
		rows    = (l.h + workers - 1) / workers
	)
	for start := 0; start < l.h; start += rows {
		end := min(start+rows, l.h)
		eg.Go(func() error {
			l.stepRows(start, end)
			return nil
		})
	}
	_ = eg.Wait()
}

// NeighborCount returns the number of live cells among the eight surrounding
// (x, y), wrapping both axes.
func (l *Life) NeighborCount(x, y int) int {
	cells := l.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := l.cur.Wrap(x+dx, y+dy)
			if cells[l.cur.Index(nx, ny)] {
				n++
			}
		}
	}
	return n
}

// NeighborCounts fills dst with the neighbour count of every cell in
// row-major order and returns it, reallocating when dst is too small.
func (l *Life) NeighborCounts(dst []uint8) []uint8 {
	total := l.w * l.h
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			dst[l.cur.Index(x, y)] = uint8(l.NeighborCount(x, y))
		}
	}
	return dst
}

// Get returns the cell at (x, y), wrapping out-of-range coordinates.
func (l *Life) Get(x, y int) core.Cell {
	return l.cur.Get(x, y)
}

// Set stores c at (x, y) in both buffers.
func (l *Life) Set(x, y int, c core.Cell) error {
	if !l.cur.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) outside %dx%d", x, y, l.w, l.h)
	}
	l.cur.Set(x, y, c)
	l.nxt.Set(x, y, c)
	return nil
}

// Toggle flips the cell at (x, y). Coordinates outside the board are
// rejected rather than wrapped.
func (l *Life) Toggle(x, y int) error {
	if !l.cur.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Toggle] (%d,%d) outside %dx%d", x, y, l.w, l.h)
	}
	c := l.cur.Get(x, y).Flip()
	l.cur.Set(x, y, c)
	l.nxt.Set(x, y, c)
	return nil
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
