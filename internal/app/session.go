package app

import (
	"time"

	"github.com/pkg/errors"

	"life/pkg/core"
)

// ErrOutsideGrid is returned for pointer positions that do not land on a cell.
var ErrOutsideGrid = errors.New("point outside grid")

type clearer interface {
	Clear()
}

// Session drives a core.Controller from front-end events: it paces ticks,
// maps pixels to cells and tracks the seed used for randomizing.
type Session struct {
	ctrl     core.Controller
	step     *core.FixedStep
	cellSize int
	seed     int64
	tickOnce bool
	newSeed  func() int64
}

// NewSession wraps ctrl, ticking at tps generations per second.
func NewSession(ctrl core.Controller, cellSize, tps int, seed int64) *Session {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Session{
		ctrl:     ctrl,
		step:     core.NewFixedStep(tps),
		cellSize: cellSize,
		seed:     seed,
		newSeed:  func() int64 { return time.Now().UnixNano() },
	}
}

// Controller returns the wrapped simulation.
func (s *Session) Controller() core.Controller { return s.ctrl }

// CellSize returns the edge length of a cell in pixels.
func (s *Session) CellSize() int { return s.cellSize }

// Seed returns the seed of the last randomization.
func (s *Session) Seed() int64 { return s.seed }

// BoardSize returns the board dimensions in pixels.
func (s *Session) BoardSize() (int, int) {
	size := s.ctrl.Size()
	return size.W * s.cellSize, size.H * s.cellSize
}

// SetClock replaces the pacing clock, mainly for tests.
func (s *Session) SetClock(now func() time.Time) { s.step.SetClock(now) }

// SetSeedSource replaces the seed generator used by Randomize.
func (s *Session) SetSeedSource(fn func() int64) { s.newSeed = fn }

// Update runs every tick that is due and any pending single step. It returns
// the number of generations advanced.
func (s *Session) Update() int {
	advanced := 0
	for due := s.step.Due(); due > 0; due-- {
		if s.ctrl.Tick() {
			advanced++
		}
	}
	if s.tickOnce {
		s.ctrl.Step()
		s.tickOnce = false
		advanced++
	}
	return advanced
}

// CellAt maps pixel coordinates to grid coordinates.
func (s *Session) CellAt(px, py int) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/s.cellSize, py/s.cellSize
	size := s.ctrl.Size()
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// ToggleAt flips the cell under the pixel (px, py).
func (s *Session) ToggleAt(px, py int) error {
	x, y, ok := s.CellAt(px, py)
	if !ok {
		return errors.Wrapf(ErrOutsideGrid, "[ToggleAt] pixel (%d,%d)", px, py)
	}
	return s.ctrl.Toggle(x, y)
}

// TogglePause flips the pause flag and returns the new value.
func (s *Session) TogglePause() bool {
	paused := !s.ctrl.Paused()
	s.ctrl.SetPaused(paused)
	return paused
}

// Resume clears the pause flag.
func (s *Session) Resume() { s.ctrl.SetPaused(false) }

// StepOnce requests a single generation on the next Update, even when paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// Randomize reseeds the board with a fresh seed and returns it.
func (s *Session) Randomize() int64 {
	s.seed = s.newSeed()
	s.ctrl.Randomize(s.seed)
	s.tickOnce = false
	return s.seed
}

// Reset reseeds the board with the current seed.
func (s *Session) Reset() {
	s.ctrl.Randomize(s.seed)
	s.tickOnce = false
}

// Clear empties the board when the simulation supports it.
func (s *Session) Clear() bool {
	c, ok := s.ctrl.(clearer)
	if ok {
		c.Clear()
		s.tickOnce = false
	}
	return ok
}
