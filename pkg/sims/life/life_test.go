package life

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"life/pkg/core"
)

func expectAlive(t *testing.T, life *Life, label string, alive map[[2]int]bool) {
	t.Helper()
	size := life.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			got := bool(life.Cells()[y*size.W+x])
			if got != alive[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, got, alive[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if err := life.Set(p[0], p[1], core.Alive); err != nil {
			t.Fatal(err)
		}
	}

	life.Step()
	expectAlive(t, life, "after first step", map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	life.Step()
	expectAlive(t, life, "after second step", map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlinkerAcrossEdgeWraps(t *testing.T) {
	life := New(5, 5)
	life.Stamp(Blinker, 4, 2)
	expectAlive(t, life, "stamped", map[[2]int]bool{
		{4, 2}: true,
		{0, 2}: true,
		{1, 2}: true,
	})

	life.Step()
	expectAlive(t, life, "after step", map[[2]int]bool{
		{0, 1}: true,
		{0, 2}: true,
		{0, 3}: true,
	})
}

func TestAllDeadStaysDead(t *testing.T) {
	life := New(3, 3)
	life.Step()
	if got := life.Population(); got != 0 {
		t.Fatalf("expected an empty board to stay empty, got %d live cells", got)
	}
}

func TestConwayTransitions(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantSurvive := n == 2 || n == 3
		if got := Conway.Next(core.Alive, n); bool(got) != wantSurvive {
			t.Fatalf("alive cell with %d neighbours: got %v, expected %v", n, got, wantSurvive)
		}
		wantBirth := n == 3
		if got := Conway.Next(core.Dead, n); bool(got) != wantBirth {
			t.Fatalf("dead cell with %d neighbours: got %v, expected %v", n, got, wantBirth)
		}
	}
}

func TestNeighborCountWrapsCorners(t *testing.T) {
	life := New(4, 4)
	for _, p := range [][2]int{{3, 3}, {3, 0}, {0, 3}, {1, 1}, {2, 2}} {
		if err := life.Set(p[0], p[1], core.Alive); err != nil {
			t.Fatal(err)
		}
	}
	if got := life.NeighborCount(0, 0); got != 4 {
		t.Fatalf("NeighborCount(0,0) = %d, expected 4", got)
	}

	counts := life.NeighborCounts(nil)
	if len(counts) != 16 {
		t.Fatalf("expected 16 counts, got %d", len(counts))
	}
	if counts[0] != 4 {
		t.Fatalf("NeighborCounts[0] = %d, expected 4", counts[0])
	}
}

func TestNeighborCountExcludesSelf(t *testing.T) {
	life := New(5, 5)
	if err := life.Set(2, 2, core.Alive); err != nil {
		t.Fatal(err)
	}
	if got := life.NeighborCount(2, 2); got != 0 {
		t.Fatalf("a lone cell must not count itself, got %d", got)
	}
}

func TestRandomizeSyncsBuffers(t *testing.T) {
	life := New(16, 12)
	life.Randomize(11)
	if !slices.Equal(life.cur.Cells(), life.nxt.Cells()) {
		t.Fatal("current and next buffers differ after Randomize")
	}
	if life.Population() == 0 {
		t.Fatal("expected some live cells at density 0.5")
	}

	life.Step()
	life.Step()
	life.Randomize(12)
	if !slices.Equal(life.cur.Cells(), life.nxt.Cells()) {
		t.Fatal("current and next buffers differ after Randomize mid-run")
	}
	if life.Generation() != 0 {
		t.Fatalf("expected generation reset, got %d", life.Generation())
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(20, 20)
	b := New(20, 20)
	a.Reset(99)
	b.Reset(99)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Reset with the same seed should be deterministic")
	}
	if a.Seed() != 99 {
		t.Fatalf("expected seed 99, got %d", a.Seed())
	}
}

func TestToggleFlipsOnlyTarget(t *testing.T) {
	life := New(6, 4)
	life.Randomize(3)
	before := slices.Clone(life.Cells())

	if err := life.Toggle(4, 1); err != nil {
		t.Fatal(err)
	}
	after := life.Cells()
	for i := range before {
		if i == 1*6+4 {
			if after[i] == before[i] {
				t.Fatal("target cell was not flipped")
			}
			continue
		}
		if after[i] != before[i] {
			t.Fatalf("cell %d changed but was not targeted", i)
		}
	}
	if life.nxt.Cells()[1*6+4] != after[1*6+4] {
		t.Fatal("toggle must be mirrored into the next buffer")
	}

	if err := life.Toggle(4, 1); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, life.Cells()) {
		t.Fatal("toggling twice should restore the board")
	}
}

func TestToggleRejectsOutOfBounds(t *testing.T) {
	life := New(4, 4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		err := life.Toggle(p[0], p[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) err = %v, expected ErrOutOfBounds", p[0], p[1], err)
		}
	}
	if life.Population() != 0 {
		t.Fatal("rejected toggles must not modify the board")
	}
	if err := life.Set(4, 0, core.Alive); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Set out of range err = %v, expected ErrOutOfBounds", err)
	}
}

func TestTickRespectsPause(t *testing.T) {
	life := New(5, 5)
	life.Stamp(Blinker, 1, 2)
	before := slices.Clone(life.Cells())

	life.SetPaused(true)
	if life.Tick() {
		t.Fatal("Tick reported progress while paused")
	}
	if !slices.Equal(before, life.Cells()) || life.Generation() != 0 {
		t.Fatal("paused Tick must not change the board")
	}

	life.SetPaused(false)
	if !life.Tick() {
		t.Fatal("Tick should advance when running")
	}
	if life.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", life.Generation())
	}
	if slices.Equal(before, life.Cells()) {
		t.Fatal("blinker should change phase after a tick")
	}
}

func TestParallelStepMatchesSerial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 37
	cfg.Height = 23

	serial := NewWithConfig(cfg)
	cfg.Workers = 4
	parallel := NewWithConfig(cfg)

	serial.Randomize(2024)
	parallel.Randomize(2024)
	for i := 0; i < 12; i++ {
		serial.Step()
		parallel.Step()
		if !slices.Equal(serial.Cells(), parallel.Cells()) {
			t.Fatalf("parallel step diverged at generation %d", i+1)
		}
	}
}

func TestParallelStepMoreWorkersThanRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.Workers = 16
	life := NewWithConfig(cfg)
	life.Stamp(Blinker, 1, 2)

	life.Step()
	expectAlive(t, life, "after step", map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestGliderTranslates(t *testing.T) {
	life := New(8, 8)
	life.Stamp(Glider, 1, 1)
	for i := 0; i < 4; i++ {
		life.Step()
	}

	want := New(8, 8)
	want.Stamp(Glider, 2, 2)
	if !slices.Equal(want.Cells(), life.Cells()) {
		t.Fatal("glider should move one cell diagonally every four generations")
	}
}

func TestClear(t *testing.T) {
	life := New(10, 10)
	life.Randomize(1)
	life.Step()
	life.Clear()
	if life.Population() != 0 || life.Generation() != 0 {
		t.Fatalf("expected empty board at generation 0, got population %d generation %d",
			life.Population(), life.Generation())
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life should register itself")
	}
	sim := factory(map[string]string{"w": "12", "h": "7"})
	if got := sim.Size(); got.W != 12 || got.H != 7 {
		t.Fatalf("expected 12x7, got %dx%d", got.W, got.H)
	}
	if _, ok := sim.(core.Controller); !ok {
		t.Fatal("life should satisfy core.Controller")
	}
}

func TestDensityParameter(t *testing.T) {
	life := New(10, 10)
	if life.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if !life.SetFloatParameter("density", 2) {
		t.Fatal("density should be adjustable")
	}
	life.Randomize(5)
	if got := life.Population(); got != 100 {
		t.Fatalf("density clamped to 1 should fill the board, got %d", got)
	}

	param, ok := life.Parameters().Lookup("population")
	if !ok || param.Value != "100" {
		t.Fatalf("expected population parameter 100, got %+v (found=%v)", param, ok)
	}
	if rule, _ := life.Parameters().Lookup("rule"); rule.Value != "B3/S23" {
		t.Fatalf("expected rule B3/S23, got %q", rule.Value)
	}
}
