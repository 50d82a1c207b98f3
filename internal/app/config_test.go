package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"life/pkg/sims/life"
)

func TestNewConfigIsValid(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("life", []string{"-w", "40", "-h", "30", "-cell", "8", "-tps", "15", "-rule", "B36/S23", "-paused=false"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 30 || cfg.CellSize != 8 || cfg.TPS != 15 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Rule != "B36/S23" || cfg.Paused {
		t.Fatalf("unexpected rule or pause state %+v", cfg)
	}
}

func TestParseConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	data := []byte(`{"width": 64, "height": 48, "cell_size": 6, "tps": 20, "density": 0.3}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse("life", []string{"-config", path, "-h", "10"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.CellSize != 6 || cfg.TPS != 20 || cfg.Density != 0.3 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Height != 10 {
		t.Fatalf("explicit flag should override the file, got height %d", cfg.Height)
	}
	if cfg.Sim != "life" || cfg.Rule != "B3/S23" {
		t.Fatalf("fields absent from the file should keep defaults: %+v", cfg)
	}
}

func TestParseExtraFlags(t *testing.T) {
	var runs int
	_, err := Parse("survey", []string{"-runs", "7"}, func(fs *flag.FlagSet) {
		fs.IntVar(&runs, "runs", 1, "runs")
	})
	if err != nil {
		t.Fatal(err)
	}
	if runs != 7 {
		t.Fatalf("expected extra flag to be parsed, got %d", runs)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("life", []string{"-config", filepath.Join(t.TempDir(), "missing.json")}); err == nil {
		t.Fatal("expected an error for a missing config file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse("life", []string{"-config", bad}); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}

	if _, err := Parse("life", []string{"-unknown"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}

	_, err := Parse("life", []string{"-h", "x"})
	if err == nil {
		t.Fatal("expected an error for a non-numeric height")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"empty sim":     func(c *Config) { c.Sim = "" },
		"zero width":    func(c *Config) { c.Width = 0 },
		"zero cell":     func(c *Config) { c.CellSize = 0 },
		"zero tps":      func(c *Config) { c.TPS = 0 },
		"high density":  func(c *Config) { c.Density = 1.5 },
		"zero workers":  func(c *Config) { c.Workers = 0 },
		"bad rule":      func(c *Config) { c.Rule = "B9/S23" },
		"negative dims": func(c *Config) { c.Height = -4 },
	}
	for name, mutate := range cases {
		c := NewConfig()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", name)
		}
	}
}

func TestSimConfigRoundTrip(t *testing.T) {
	c := NewConfig()
	c.Width = 33
	c.Height = 21
	c.Seed = -9
	c.Density = 0.35
	c.Rule = "B36/S23"
	c.Workers = 3
	c.Paused = false

	got := life.FromMap(c.SimConfig())
	if got.Width != 33 || got.Height != 21 || got.Seed != -9 || got.Density != 0.35 {
		t.Fatalf("unexpected life config %+v", got)
	}
	if got.Rule.String() != "B36/S23" || got.Workers != 3 || got.Paused {
		t.Fatalf("unexpected life config %+v", got)
	}
}

func TestLoadFileWrapsErrors(t *testing.T) {
	err := NewConfig().LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a wrapped not-exist error, got %v", err)
	}
}
