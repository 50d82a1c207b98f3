package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"life/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string  `json:"sim"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	CellSize int     `json:"cell_size"`
	TPS      int     `json:"tps"`
	Seed     int64   `json:"seed"`
	Density  float64 `json:"density"`
	Rule     string  `json:"rule"`
	Workers  int     `json:"workers"`
	Paused   bool    `json:"paused"`
	HUD      bool    `json:"hud"`

	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Width:    100,
		Height:   100,
		CellSize: 12,
		TPS:      30,
		Seed:     42,
		Density:  0.5,
		Rule:     life.Conway.String(),
		Workers:  1,
		Paused:   true,
		HUD:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after randomizing")
	fs.StringVar(&c.Rule, "rule", c.Rule, "life-like rule in B/S notation")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation paused")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the side panel")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON file with defaults; flags override it")
}

// LoadFile overlays values from a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	switch {
	case c.Sim == "":
		return errors.New("[Validate] sim must not be empty")
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell size must be positive, got %d", c.CellSize)
	case c.TPS <= 0:
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("[Validate] density must be within [0,1], got %g", c.Density)
	case c.Workers <= 0:
		return errors.Errorf("[Validate] workers must be positive, got %d", c.Workers)
	}
	if _, err := life.ParseRule(c.Rule); err != nil {
		return errors.Wrap(err, "[Validate] bad rule")
	}
	return nil
}

// SimConfig converts c into the key/value form taken by simulation factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"rule":    c.Rule,
		"workers": strconv.Itoa(c.Workers),
		"paused":  strconv.FormatBool(c.Paused),
	}
}

// Parse builds a Config from command-line arguments. When -config names a
// file its values replace the defaults and any explicit flags still win.
// Each extra function binds additional tool-specific flags.
func Parse(name string, args []string, extra ...func(fs *flag.FlagSet)) (*Config, error) {
	newFlagSet := func(cfg *Config) *flag.FlagSet {
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		cfg.Bind(fs)
		for _, bind := range extra {
			bind(fs)
		}
		return fs
	}

	cfg := NewConfig()
	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Parse] invalid arguments")
	}

	if path := cfg.ConfigPath; path != "" {
		cfg = NewConfig()
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		fs = newFlagSet(cfg)
		if err := fs.Parse(args); err != nil {
			return nil, errors.Wrap(err, "[Parse] invalid arguments")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
