package life

import "strconv"

// Config holds parameters for the Life simulation.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Density float64
	Rule    Rule

	// Workers splits each generation into row strips evaluated concurrently.
	// Values below 2 keep the scan on the calling goroutine.
	Workers int
	Paused  bool
}

// DefaultConfig returns the default configuration. The board starts paused so
// the initial pattern can be edited before it evolves.
func DefaultConfig() Config {
	return Config{
		Width:   100,
		Height:  100,
		Seed:    42,
		Density: 0.5,
		Rule:    Conway,
		Workers: 1,
		Paused:  true,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	return c
}
