package life

import "testing"

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, expected defaults", got)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "64",
		"h":       "48",
		"seed":    "-7",
		"density": "0.25",
		"rule":    "B36/S23",
		"workers": "3",
		"paused":  "false",
	})
	if c.Width != 64 || c.Height != 48 {
		t.Fatalf("unexpected dims %dx%d", c.Width, c.Height)
	}
	if c.Seed != -7 || c.Density != 0.25 || c.Workers != 3 || c.Paused {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Rule.String() != "B36/S23" {
		t.Fatalf("unexpected rule %s", c.Rule)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "-1",
		"h":       "zero",
		"density": "1.5",
		"rule":    "nonsense",
		"workers": "0",
		"paused":  "maybe",
	})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
}
