package life

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"life/pkg/core"
)

// Rule is a life-like transition rule. Bit n of Birth (Survive) is set when a
// dead (live) cell with n live neighbours is alive in the next generation.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// Next returns the state of a cell with the given neighbour count after one
// generation.
func (r Rule) Next(c core.Cell, neighbors int) core.Cell {
	if neighbors < 0 || neighbors > 8 {
		return core.Dead
	}
	if c {
		return core.Cell(r.Survive&(1<<neighbors) != 0)
	}
	return core.Cell(r.Birth&(1<<neighbors) != 0)
}

// String formats the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteString(strconv.Itoa(n))
		}
	}
}

// ParseRule reads a rule in "B3/S23" notation. The halves may appear in
// either order and letters are case-insensitive.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, errors.Errorf("[ParseRule] expected B.../S..., got %q", s)
	}

	var r Rule
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, errors.Errorf("[ParseRule] empty half in %q", s)
		}
		mask, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, errors.Wrapf(err, "[ParseRule] invalid rule %q", s)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return Rule{}, errors.Errorf("[ParseRule] duplicate birth half in %q", s)
			}
			r.Birth, seenB = mask, true
		case 'S', 's':
			if seenS {
				return Rule{}, errors.Errorf("[ParseRule] duplicate survival half in %q", s)
			}
			r.Survive, seenS = mask, true
		default:
			return Rule{}, errors.Errorf("[ParseRule] unknown prefix %q in %q", part[0], s)
		}
	}
	return r, nil
}

func parseCounts(digits string) (uint16, error) {
	var mask uint16
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return 0, errors.Errorf("neighbour count %q out of range 0-8", ch)
		}
		mask |= 1 << (ch - '0')
	}
	return mask, nil
}
