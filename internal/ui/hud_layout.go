package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"life/pkg/core"
)

const (
	panelPadding     = 12
	lineHeight       = 36
	buttonSize       = 24
	buttonGap        = 6
	headerBaseline   = 18
	labelBaseline    = 24
	statusLineHeight = 16
	statusTop        = panelPadding + headerBaseline + 10
)

// statusKeys lists the snapshot values shown above the controls, in order.
var statusKeys = []string{"generation", "population", "rule", "seed", "paused"}

var keyHelp = []string{
	"Space  pause / resume",
	"N      single step",
	"R, 5   randomize",
	"Bksp   reseed same",
	"C      clear",
	"G      grid lines",
	"H      neighbour heat",
	"Click  toggle cell",
	"Esc    quit",
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// statusLines renders the tracked snapshot values as "Label: value" rows.
func statusLines(snapshot core.ParameterSnapshot) []string {
	lines := make([]string, 0, len(statusKeys))
	for _, key := range statusKeys {
		param, ok := snapshot.Lookup(key)
		if !ok {
			continue
		}
		if key == "paused" {
			state := "running"
			if param.Value == "true" {
				state = "paused"
			}
			lines = append(lines, "State: "+state)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", param.Label, param.Value))
	}
	return lines
}

func controlsTop(statusCount int) int {
	return statusTop + statusCount*statusLineHeight + 14
}

func layoutControls(controls []hudControlState, width, top int) {
	if width <= 0 {
		return
	}
	for i := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = rowTop
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

// adjustFloat returns the value one step away from current in direction and
// whether that move is permitted by the control's bounds.
func adjustFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		if direction < 0 && current <= ctrl.Min+1e-9 {
			return current, false
		}
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		if direction > 0 && current >= ctrl.Max-1e-9 {
			return current, false
		}
		target = ctrl.Max
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
