package life

import (
	"strconv"

	"life/pkg/core"
)

const paramDensity = "density"

// Parameters reports the board's configuration and live statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.w),
				intParam("h", "Height", l.h),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.seed, 10)},
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: l.rule.String()},
				{Key: paramDensity, Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.density, 'f', -1, 64)},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.Population()),
				{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(l.paused)},
			},
		},
	}}
}

// ParameterControls exposes the randomization density to the HUD.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    paramDensity,
		Label:  "Density",
		Type:   core.ParamTypeFloat,
		Step:   0.05,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}}
}

// SetFloatParameter updates density; it takes effect at the next Randomize.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != paramDensity {
		return false
	}
	l.density = min(max(value, 0), 1)
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}
