package snowflake

import (
	"strconv"

	"hexflake/internal/core"
)

// Parameters reports the configuration for the HUD panel. Staged edits are
// shown as-is; they take effect on the next Reset.
func (l *Lattice) Parameters() core.ParameterSnapshot {
	params := l.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("size", "Radius", l.cfg.Size),
				int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Attachment",
			Params: []core.Parameter{
				floatParam("beta", "Beta (1-2 nbr threshold)", params.Beta),
				floatParam("alpha", "Alpha (3 nbr floor)", params.Alpha),
				floatParam("theta", "Theta (vapor ceiling)", params.Theta),
			},
		},
		{
			Name: "Phase Transfer",
			Params: []core.Parameter{
				floatParam("kappa", "Kappa (freeze split)", params.Kappa),
				floatParam("mu", "Mu (boundary melt)", params.Mu),
				floatParam("upsilon", "Upsilon (crystal melt)", params.Upsilon),
			},
		},
		{
			Name: "Vapor Field",
			Params: []core.Parameter{
				floatParam("gamma", "Gamma (background vapor)", params.Gamma),
				floatParam("sigma", "Sigma (step noise)", params.Sigma),
				floatParam("vapor_noise_amp", "Init noise amplitude", params.VaporNoiseAmp),
				floatParam("vapor_noise_freq", "Init noise frequency", params.VaporNoiseFreq),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (l *Lattice) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Radius", Type: core.ParamTypeInt, Step: 10, Min: 1, HasMin: true, Max: 400, HasMax: true},
		{Key: "beta", Label: "Beta", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
		{Key: "alpha", Label: "Alpha", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "theta", Label: "Theta", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, HasMin: true},
		{Key: "kappa", Label: "Kappa", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "mu", Label: "Mu", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "upsilon", Label: "Upsilon", Type: core.ParamTypeFloat, Step: 0.00001, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "gamma", Label: "Gamma", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, HasMin: true},
		{Key: "sigma", Label: "Sigma", Type: core.ParamTypeFloat, Step: 0.00001, Min: 0, HasMin: true},
	}
}

// SetFloatParameter stages a float tunable. Staged values take effect on
// the next Reset; a running lattice is never reconfigured mid-step.
func (l *Lattice) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	p := &l.cfg.Params
	switch key {
	case "beta":
		p.Beta = value
	case "alpha":
		p.Alpha = value
	case "theta":
		p.Theta = value
	case "kappa":
		p.Kappa = clamp01(value)
	case "mu":
		p.Mu = clamp01(value)
	case "upsilon":
		p.Upsilon = clamp01(value)
	case "gamma":
		p.Gamma = value
	case "sigma":
		p.Sigma = value
	case "vapor_noise_amp":
		p.VaporNoiseAmp = value
	case "vapor_noise_freq":
		p.VaporNoiseFreq = value
	default:
		return false
	}
	return true
}

// SetIntParameter stages an integer tunable, applied on the next Reset.
func (l *Lattice) SetIntParameter(key string, value int) bool {
	switch key {
	case "size":
		if value < 1 {
			value = 1
		}
		l.cfg.Size = value
	case "seed":
		l.cfg.Seed = int64(value)
	default:
		return false
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
