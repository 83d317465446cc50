package snow

import (
	"strconv"

	"mad-snow/internal/core"
)

// Parameters reports the configuration grouped for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	c := s.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
				intParam("flake_count", "Flakes", c.FlakeCount),
				intParam("base_rows", "Base rows", c.BaseRows),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("terminal_velocity", "Terminal velocity", c.TerminalVelocity),
				floatParam("spin_radius_low", "Spin radius low", c.SpinRadiusLow),
				floatParam("spin_radius_high", "Spin radius high", c.SpinRadiusHigh),
				floatParam("respawn_jitter", "Respawn jitter", c.RespawnJitter),
			},
		},
		{
			Name: "Sway",
			Params: []core.Parameter{
				stringParam("sway", "Sway", string(c.Sway)),
				intParam("spin_speed", "Spin speed", c.SpinSpeed),
				floatParam("spin_speed_radians", "Spin speed (rad)", c.SpinSpeedRadians),
				boolParam("truncated_sine", "Truncated sine", c.TruncatedSine),
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				boolParam("pointer_lift", "Pointer lift", c.PointerLift),
				intParam("pointer_reach", "Pointer reach", c.PointerReach),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
