package sandbox

import (
	"strconv"

	"rhysix/internal/core"
)

func (s *Sandbox) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Brush",
			Params: []core.Parameter{
				stringParam("material", "Material", s.ActiveMaterialName()),
				intParam("brush_size", "Brush size", s.brush),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.grid.W),
				intParam("h", "Height", s.grid.H),
				int64Param("seed", "Seed", s.cfg.Seed),
				boolParam("paused", "Paused", s.paused),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (s *Sandbox) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "brush_size",
		Label:  "Brush size",
		Step:   1,
		Min:    MinBrushSize,
		Max:    MaxBrushSize,
		HasMin: true,
		HasMax: true,
	}}
}

func (s *Sandbox) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_size":
		s.SetBrushSize(value)
		return true
	default:
		return false
	}
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
