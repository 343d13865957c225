package config

import "sort"

func preset(model string, launch LaunchConfig) *Config {
	cfg := DefaultConfig()
	cfg.Model = model
	cfg.Launch = launch
	return cfg
}

var Presets = map[string]map[string]*Config{
	"fixed": {
		"reference": preset("fixed", LaunchConfig{Speed: 85, LaunchAngle: 13.2, BackSpin: 183.26}),
		"wedge":     preset("fixed", LaunchConfig{Speed: 40, LaunchAngle: 30, BackSpin: 900}),
		"hook":      preset("fixed", LaunchConfig{Speed: 70, LaunchAngle: 12, Azimuth: -3, BackSpin: 250, SideSpin: -80}),
	},
	"spin_ratio": {
		"reference": preset("spin_ratio", LaunchConfig{Speed: 85, LaunchAngle: 17, BackSpin: 2094}),
		"driver":    preset("spin_ratio", LaunchConfig{Speed: 70, LaunchAngle: 12, BackSpin: 300}),
		"knuckle":   preset("spin_ratio", LaunchConfig{Speed: 60, LaunchAngle: 10}),
	},
}

// GetPreset returns a copy of the named preset, or nil if there is none.
func GetPreset(model, name string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListModels() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
