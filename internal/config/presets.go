package config

import "sort"

var Presets = map[string]*Config{
	"sapling": {
		Width: 480, Height: 380, Depth: 6, Angle: -90,
		Origin: OriginConfig{X: 240, Y: 380},
	},
	"classic": {
		Width: 900, Height: 700, Depth: 10, Angle: -90,
		Origin: OriginConfig{X: 450, Y: 700},
	},
	"old-growth": {
		Width: 1300, Height: 1000, Depth: 13, Angle: -90,
		Origin: OriginConfig{X: 650, Y: 980},
	},
	"windswept": {
		Width: 900, Height: 700, Depth: 10, Angle: -65,
		Origin: OriginConfig{X: 330, Y: 700},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
