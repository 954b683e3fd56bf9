package config

import "sort"

var Presets = map[string]*Config{
	"reference": {
		States: 11, Freq: 20.0, Coupling: -10.0, Steps: 10000,
		Log: LogConfig{Level: DefaultLogLevel},
	},
	"decoupled": {
		States: 11, Freq: 20.0, Coupling: 0, Steps: 10000,
		Log: LogConfig{Level: DefaultLogLevel},
	},
	"fine": {
		States: 11, Freq: 20.0, Coupling: -10.0, Steps: 100000,
		Log: LogConfig{Level: DefaultLogLevel},
	},
	"coarse": {
		States: 11, Freq: 20.0, Coupling: -10.0, Steps: 40,
		Log: LogConfig{Level: DefaultLogLevel},
	},
	"long": {
		States: 21, Freq: 1.0, Coupling: -10.0, Steps: 200000,
		Log: LogConfig{Level: DefaultLogLevel},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
