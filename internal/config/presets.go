package config

import "sort"

// Presets are ready-made calculation scenarios keyed by name.
var Presets = map[string]*Config{
	"gold_water": {
		Model: "rayleigh", Radius: 50.0, Wavelength: 520.0,
		Material: "gold", Medium: 1.33,
		Spectrum: SpectrumConfig{From: 400.0, To: 700.0, Step: 2.0},
	},
	"silver_air": {
		Model: "rayleigh", Radius: 30.0, Wavelength: 400.0,
		Material: "silver", Medium: 1.0,
		Spectrum: SpectrumConfig{From: 300.0, To: 600.0, Step: 2.0},
	},
	"silicon_air": {
		Model: "rayleigh", Radius: 60.0, Wavelength: 500.0,
		Material: "silicon", Medium: 1.0,
		Spectrum: SpectrumConfig{From: 400.0, To: 900.0, Step: 5.0},
	},
	"titania_water": {
		Model: "rayleigh", Radius: 100.0, Wavelength: 550.0,
		Material: "titania", Medium: 1.33,
		Spectrum: SpectrumConfig{From: 300.0, To: 800.0, Step: 5.0},
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
