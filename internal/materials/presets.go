// Package materials provides refractive-index presets for common
// nanoparticle materials at their typical working wavelengths.
package materials

import (
	"sort"

	"github.com/san-kum/nanocalc/internal/physics"
)

type Preset struct {
	Name        string
	Index       physics.RefractiveIndex
	Description string
}

var presets = map[string]Preset{
	"gold": {
		Name:        "Gold (Au)",
		Index:       physics.RefractiveIndex{N: 0.47, K: 2.40},
		Description: "Gold nanoparticles at 520 nm",
	},
	"silver": {
		Name:        "Silver (Ag)",
		Index:       physics.RefractiveIndex{N: 0.05, K: 3.00},
		Description: "Silver nanoparticles at 400 nm",
	},
	"silicon": {
		Name:        "Silicon (Si)",
		Index:       physics.RefractiveIndex{N: 4.15, K: 0.04},
		Description: "Silicon at 500 nm",
	},
	"titania": {
		Name:        "TiO2",
		Index:       physics.RefractiveIndex{N: 2.50, K: 0.00},
		Description: "Titanium dioxide (rutile)",
	},
}

func Get(key string) (Preset, bool) {
	p, ok := presets[key]
	return p, ok
}

func List() []string {
	keys := make([]string, 0, len(presets))
	for key := range presets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
