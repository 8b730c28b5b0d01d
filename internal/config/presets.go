package config

import (
	"sort"

	"github.com/san-kum/waveoptics/internal/optics"
)

var Presets = map[string]optics.Params{
	"classic": optics.DefaultParams(),
	"narrow-slits": {
		Mode: optics.Double, Wavelength: 50, SlitWidth: 10, SlitSeparation: 100, Speed: 0.1,
	},
	"wide-separation": {
		Mode: optics.Double, Wavelength: 40, SlitWidth: 20, SlitSeparation: 200, Speed: 0.1,
	},
	"single": {
		Mode: optics.Single, Wavelength: 50, SlitWidth: 30, SlitSeparation: 100, Speed: 0.1,
	},
	"long-wave": {
		Mode: optics.Double, Wavelength: 80, SlitWidth: 20, SlitSeparation: 120, Speed: 0.5,
	},
}

// GetPreset returns the default configuration with the named preset's
// parameters, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Params = p
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
