package config

import (
	"sort"

	"github.com/san-kum/radpat/internal/antenna"
)

var Presets = map[antenna.Kind]map[string]antenna.Configuration{
	antenna.KindDipole: {
		"half-wave": antenna.Dipole{LengthRatio: 0.5},
		"short":     antenna.Dipole{LengthRatio: 0.1},
		"full-wave": antenna.Dipole{LengthRatio: 1.0},
		"extended":  antenna.Dipole{LengthRatio: 1.25},
	},
	antenna.KindMonopole: {
		"quarter-wave": antenna.Monopole{LengthRatio: 0.25},
		"five-eighths": antenna.Monopole{LengthRatio: 0.625},
		"half-wave":    antenna.Monopole{LengthRatio: 0.5},
		"short-whip":   antenna.Monopole{LengthRatio: 0.1},
	},
	antenna.KindArray: {
		"broadside": antenna.ArrayDegrees(0.5, 0),
		"endfire":   antenna.ArrayDegrees(0.25, -90),
		"steered":   antenna.ArrayDegrees(0.5, 45),
		"wide":      antenna.ArrayDegrees(1.0, 0),
	},
	antenna.KindYagi: {
		"minimal": antenna.Yagi{DirectorCount: 0},
		"classic": antenna.Yagi{DirectorCount: 3},
		"long":    antenna.Yagi{DirectorCount: 8},
	},
}

func GetPreset(kind antenna.Kind, preset string) antenna.Configuration {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	cfg, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names for kind in sorted order.
func ListPresets(kind antenna.Kind) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
