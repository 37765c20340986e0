package viz

import (
	"fmt"
	"math"

	"github.com/san-kum/radpat/internal/antenna"
)

// Control is one adjustable antenna parameter.
type Control struct {
	Label          string
	Min, Max, Step float64
	Get            func(antenna.Configuration) float64
	Set            func(antenna.Configuration, float64) antenna.Configuration
	Format         func(float64) string
}

func ratio(v float64) string   { return fmt.Sprintf("%.2fλ", v) }
func degrees(v float64) string { return fmt.Sprintf("%.0f°", v) }
func count(v float64) string   { return fmt.Sprintf("%.0f", v) }

var lengthGet = func(c antenna.Configuration) float64 {
	switch a := c.(type) {
	case antenna.Dipole:
		return a.LengthRatio
	case antenna.Monopole:
		return a.LengthRatio
	}
	return 0
}

// Controls lists the sliders for each antenna type.
var Controls = map[antenna.Kind][]Control{
	antenna.KindDipole: {{
		Label: "Length", Min: 0.1, Max: 2.0, Step: 0.05, Format: ratio,
		Get: lengthGet,
		Set: func(_ antenna.Configuration, v float64) antenna.Configuration {
			return antenna.Dipole{LengthRatio: v}
		},
	}},
	antenna.KindMonopole: {{
		Label: "Length", Min: 0.1, Max: 1.0, Step: 0.05, Format: ratio,
		Get: lengthGet,
		Set: func(_ antenna.Configuration, v float64) antenna.Configuration {
			return antenna.Monopole{LengthRatio: v}
		},
	}},
	antenna.KindArray: {
		{
			Label: "Spacing", Min: 0, Max: 2.0, Step: 0.05, Format: ratio,
			Get: func(c antenna.Configuration) float64 { return c.(antenna.Array).SpacingRatio },
			Set: func(c antenna.Configuration, v float64) antenna.Configuration {
				return antenna.ArrayDegrees(v, c.(antenna.Array).PhaseDegrees())
			},
		},
		{
			Label: "Phase", Min: -180, Max: 180, Step: 5, Format: degrees,
			Get: func(c antenna.Configuration) float64 { return c.(antenna.Array).PhaseDegrees() },
			Set: func(c antenna.Configuration, v float64) antenna.Configuration {
				return antenna.ArrayDegrees(c.(antenna.Array).SpacingRatio, v)
			},
		},
	},
	antenna.KindYagi: {{
		Label: "Directors", Min: 0, Max: 10, Step: 1, Format: count,
		Get: func(c antenna.Configuration) float64 { return float64(c.(antenna.Yagi).DirectorCount) },
		Set: func(_ antenna.Configuration, v float64) antenna.Configuration {
			return antenna.Yagi{DirectorCount: int(math.Round(v))}
		},
	}},
}

// Adjust moves the control by steps, snapping to the step grid and
// clamping to the control range. It returns a new configuration.
func (c Control) Adjust(cfg antenna.Configuration, steps int) antenna.Configuration {
	v := c.Get(cfg) + float64(steps)*c.Step
	v = math.Round(v/c.Step) * c.Step
	v = math.Max(c.Min, math.Min(c.Max, v))
	// keep 0.05 steps free of binary drift
	v = math.Round(v*1e6) / 1e6
	return c.Set(cfg, v)
}
