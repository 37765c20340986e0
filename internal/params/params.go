// Package params estimates summary performance figures for an antenna.
//
// The figures come from closed-form rules of thumb per antenna type. They are
// computed directly from the configuration, not from a sampled pattern, so
// they can disagree with what the pattern plots show.
package params

import (
	"fmt"
	"math"

	"github.com/san-kum/radpat/internal/antenna"
)

// Summary is the rounded set of performance figures shown next to the plots.
type Summary struct {
	GainDBi           float64 `json:"gain_dbi" yaml:"gain_dbi"`
	BeamwidthDegrees  int     `json:"beamwidth_degrees" yaml:"beamwidth_degrees"`
	FrontToBackDB     float64 `json:"front_to_back_db" yaml:"front_to_back_db"`
	EfficiencyPercent int     `json:"efficiency_percent" yaml:"efficiency_percent"`
}

// GainText formats the gain as "2.15 dBi".
func (s Summary) GainText() string { return fmt.Sprintf("%.2f dBi", s.GainDBi) }

// BeamwidthText formats the beamwidth as "78°".
func (s Summary) BeamwidthText() string { return fmt.Sprintf("%d°", s.BeamwidthDegrees) }

// FrontToBackText formats the front-to-back ratio as "35.0 dB".
func (s Summary) FrontToBackText() string { return fmt.Sprintf("%.1f dB", s.FrontToBackDB) }

// EfficiencyText formats the efficiency as "95%".
func (s Summary) EfficiencyText() string { return fmt.Sprintf("%d%%", s.EfficiencyPercent) }

func (s Summary) String() string {
	return fmt.Sprintf("gain=%s beamwidth=%s f/b=%s efficiency=%s",
		s.GainText(), s.BeamwidthText(), s.FrontToBackText(), s.EfficiencyText())
}

const (
	dipoleResonance   = 0.5
	dipoleGain        = 2.15
	monopoleResonance = 0.25
	monopoleGain      = 5.15 // ground-plane image adds ~3 dB
	minEfficiency     = 50
)

// Estimate computes the summary for cfg. The configuration is validated first.
func Estimate(cfg antenna.Configuration) (Summary, error) {
	if err := antenna.Validate(cfg); err != nil {
		return Summary{}, err
	}
	switch c := cfg.(type) {
	case antenna.Dipole:
		return wire(c.LengthRatio, dipoleResonance, dipoleGain, 20, 15), nil
	case antenna.Monopole:
		return wire(c.LengthRatio, monopoleResonance, monopoleGain, 30, 20), nil
	case antenna.Array:
		return array(c), nil
	case antenna.Yagi:
		return yagi(c), nil
	}
	return Summary{}, fmt.Errorf("%w: unsupported variant %T", antenna.ErrInvalidConfiguration, cfg)
}

// wire covers dipoles and monopoles: peak figures at resonance, degrading
// faster below resonance than above it.
func wire(l, resonance, peakGain, fbBase, fbSpan float64) Summary {
	dev := math.Abs(l - resonance)
	gain := peakGain
	switch {
	case l < resonance:
		gain = peakGain - 4*dev
	case l > resonance:
		gain = peakGain - 3*dev
	}
	gain = math.Max(0, gain)

	beamwidth := 78 * math.Exp(-0.5*dev)
	fb := fbBase + fbSpan*math.Exp(-2*dev)
	eff := math.Max(minEfficiency, math.Round(95-20*dev))

	return Summary{
		GainDBi:           round(gain, 2),
		BeamwidthDegrees:  int(math.Round(beamwidth)),
		FrontToBackDB:     round(fb, 1),
		EfficiencyPercent: int(eff),
	}
}

func array(a antenna.Array) Summary {
	af := 2 * math.Cos(a.PhaseDifference/2)
	arrayGain := 10 * math.Log10(2*math.Abs(af))
	cosP := math.Abs(math.Cos(a.PhaseDifference))

	return Summary{
		GainDBi:           round(dipoleGain+arrayGain, 2),
		BeamwidthDegrees:  int(math.Round(78 / (1 + a.SpacingRatio))),
		FrontToBackDB:     round(20+30*cosP, 1),
		EfficiencyPercent: int(math.Round(90 + 5*cosP)),
	}
}

func yagi(y antenna.Yagi) Summary {
	n := float64(y.DirectorCount)
	return Summary{
		GainDBi:           round(7.5+2.2*n, 2),
		BeamwidthDegrees:  int(math.Round(65 / (1 + 0.4*n))),
		FrontToBackDB:     round(12+6*n, 1),
		EfficiencyPercent: int(math.Round(math.Min(95, 80+1.5*n))),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
