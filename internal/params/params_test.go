package params

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/radpat/internal/antenna"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		cfg  antenna.Configuration
		want Summary
	}{
		{"half-wave dipole", antenna.Dipole{LengthRatio: 0.5}, Summary{2.15, 78, 35.0, 95}},
		{"short dipole", antenna.Dipole{LengthRatio: 0.25}, Summary{1.15, 69, 29.1, 90}},
		{"long dipole", antenna.Dipole{LengthRatio: 1.0}, Summary{0.65, 61, 25.5, 85}},
		{"very long dipole", antenna.Dipole{LengthRatio: 3.0}, Summary{0, 22, 20.1, 50}},
		{"quarter-wave monopole", antenna.Monopole{LengthRatio: 0.25}, Summary{5.15, 78, 50.0, 95}},
		{"half-wave monopole", antenna.Monopole{LengthRatio: 0.5}, Summary{4.4, 69, 42.1, 90}},
		{"broadside array", antenna.Array{SpacingRatio: 0.5, PhaseDifference: 0}, Summary{8.17, 52, 50.0, 95}},
		{"steered array", antenna.ArrayDegrees(0.25, 45), Summary{7.83, 62, 41.2, 94}},
		{"yagi", antenna.Yagi{DirectorCount: 3}, Summary{14.1, 30, 30.0, 85}},
		{"bare yagi", antenna.Yagi{DirectorCount: 0}, Summary{7.5, 65, 12.0, 80}},
		{"long yagi", antenna.Yagi{DirectorCount: 12}, Summary{33.9, 11, 84.0, 95}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.cfg)
			if err != nil {
				t.Fatalf("Estimate: %v", err)
			}
			if math.Abs(got.GainDBi-tt.want.GainDBi) > 1e-9 {
				t.Errorf("gain = %v, want %v", got.GainDBi, tt.want.GainDBi)
			}
			if got.BeamwidthDegrees != tt.want.BeamwidthDegrees {
				t.Errorf("beamwidth = %v, want %v", got.BeamwidthDegrees, tt.want.BeamwidthDegrees)
			}
			if math.Abs(got.FrontToBackDB-tt.want.FrontToBackDB) > 1e-9 {
				t.Errorf("front-to-back = %v, want %v", got.FrontToBackDB, tt.want.FrontToBackDB)
			}
			if got.EfficiencyPercent != tt.want.EfficiencyPercent {
				t.Errorf("efficiency = %v, want %v", got.EfficiencyPercent, tt.want.EfficiencyPercent)
			}
		})
	}
}

func TestYagiMonotone(t *testing.T) {
	prev, err := Estimate(antenna.Yagi{DirectorCount: 2})
	if err != nil {
		t.Fatal(err)
	}
	for n := 3; n <= 6; n++ {
		cur, err := Estimate(antenna.Yagi{DirectorCount: n})
		if err != nil {
			t.Fatal(err)
		}
		if cur.GainDBi <= prev.GainDBi {
			t.Errorf("n=%d: gain %v not above %v", n, cur.GainDBi, prev.GainDBi)
		}
		if cur.FrontToBackDB <= prev.FrontToBackDB {
			t.Errorf("n=%d: f/b %v not above %v", n, cur.FrontToBackDB, prev.FrontToBackDB)
		}
		if cur.BeamwidthDegrees >= prev.BeamwidthDegrees {
			t.Errorf("n=%d: beamwidth %v not below %v", n, cur.BeamwidthDegrees, prev.BeamwidthDegrees)
		}
		prev = cur
	}
}

func TestEfficiencyFloor(t *testing.T) {
	for _, l := range []float64{3, 5, 10} {
		s, err := Estimate(antenna.Dipole{LengthRatio: l})
		if err != nil {
			t.Fatal(err)
		}
		if s.EfficiencyPercent != 50 {
			t.Errorf("L=%v: efficiency = %d, want floor 50", l, s.EfficiencyPercent)
		}
		if s.GainDBi != 0 {
			t.Errorf("L=%v: gain = %v, want floor 0", l, s.GainDBi)
		}
	}
}

func TestSummaryText(t *testing.T) {
	s, _ := Estimate(antenna.Dipole{LengthRatio: 0.5})
	if s.GainText() != "2.15 dBi" {
		t.Errorf("GainText() = %q", s.GainText())
	}
	if s.BeamwidthText() != "78°" {
		t.Errorf("BeamwidthText() = %q", s.BeamwidthText())
	}
	if s.FrontToBackText() != "35.0 dB" {
		t.Errorf("FrontToBackText() = %q", s.FrontToBackText())
	}
	if s.EfficiencyText() != "95%" {
		t.Errorf("EfficiencyText() = %q", s.EfficiencyText())
	}
}

func TestEstimateRejectsInvalid(t *testing.T) {
	if _, err := Estimate(antenna.Dipole{LengthRatio: -1}); !errors.Is(err, antenna.ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := Estimate(nil); !errors.Is(err, antenna.ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}
