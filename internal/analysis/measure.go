package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/radpat/internal/pattern"
)

const (
	// halfPower is the -3 dB field ratio.
	halfPower = 1 / math.Sqrt2
	// backFloor keeps the front-to-back ratio finite across a null.
	backFloor = 1e-3
	// lobeFloor ignores ripples at numerical noise level.
	lobeFloor = 1e-3
	fullTurn  = 360
)

// Measurement holds the figures read off one cut.
type Measurement struct {
	PeakDegree    int     `json:"peak_degree"`
	BeamwidthDeg  int     `json:"beamwidth_degrees"`
	FrontToBackDB float64 `json:"front_to_back_db"`
	Lobes         int     `json:"lobes"`
}

func (m Measurement) String() string {
	return fmt.Sprintf("peak %d°, -3 dB width %d°, F/B %.1f dB, %d lobes",
		m.PeakDegree, m.BeamwidthDeg, m.FrontToBackDB, m.Lobes)
}

// Measure takes the peak, half-power beamwidth, front-to-back ratio and lobe
// count of c. The beamwidth is 360 when the cut never falls below half power.
func Measure(c *pattern.Cut) Measurement {
	vals := c[:fullTurn]
	peakIdx := floats.MaxIdx(vals)
	peak := vals[peakIdx]

	m := Measurement{PeakDegree: peakIdx}
	if peak <= 0 {
		return m
	}

	threshold := peak * halfPower
	right := span(vals, peakIdx, 1, threshold)
	left := span(vals, peakIdx, -1, threshold)
	m.BeamwidthDeg = min(fullTurn, left+right)

	back := vals[(peakIdx+fullTurn/2)%fullTurn]
	m.FrontToBackDB = 20 * math.Log10(peak/math.Max(back, backFloor))
	m.Lobes = countLobes(vals)
	return m
}

// span counts whole degrees from start in direction dir that stay at or
// above threshold.
func span(vals []float64, start, dir int, threshold float64) int {
	n := 0
	for n < fullTurn && vals[wrap(start+dir*(n+1))] >= threshold {
		n++
	}
	return n
}

func countLobes(vals []float64) int {
	lobes := 0
	for i, v := range vals {
		if v < lobeFloor {
			continue
		}
		if v > vals[wrap(i-1)] && v >= vals[wrap(i+1)] {
			lobes++
		}
	}
	return lobes
}

func wrap(i int) int {
	i %= fullTurn
	if i < 0 {
		i += fullTurn
	}
	return i
}
