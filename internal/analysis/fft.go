package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/radpat/internal/pattern"
)

// Spectrum returns the magnitudes of the angular harmonics of c, bin 0 to
// 180, normalised by the sample count so bin 0 is the mean level.
func Spectrum(c *pattern.Cut) []float64 {
	bins := fft.FFTReal(c[:fullTurn])
	ps := make([]float64, fullTurn/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i]) / fullTurn
	}
	return ps
}

// Dominant returns the strongest harmonic above the mean.
func Dominant(spectrum []float64) int {
	if len(spectrum) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(spectrum); i++ {
		if spectrum[i] > spectrum[best] {
			best = i
		}
	}
	return best
}
