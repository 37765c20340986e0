// Package pattern samples closed-form far-field radiation patterns.
//
// Every pattern has two cuts, azimuth and elevation, sampled at each integer
// degree from 0 to 360 inclusive and normalized so the peak equals 1. Angle
// 360 is the same direction as angle 0 and always carries the same value.
//
// These are parametric approximations, not field solutions.
package pattern

import (
	"fmt"
	"math"

	"github.com/san-kum/radpat/internal/antenna"
	"gonum.org/v1/gonum/floats"
)

// Samples is the number of points in a cut (0..360 inclusive).
const Samples = 361

const singularity = 1e-6

// Cut maps integer degree to normalized gain in [0,1].
type Cut [Samples]float64

// At returns the value at deg, wrapped into [0,360).
func (c *Cut) At(deg int) float64 {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return c[deg]
}

// Max returns the largest sample.
func (c *Cut) Max() float64 {
	return floats.Max(c[:])
}

// RadiationPattern holds the two normalized cuts of one configuration.
type RadiationPattern struct {
	Azimuth   Cut
	Elevation Cut
}

// Compute samples the pattern of cfg. The configuration is validated first.
func Compute(cfg antenna.Configuration) (RadiationPattern, error) {
	if err := antenna.Validate(cfg); err != nil {
		return RadiationPattern{}, err
	}

	var p RadiationPattern
	switch c := cfg.(type) {
	case antenna.Dipole:
		p = dipole(c)
	case antenna.Monopole:
		p = monopole(c)
	case antenna.Array:
		p = array(c)
	case antenna.Yagi:
		p = yagi(c)
	default:
		return RadiationPattern{}, fmt.Errorf("%w: unsupported variant %T", antenna.ErrInvalidConfiguration, cfg)
	}

	normalize(&p.Azimuth)
	normalize(&p.Elevation)
	return p, nil
}

// sample fills a cut from f(theta) for each degree. Degree 360 reuses the
// angle of degree 0 so the cut closes exactly.
func sample(c *Cut, f func(deg int, theta float64) float64) {
	for a := 0; a < Samples; a++ {
		deg := a % 360
		c[a] = f(deg, radians(float64(deg)))
	}
}

// normalize divides by the peak. An all-zero cut stays all zero.
func normalize(c *Cut) {
	peak := c.Max()
	if peak == 0 {
		peak = 1
	}
	for i := range c {
		c[i] /= peak
	}
}

func constant(c *Cut, v float64) {
	for i := range c {
		c[i] = v
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
