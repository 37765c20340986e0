package pattern

import (
	"math"

	"github.com/san-kum/radpat/internal/antenna"
)

// dipole: omnidirectional azimuth, classic finite-dipole elevation factor.
func dipole(d antenna.Dipole) RadiationPattern {
	var p RadiationPattern
	constant(&p.Azimuth, 1)
	kl := math.Pi * d.LengthRatio
	sample(&p.Elevation, func(_ int, theta float64) float64 {
		return dipoleFactor(kl, theta)
	})
	return p
}

// monopole: the dipole factor cut off below the ground plane.
func monopole(m antenna.Monopole) RadiationPattern {
	var p RadiationPattern
	constant(&p.Azimuth, 1)
	kl := math.Pi * m.LengthRatio
	sample(&p.Elevation, func(_ int, theta float64) float64 {
		if theta < 0 || theta > math.Pi {
			return 0
		}
		return dipoleFactor(kl, theta)
	})
	return p
}

func dipoleFactor(kl, theta float64) float64 {
	den := math.Sin(theta)
	if math.Abs(den) <= singularity {
		return 0
	}
	num := math.Cos(kl*math.Cos(theta)) - math.Cos(kl)
	return math.Abs(num / den)
}

// array: two-element array factor times a sin(theta) element pattern.
func array(a antenna.Array) RadiationPattern {
	var p RadiationPattern
	k := 2 * math.Pi * a.SpacingRatio
	sample(&p.Azimuth, func(_ int, theta float64) float64 {
		return arrayFactor(k*math.Cos(theta)+a.PhaseDifference) * math.Abs(math.Sin(theta))
	})
	sample(&p.Elevation, func(_ int, theta float64) float64 {
		return arrayFactor(k*math.Sin(theta)+a.PhaseDifference) * math.Abs(math.Sin(theta))
	})
	return p
}

func arrayFactor(psi float64) float64 {
	return math.Abs(2 * math.Cos(psi/2))
}

// yagi: shaped cosine main lobe with a rippled side-lobe floor. Directivity
// grows linearly with the director count and narrows both beams.
func yagi(y antenna.Yagi) RadiationPattern {
	var p RadiationPattern
	d := yagiDirectivity(y.DirectorCount)
	bwAz, bwEl := YagiBeamwidth(y.DirectorCount)
	lobes := 3 + float64(y.DirectorCount)
	shape := 1 / (1 + d)

	az := lobe{beamwidth: bwAz, floor: 0.15 / (1 + d), shape: shape, lobes: lobes}
	sample(&p.Azimuth, func(deg int, theta float64) float64 {
		// the lobe test wraps at 360 but the shaping angle does not
		inside := az.within(theta) || az.within(theta-2*math.Pi)
		return az.at(inside, float64(deg), theta)
	})

	el := lobe{beamwidth: bwEl, floor: 0.1 / (1 + d), shape: shape, lobes: lobes}
	sample(&p.Elevation, func(deg int, theta float64) float64 {
		off := theta - math.Pi/2
		return el.at(el.within(off), float64(deg)-90, off)
	})
	return p
}

// YagiBeamwidth returns the azimuth and elevation main-lobe widths in degrees
// used to shape the Yagi pattern.
func YagiBeamwidth(directors int) (azimuth, elevation float64) {
	d := yagiDirectivity(directors)
	return 180 / (1 + 2*d), 120 / (1 + 2*d)
}

func yagiDirectivity(directors int) float64 {
	return 0.15 * float64(directors)
}

type lobe struct {
	beamwidth float64 // degrees
	floor     float64
	shape     float64
	lobes     float64
}

// within reports whether rad lies inside half a beamwidth of boresight.
func (l lobe) within(rad float64) bool {
	return math.Abs(rad) < radians(l.beamwidth)/2
}

// at shapes the main lobe from deg when inside is set and falls back to the
// side-lobe ripple at rad whenever the result is below the floor.
func (l lobe) at(inside bool, deg, rad float64) float64 {
	v := 0.0
	if inside {
		v = math.Max(0, math.Cos(deg/l.beamwidth*math.Pi/2))
		v = math.Pow(v, l.shape)
	}
	if v < l.floor {
		v = l.floor * math.Abs(math.Sin(rad*l.lobes))
	}
	return v
}
