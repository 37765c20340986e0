package antenna

import (
	"fmt"
	"math"
)

// Kind tags a configuration variant at the text boundary (config files, flags).
type Kind string

const (
	KindDipole   Kind = "dipole"
	KindMonopole Kind = "monopole"
	KindArray    Kind = "array"
	KindYagi     Kind = "yagi"
)

// Kinds lists every supported antenna type in display order.
func Kinds() []Kind {
	return []Kind{KindDipole, KindMonopole, KindArray, KindYagi}
}

// ParseKind maps a tag to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &ConfigError{Reason: fmt.Sprintf("unknown antenna type %q", s)}
}

// Configuration is the closed set of antenna variants. Only the types in
// this package implement it.
type Configuration interface {
	Kind() Kind
	Validate() error
	sealed()
}

// Dipole is a centre-fed dipole of LengthRatio wavelengths.
type Dipole struct {
	LengthRatio float64
}

// Monopole is a vertical monopole of LengthRatio wavelengths over ground.
type Monopole struct {
	LengthRatio float64
}

// Array is a two-element array. PhaseDifference is in radians.
type Array struct {
	SpacingRatio    float64
	PhaseDifference float64
}

// Yagi is a Yagi-Uda antenna with DirectorCount directors.
type Yagi struct {
	DirectorCount int
}

func (Dipole) Kind() Kind   { return KindDipole }
func (Monopole) Kind() Kind { return KindMonopole }
func (Array) Kind() Kind    { return KindArray }
func (Yagi) Kind() Kind     { return KindYagi }

func (Dipole) sealed()   {}
func (Monopole) sealed() {}
func (Array) sealed()    {}
func (Yagi) sealed()     {}

func (d Dipole) Validate() error {
	return positiveLength(KindDipole, d.LengthRatio)
}

func (m Monopole) Validate() error {
	return positiveLength(KindMonopole, m.LengthRatio)
}

func (a Array) Validate() error {
	if math.IsNaN(a.SpacingRatio) || math.IsInf(a.SpacingRatio, 0) {
		return &ConfigError{Kind: KindArray, Field: "spacing_ratio", Value: a.SpacingRatio, Reason: "must be finite"}
	}
	if a.SpacingRatio < 0 {
		return &ConfigError{Kind: KindArray, Field: "spacing_ratio", Value: a.SpacingRatio, Reason: "must be >= 0"}
	}
	if math.IsNaN(a.PhaseDifference) || math.IsInf(a.PhaseDifference, 0) {
		return &ConfigError{Kind: KindArray, Field: "phase_difference", Value: a.PhaseDifference, Reason: "must be finite"}
	}
	return nil
}

func (y Yagi) Validate() error {
	if y.DirectorCount < 0 {
		return &ConfigError{Kind: KindYagi, Field: "directors", Value: float64(y.DirectorCount), Reason: "must be >= 0"}
	}
	return nil
}

func positiveLength(k Kind, l float64) error {
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return &ConfigError{Kind: k, Field: "length_ratio", Value: l, Reason: "must be finite"}
	}
	if l <= 0 {
		return &ConfigError{Kind: k, Field: "length_ratio", Value: l, Reason: "must be > 0"}
	}
	return nil
}

// Validate checks cfg, treating nil as invalid.
func Validate(cfg Configuration) error {
	if cfg == nil {
		return &ConfigError{Reason: "no antenna configured"}
	}
	return cfg.Validate()
}

// ArrayDegrees builds an Array from a phase difference in degrees.
func ArrayDegrees(spacing, phaseDeg float64) Array {
	return Array{SpacingRatio: spacing, PhaseDifference: phaseDeg * math.Pi / 180}
}

// PhaseDegrees returns the phase difference in degrees.
func (a Array) PhaseDegrees() float64 {
	return a.PhaseDifference * 180 / math.Pi
}

// Default returns the reset value for kind.
func Default(k Kind) (Configuration, error) {
	switch k {
	case KindDipole:
		return Dipole{LengthRatio: 0.5}, nil
	case KindMonopole:
		return Monopole{LengthRatio: 0.25}, nil
	case KindArray:
		return Array{SpacingRatio: 0.5, PhaseDifference: 0}, nil
	case KindYagi:
		return Yagi{DirectorCount: 3}, nil
	}
	return nil, &ConfigError{Reason: fmt.Sprintf("unknown antenna type %q", k)}
}

// DisplayName is the human readable title used in plots and exports.
func DisplayName(cfg Configuration) string {
	switch cfg.(type) {
	case Dipole:
		return "Simple Dipole"
	case Monopole:
		return "Monopole"
	case Array:
		return "Two-Element Array"
	case Yagi:
		return "Yagi Antenna"
	}
	return "Unknown"
}

// Describe renders the configuration parameters on one line.
func Describe(cfg Configuration) string {
	switch c := cfg.(type) {
	case Dipole:
		return fmt.Sprintf("dipole length=%.2fλ", c.LengthRatio)
	case Monopole:
		return fmt.Sprintf("monopole length=%.2fλ", c.LengthRatio)
	case Array:
		return fmt.Sprintf("array spacing=%.2fλ phase=%.0f°", c.SpacingRatio, c.PhaseDegrees())
	case Yagi:
		return fmt.Sprintf("yagi directors=%d", c.DirectorCount)
	}
	return "none"
}
