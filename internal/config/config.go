package config

import (
	"fmt"
	"os"

	ms "github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/radpat/internal/antenna"
)

const (
	DefaultPolarWidth    = 500
	DefaultPolarHeight   = 400
	DefaultSurfaceWidth  = 800
	DefaultSurfaceHeight = 420
	DefaultFormat        = "png"
	DefaultLogLevel      = "warn"
)

type Config struct {
	Antenna  AntennaConfig `yaml:"antenna"`
	Output   OutputConfig  `yaml:"output"`
	LogLevel string        `yaml:"log_level"`
}

// AntennaConfig is the loosely typed form of an antenna.Configuration: a
// type tag plus a parameter map whose keys depend on the type.
type AntennaConfig struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params,omitempty"`
}

type OutputConfig struct {
	Dir           string `yaml:"dir"`
	Format        string `yaml:"format"`
	PolarWidth    int    `yaml:"polar_width"`
	PolarHeight   int    `yaml:"polar_height"`
	SurfaceWidth  int    `yaml:"surface_width"`
	SurfaceHeight int    `yaml:"surface_height"`
}

type lengthParams struct {
	LengthRatio float64 `mapstructure:"length_ratio"`
}

type arrayParams struct {
	SpacingRatio float64 `mapstructure:"spacing_ratio"`
	PhaseDegrees float64 `mapstructure:"phase_degrees"`
}

type yagiParams struct {
	Directors int `mapstructure:"directors"`
}

func DefaultConfig() *Config {
	return &Config{
		Antenna: AntennaConfig{Type: string(antenna.KindDipole)},
		Output: OutputConfig{
			Dir:           ".",
			Format:        DefaultFormat,
			PolarWidth:    DefaultPolarWidth,
			PolarHeight:   DefaultPolarHeight,
			SurfaceWidth:  DefaultSurfaceWidth,
			SurfaceHeight: DefaultSurfaceHeight,
		},
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Output.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (o OutputConfig) validate() error {
	switch o.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("output format %q: want png or svg", o.Format)
	}
	if o.PolarWidth <= 0 || o.PolarHeight <= 0 || o.SurfaceWidth <= 0 || o.SurfaceHeight <= 0 {
		return fmt.Errorf("output panel sizes must be positive")
	}
	return nil
}

// Configuration decodes the antenna section. Parameters missing from the
// map keep the reset default for the type.
func (c *Config) Configuration() (antenna.Configuration, error) {
	kind, err := antenna.ParseKind(c.Antenna.Type)
	if err != nil {
		return nil, err
	}
	return Decode(kind, c.Antenna.Params)
}

// SetConfiguration stores cfg in the antenna section.
func (c *Config) SetConfiguration(cfg antenna.Configuration) {
	c.Antenna = AntennaConfig{Type: string(cfg.Kind()), Params: Params(cfg)}
}

// Decode builds a validated configuration of the given kind from a loose
// parameter map. Values are weakly typed ("5" decodes as 5); unknown keys
// are rejected.
func Decode(kind antenna.Kind, raw map[string]any) (antenna.Configuration, error) {
	base, err := antenna.Default(kind)
	if err != nil {
		return nil, err
	}

	var cfg antenna.Configuration
	switch b := base.(type) {
	case antenna.Dipole:
		p := lengthParams{LengthRatio: b.LengthRatio}
		err = decode(raw, &p)
		cfg = antenna.Dipole{LengthRatio: p.LengthRatio}
	case antenna.Monopole:
		p := lengthParams{LengthRatio: b.LengthRatio}
		err = decode(raw, &p)
		cfg = antenna.Monopole{LengthRatio: p.LengthRatio}
	case antenna.Array:
		p := arrayParams{SpacingRatio: b.SpacingRatio, PhaseDegrees: b.PhaseDegrees()}
		err = decode(raw, &p)
		cfg = antenna.ArrayDegrees(p.SpacingRatio, p.PhaseDegrees)
	case antenna.Yagi:
		p := yagiParams{Directors: b.DirectorCount}
		err = decode(raw, &p)
		cfg = antenna.Yagi{DirectorCount: p.Directors}
	}
	if err != nil {
		return nil, &antenna.ConfigError{Kind: kind, Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Params is the inverse of Decode.
func Params(cfg antenna.Configuration) map[string]any {
	var src any
	switch c := cfg.(type) {
	case antenna.Dipole:
		src = lengthParams{LengthRatio: c.LengthRatio}
	case antenna.Monopole:
		src = lengthParams{LengthRatio: c.LengthRatio}
	case antenna.Array:
		src = arrayParams{SpacingRatio: c.SpacingRatio, PhaseDegrees: c.PhaseDegrees()}
	case antenna.Yagi:
		src = yagiParams{Directors: c.DirectorCount}
	default:
		return nil
	}
	out := map[string]any{}
	if err := ms.Decode(src, &out); err != nil {
		return nil
	}
	return out
}

func decode(raw map[string]any, out any) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := ms.NewDecoder(&ms.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
