package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/config"
	"github.com/san-kum/radpat/internal/export"
)

// session is everything a command needs after flags, preset and config
// file have been merged.
type session struct {
	cfg     *config.Config
	antenna antenna.Configuration
	log     *logrus.Logger
}

// setup resolves the antenna with precedence preset < config file < flags.
func setup(cmd *cobra.Command, args []string) (*session, error) {
	cfg := config.DefaultConfig()
	fromFile := false
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg, fromFile = loaded, true
	}

	kindName := cfg.Antenna.Type
	if len(args) > 0 {
		kindName = args[0]
	}
	kind, err := antenna.ParseKind(kindName)
	if err != nil {
		return nil, err
	}

	base, err := antenna.Default(kind)
	if err != nil {
		return nil, err
	}
	if preset != "" {
		base = config.GetPreset(kind, preset)
		if base == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kind))
		}
	}

	raw := config.Params(base)
	if fromFile && cfg.Antenna.Type == string(kind) {
		for k, v := range cfg.Antenna.Params {
			raw[k] = v
		}
	}
	flags := cmd.Flags()
	if flags.Changed("length") {
		raw["length_ratio"] = length
	}
	if flags.Changed("spacing") {
		raw["spacing_ratio"] = spacing
	}
	if flags.Changed("phase") {
		raw["phase_degrees"] = phase
	}
	if flags.Changed("directors") {
		raw["directors"] = directors
	}

	a, err := config.Decode(kind, raw)
	if err != nil {
		return nil, err
	}
	cfg.SetConfiguration(a)

	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if cfg.Output.Format != "png" && cfg.Output.Format != "svg" {
		return nil, fmt.Errorf("unknown format %q: want png or svg", cfg.Output.Format)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"antenna": antenna.Describe(a),
		"config":  configFile,
		"preset":  preset,
	}).Debug("configuration resolved")

	return &session{cfg: cfg, antenna: a, log: logger}, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(lvl)
	return logger, nil
}

func (s *session) panelSize() export.PanelSize {
	o := s.cfg.Output
	return export.PanelSize{
		PolarWidth:    o.PolarWidth,
		PolarHeight:   o.PolarHeight,
		SurfaceWidth:  o.SurfaceWidth,
		SurfaceHeight: o.SurfaceHeight,
	}
}

func (s *session) outputDir() (string, error) {
	dir := s.cfg.Output.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
