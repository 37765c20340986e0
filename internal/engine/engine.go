// Package engine wires the pattern model, the renderers and the parameter
// estimator together. Every applied configuration is one synchronous,
// full redraw of all three surfaces.
package engine

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/params"
	"github.com/san-kum/radpat/internal/pattern"
	"github.com/san-kum/radpat/internal/render"
)

// Surfaces are the three drawing targets. A nil surface is skipped.
type Surfaces struct {
	Azimuth   render.Surface
	Elevation render.Surface
	Surface   render.Surface
}

// Frame is the result of one applied configuration.
type Frame struct {
	Config    antenna.Configuration
	Pattern   pattern.RadiationPattern
	Summary   params.Summary
	UpdatedAt time.Time
}

type Observer interface {
	OnFrame(f Frame)
}

type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Engine struct {
	mu        sync.Mutex
	surfaces  Surfaces
	logger    log.FieldLogger
	now       func() time.Time
	observers []Observer
	last      *Frame
}

type Option func(*Engine)

func WithLogger(l log.FieldLogger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock replaces time.Now for the frame timestamp.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(s Surfaces, opts ...Option) *Engine {
	e := &Engine{
		surfaces: s,
		logger:   log.StandardLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) AddObserver(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, o)
}

// Apply validates cfg, recomputes the pattern, redraws every surface from
// scratch and recomputes the summary. An invalid configuration is rejected
// before anything is drawn and the previous frame stays current.
// Concurrent calls are serialised so redraws never interleave.
func (e *Engine) Apply(cfg antenna.Configuration) (Frame, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	if err := antenna.Validate(cfg); err != nil {
		e.logger.WithError(err).Warn("configuration rejected")
		return Frame{}, err
	}

	p, err := pattern.Compute(cfg)
	if err != nil {
		return Frame{}, err
	}
	e.draw(&p)

	summary, err := params.Estimate(cfg)
	if err != nil {
		return Frame{}, err
	}

	f := Frame{Config: cfg, Pattern: p, Summary: summary, UpdatedAt: e.now()}
	e.last = &f

	e.logger.WithFields(log.Fields{
		"antenna":  antenna.Describe(cfg),
		"gain_dbi": summary.GainDBi,
		"elapsed":  time.Since(start),
	}).Debug("pattern applied")

	for _, o := range e.observers {
		o.OnFrame(f)
	}
	return f, nil
}

func (e *Engine) draw(p *pattern.RadiationPattern) {
	if s := e.surfaces.Azimuth; s != nil {
		render.Clear(s)
		render.RenderPolar(s, &p.Azimuth)
	}
	if s := e.surfaces.Elevation; s != nil {
		render.Clear(s)
		render.RenderPolar(s, &p.Elevation)
	}
	if s := e.surfaces.Surface; s != nil {
		render.RenderSurface(s, p)
	}
}

// Last returns the most recent frame, if any.
func (e *Engine) Last() (Frame, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.last == nil {
		return Frame{}, false
	}
	return *e.last, true
}

// Reset applies the default configuration for kind.
func (e *Engine) Reset(kind antenna.Kind) (Frame, error) {
	cfg, err := antenna.Default(kind)
	if err != nil {
		return Frame{}, err
	}
	return e.Apply(cfg)
}
