package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/params"
	"github.com/san-kum/radpat/internal/pattern"
)

// SweepPoint is the estimate and the measured cuts of one configuration.
type SweepPoint struct {
	Config    antenna.Configuration
	Summary   params.Summary
	Azimuth   Measurement
	Elevation Measurement
}

// Sweep evaluates every configuration with at most workers goroutines.
// Results keep the input order. The first invalid configuration aborts the
// sweep.
func Sweep(ctx context.Context, configs []antenna.Configuration, workers int) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(configs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, cfg := range configs {
		i, cfg := i, cfg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := pattern.Compute(cfg)
			if err != nil {
				return err
			}
			s, err := params.Estimate(cfg)
			if err != nil {
				return err
			}
			points[i] = SweepPoint{
				Config:    cfg,
				Summary:   s,
				Azimuth:   Measure(&p.Azimuth),
				Elevation: Measure(&p.Elevation),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
