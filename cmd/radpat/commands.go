package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/radpat/internal/analysis"
	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/config"
	"github.com/san-kum/radpat/internal/engine"
	"github.com/san-kum/radpat/internal/export"
	"github.com/san-kum/radpat/internal/raster"
	"github.com/san-kum/radpat/internal/render"
	"github.com/san-kum/radpat/internal/viz"
)

func runExplore(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd, args)
	if err != nil {
		return err
	}
	dir, err := s.outputDir()
	if err != nil {
		return err
	}
	opts := []viz.Option{
		viz.WithLogger(s.log),
		viz.SnapshotDir(dir, s.panelSize()),
	}
	if themeName != "" {
		opts = append(opts, viz.WithTheme(themeName))
	}
	m, err := viz.NewModel(s.antenna, opts...)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

// imageSurface is a render target that can be written to a file.
type imageSurface interface {
	render.Surface
	save(path string) error
}

type pngSurface struct{ *raster.Canvas }

func (p pngSurface) save(path string) error { return p.SavePNG(path) }

type svgSurface struct{ *export.SVG }

func (s svgSurface) save(path string) error {
	return os.WriteFile(path, []byte(s.String()), 0644)
}

func newSurface(format string, w, h int) imageSurface {
	if format == "svg" {
		return svgSurface{export.NewSVG(float64(w), float64(h))}
	}
	return pngSurface{raster.NewCanvas(w, h)}
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd, args)
	if err != nil {
		return err
	}
	dir, err := s.outputDir()
	if err != nil {
		return err
	}

	o := s.cfg.Output
	panels := []struct {
		name string
		surf imageSurface
	}{
		{"azimuth", newSurface(o.Format, o.PolarWidth, o.PolarHeight)},
		{"elevation", newSurface(o.Format, o.PolarWidth, o.PolarHeight)},
		{"surface", newSurface(o.Format, o.SurfaceWidth, o.SurfaceHeight)},
	}
	eng := engine.New(engine.Surfaces{
		Azimuth:   panels[0].surf,
		Elevation: panels[1].surf,
		Surface:   panels[2].surf,
	}, engine.WithLogger(s.log))

	frame, err := eng.Apply(s.antenna)
	if err != nil {
		return err
	}
	kind := frame.Config.Kind()
	for _, p := range panels {
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", kind, p.name, o.Format))
		if err := p.surf.save(path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func runParams(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd, args)
	if err != nil {
		return err
	}
	eng := engine.New(engine.Surfaces{}, engine.WithLogger(s.log))
	frame, err := eng.Apply(s.antenna)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", antenna.DisplayName(frame.Config), antenna.Describe(frame.Config))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Gain:\t%s\n", frame.Summary.GainText())
	fmt.Fprintf(w, "Beamwidth:\t%s\n", frame.Summary.BeamwidthText())
	fmt.Fprintf(w, "Front-to-Back:\t%s\n", frame.Summary.FrontToBackText())
	fmt.Fprintf(w, "Efficiency:\t%s\n", frame.Summary.EfficiencyText())
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd, args)
	if err != nil {
		return err
	}
	eng := engine.New(engine.Surfaces{}, engine.WithLogger(s.log))
	frame, err := eng.Apply(s.antenna)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	name := antenna.DisplayName(frame.Config)
	cuts := []struct {
		label string
		data  []float64
	}{
		{"azimuth", frame.Pattern.Azimuth[:]},
		{"elevation", frame.Pattern.Elevation[:]},
	}
	for _, c := range cuts {
		graph := asciigraph.Plot(c.data,
			asciigraph.Height(10),
			asciigraph.Width(90),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Caption(fmt.Sprintf("%s %s gain vs angle (0-360°)", name, c.label)),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd, args)
	if err != nil {
		return err
	}
	eng := engine.New(engine.Surfaces{}, engine.WithLogger(s.log))
	frame, err := eng.Apply(s.antenna)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	az := analysis.Measure(&frame.Pattern.Azimuth)
	el := analysis.Measure(&frame.Pattern.Elevation)

	fmt.Fprintf(out, "%s (%s)\n\n", antenna.DisplayName(frame.Config), antenna.Describe(frame.Config))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tESTIMATED\tAZIMUTH\tELEVATION")
	fmt.Fprintf(w, "Peak\t-\t%d°\t%d°\n", az.PeakDegree, el.PeakDegree)
	fmt.Fprintf(w, "Beamwidth\t%s\t%d°\t%d°\n", frame.Summary.BeamwidthText(), az.BeamwidthDeg, el.BeamwidthDeg)
	fmt.Fprintf(w, "Front-to-Back\t%s\t%.1f dB\t%.1f dB\n", frame.Summary.FrontToBackText(), az.FrontToBackDB, el.FrontToBackDB)
	fmt.Fprintf(w, "Lobes\t-\t%d\t%d\n", az.Lobes, el.Lobes)
	if err := w.Flush(); err != nil {
		return err
	}

	spectrum := analysis.Spectrum(&frame.Pattern.Azimuth)
	fmt.Fprintf(out, "\ndominant azimuth harmonic: %d\n\n", analysis.Dominant(spectrum))
	graph := asciigraph.Plot(spectrum[:61],
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("azimuth angular spectrum (harmonics 0-60)"),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd, args)
	if err != nil {
		return err
	}
	dir, err := s.outputDir()
	if err != nil {
		return err
	}
	eng := engine.New(engine.Surfaces{}, engine.WithLogger(s.log))
	frame, err := eng.Apply(s.antenna)
	if err != nil {
		return err
	}
	path, err := export.SaveSnapshot(dir, s.panelSize(), frame.Config, &frame.Pattern, frame.Summary, frame.UpdatedAt)
	if err != nil {
		return err
	}
	s.log.WithField("path", path).Info("snapshot saved")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	return exportPattern(cmd, args, "json")
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	return exportPattern(cmd, args, "csv")
}

func exportPattern(cmd *cobra.Command, args []string, ext string) error {
	s, err := setup(cmd, args)
	if err != nil {
		return err
	}
	dir, err := s.outputDir()
	if err != nil {
		return err
	}
	eng := engine.New(engine.Surfaces{}, engine.WithLogger(s.log))
	frame, err := eng.Apply(s.antenna)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, fmt.Sprintf("antenna-pattern-%s.%s", frame.Config.Kind(), ext))
	err = writeFile(path, func(w io.Writer) error {
		if ext == "json" {
			return export.WriteJSON(w, frame.Config, &frame.Pattern, frame.Summary)
		}
		return export.WriteCSV(w, &frame.Pattern)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
	return nil
}

// writeFile creates path and fills it with write. A failed write or close
// removes the partial file.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd, args)
	if err != nil {
		return err
	}
	kind := s.antenna.Kind()
	ctl := viz.Controls[kind][0]

	var cfgs []antenna.Configuration
	for i := 0; ; i++ {
		v := ctl.Min + float64(i)*ctl.Step
		if v > ctl.Max+ctl.Step/2 {
			break
		}
		cfgs = append(cfgs, ctl.Set(s.antenna, v))
	}
	points, err := analysis.Sweep(cmd.Context(), cfgs, workers)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"antenna": kind, "points": len(points)}).Debug("sweep done")

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tGAIN\tBEAMWIDTH\tMEASURED AZ\tMEASURED EL\tF/B\tEFFICIENCY\n", strings.ToUpper(ctl.Label))
	gains := make([]float64, len(points))
	for i, pt := range points {
		gains[i] = pt.Summary.GainDBi
		fmt.Fprintf(w, "%s\t%s\t%s\t%d°\t%d°\t%s\t%s\n",
			ctl.Format(ctl.Get(pt.Config)), pt.Summary.GainText(), pt.Summary.BeamwidthText(),
			pt.Azimuth.BeamwidthDeg, pt.Elevation.BeamwidthDeg,
			pt.Summary.FrontToBackText(), pt.Summary.EfficiencyText())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(gains) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(gains,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s gain (dBi) vs %s", antenna.DisplayName(s.antenna), strings.ToLower(ctl.Label))),
		))
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	kinds := antenna.Kinds()
	if len(args) > 0 {
		k, err := antenna.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []antenna.Kind{k}
	}

	out := cmd.OutOrStdout()
	for _, k := range kinds {
		fmt.Fprintf(out, "presets for %s:\n", k)
		for _, name := range config.ListPresets(k) {
			fmt.Fprintf(out, "  %-14s %s\n", name, antenna.Describe(config.GetPreset(k, name)))
		}
	}
	return nil
}
