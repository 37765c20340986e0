package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	outDir     string
	format     string
	logLevel   string
	themeName  string
	workers    int
	// antenna parameters; only flags the user sets are applied
	length    float64
	spacing   float64
	phase     float64
	directors int
)

// main runs the radpat CLI and exits with status 1 when a command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "radpat",
		Short:        "antenna radiation pattern explorer",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runExplore,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&outDir, "out", "", "output directory")
	pf.StringVar(&format, "format", "", "image format: png or svg")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.Float64Var(&length, "length", 0.5, "element length in wavelengths (dipole, monopole)")
	pf.Float64Var(&spacing, "spacing", 0.5, "element spacing in wavelengths (array)")
	pf.Float64Var(&phase, "phase", 0, "phase difference in degrees (array)")
	pf.IntVar(&directors, "directors", 3, "number of directors (yagi)")

	exploreCmd := &cobra.Command{
		Use:   "explore [type]",
		Short: "interactive terminal explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExplore,
	}
	exploreCmd.Flags().StringVar(&themeName, "theme", "", "colour theme")

	renderCmd := &cobra.Command{
		Use:   "render [type]",
		Short: "render azimuth, elevation and 3D panels to image files",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}

	paramsCmd := &cobra.Command{
		Use:   "params [type]",
		Short: "print estimated gain, beamwidth, front-to-back and efficiency",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runParams,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [type]",
		Short: "plot the pattern cuts in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [type]",
		Short: "measure the sampled pattern and its angular spectrum",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [type]",
		Short: "save a composite PNG of all panels and metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [type]",
		Short: "export pattern and summary to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [type]",
		Short: "export pattern cuts to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCSV,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [type]",
		Short: "tabulate estimates and measurements across the main parameter range",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&workers, "workers", 4, "parallel workers")

	presetsCmd := &cobra.Command{
		Use:   "presets [type]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresets,
	}

	rootCmd.AddCommand(exploreCmd, renderCmd, paramsCmd, plotCmd, analyzeCmd, snapshotCmd, exportJSONCmd, exportCSVCmd, sweepCmd, presetsCmd)
	return rootCmd
}
