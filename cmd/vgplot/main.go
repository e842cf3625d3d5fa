// Package main provides the vgplot command line front end.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Ionsto/vgplot"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	xColumn  int
	output   string
	format   string
	title    string
	command  string
	debug    bool
	hold     time.Duration
	widthCm  float64
	heightCm float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vgplot [data file...]",
		Short: "Plot numeric text files with gnuplot",
		Long: `vgplot reads whitespace or character delimited numeric text files
and plots one curve per column through a gnuplot subprocess.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().IntVarP(&xColumn, "x-column", "x", -1, "Column to use as x axis (default: row index)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Export the plot to this file instead of showing it")
	rootCmd.Flags().StringVar(&format, "format", "", "Export format (default: guessed from the output extension)")
	rootCmd.Flags().StringVar(&title, "title", "", "Plot title")
	rootCmd.Flags().StringVar(&command, "command", "gnuplot -persist", "gnuplot command line")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log all gnuplot traffic")
	rootCmd.Flags().DurationVar(&hold, "hold", 0, "Keep the plot window open this long before quitting")
	rootCmd.Flags().Float64Var(&widthCm, "width", 0, "Export width in centimeters")
	rootCmd.Flags().Float64Var(&heightCm, "height", 0, "Export height in centimeters")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := []vgplot.Option{vgplot.WithCommand(command)}
	if debug {
		opts = append(opts, vgplot.WithDebug())
	}
	m := vgplot.New(opts...)
	defer m.CloseAll()

	if title != "" {
		if err := m.SetTitle(title); err != nil {
			return err
		}
	}
	for i, path := range args {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("file not found: %s", path)
		}
		if i > 0 {
			// Every file gets its own window.
			if err := m.NewPlot(); err != nil {
				return err
			}
		}
		if err := m.PlotDataFile(path, xColumn); err != nil {
			return fmt.Errorf("plotting %s failed: %w", path, err)
		}
	}

	if output != "" {
		w := vg.Length(widthCm) * vg.Centimeter
		h := vg.Length(heightCm) * vg.Centimeter
		if err := m.Export(output, format, w, h); err != nil {
			return err
		}
	}
	if hold > 0 {
		time.Sleep(hold)
	}
	return nil
}
