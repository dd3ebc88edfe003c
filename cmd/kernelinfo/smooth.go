package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-spike/dsp/conv"
	"github.com/cwbudde/algo-spike/dsp/kernel"
	"github.com/cwbudde/algo-spike/dsp/quantity"
	"github.com/cwbudde/algo-spike/dsp/rate"
)

// rateCurve is the smoothed rate of one train sampled at bin centres.
type rateCurve struct {
	name    string
	spikes  int
	centers quantity.Array
	rates   quantity.Array
}

func newSmoothCmd() *cobra.Command {
	var configPath, mode, plotPath string

	cmd := &cobra.Command{
		Use:   "smooth",
		Short: "Estimate firing rates of the configured trains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigFile(configPath)
			if err != nil {
				return err
			}
			m, ok := conv.ParseMode(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q (use full, same or valid)", mode)
			}
			curves, err := smoothTrains(cfg, m)
			if err != nil {
				return err
			}
			if err := printCurves(cmd, curves); err != nil {
				return err
			}
			if plotPath != "" {
				if err := plotCurves(curves, plotPath); err != nil {
					return err
				}
				logrus.Infof("wrote %s", plotPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML document listing the trains")
	cmd.Flags().StringVar(&mode, "mode", "same", "Convolution mode: full, same or valid")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Write a rate plot to this file (png, svg, pdf)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func smoothTrains(cfg Config, mode conv.Mode) ([]rateCurve, error) {
	names, trains, err := cfg.trains()
	if err != nil {
		return nil, err
	}
	k, err := cfg.kernel()
	if err != nil {
		return nil, err
	}
	sr, err := cfg.samplingRate()
	if err != nil {
		return nil, err
	}
	logrus.Infof("smoothing %d trains with %v at %v", len(trains), k, sr)

	curves := make([]rateCurve, len(trains))
	for i, tr := range trains {
		smoothed, edges, err := rate.Convolve(tr, k, sr, mode, nil, kernel.DefaultDiscretizeOptions())
		if err != nil {
			return nil, fmt.Errorf("train %s: %w", names[i], err)
		}
		centers := make([]float64, smoothed.Len())
		if smoothed.Len() > 0 {
			floats.AddTo(centers, edges.Values[:smoothed.Len()], edges.Values[1:])
			floats.Scale(0.5, centers)
		}
		curves[i] = rateCurve{
			name:    names[i],
			spikes:  tr.Len(),
			centers: quantity.NewArray(centers, edges.Unit),
			rates:   smoothed,
		}
	}
	return curves, nil
}

func printCurves(cmd *cobra.Command, curves []rateCurve) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRAIN\tSPIKES\tBINS\tPEAK\tMEAN\tUNIT")
	for _, c := range curves {
		peak, mean := 0.0, 0.0
		if c.rates.Len() > 0 {
			peak = floats.Max(c.rates.Values)
			mean = c.rates.Sum().Value / float64(c.rates.Len())
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.4g\t%.4g\t%v\n", c.name, c.spikes, c.rates.Len(), peak, mean, c.rates.Unit)
	}
	return tw.Flush()
}

func plotCurves(curves []rateCurve, path string) error {
	p := plot.New()
	p.Title.Text = "Smoothed firing rates"
	if len(curves) > 0 {
		p.X.Label.Text = fmt.Sprintf("time (%v)", curves[0].centers.Unit)
		p.Y.Label.Text = fmt.Sprintf("rate (%v)", curves[0].rates.Unit)
	}

	for i, c := range curves {
		if c.rates.Len() == 0 {
			continue
		}
		xys := make(plotter.XYs, c.rates.Len())
		for j := range xys {
			xys[j].X = c.centers.Values[j]
			xys[j].Y = c.rates.Values[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plot %s: %w", c.name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(c.name, line)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
