package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spike/dsp/quantity"
	"github.com/cwbudde/algo-spike/measure/distance"
)

const (
	measureVanRossum = "vanrossum"
	measureSchreiber = "schreiber"
)

func newDistanceCmd() *cobra.Command {
	var configPath, tau, measure string

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Print the pairwise distance matrix of the configured trains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigFile(configPath)
			if err != nil {
				return err
			}
			if tau != "" {
				cfg.Tau = tau
			}
			names, d, err := distanceMatrix(cfg, measure)
			if err != nil {
				return err
			}
			return printMatrix(cmd, names, d)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML document listing the trains")
	cmd.Flags().StringVar(&tau, "tau", "", "Van Rossum time constant (defaults to the config tau or kernel size)")
	cmd.Flags().StringVar(&measure, "measure", measureVanRossum, "Measure: vanrossum or schreiber")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func distanceMatrix(cfg Config, measure string) ([]string, *mat.Dense, error) {
	names, trains, err := cfg.trains()
	if err != nil {
		return nil, nil, err
	}
	times := make([]quantity.Array, len(trains))
	for i, tr := range trains {
		times[i] = tr.Times
	}
	logrus.Infof("computing %s matrix of %d trains", measure, len(times))

	switch strings.ToLower(measure) {
	case measureVanRossum:
		tau, err := cfg.tau()
		if err != nil {
			return nil, nil, err
		}
		d, err := distance.VanRossum(times, tau, false)
		return names, d, err
	case measureSchreiber:
		k, err := cfg.kernel()
		if err != nil {
			return nil, nil, err
		}
		d, err := distance.SchreiberSimilarity(times, k, false)
		return names, d, err
	default:
		return nil, nil, fmt.Errorf("unknown measure %q (use %s or %s)", measure, measureVanRossum, measureSchreiber)
	}
}

func printMatrix(cmd *cobra.Command, names []string, d *mat.Dense) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(names, "\t"))
	for i, name := range names {
		fmt.Fprintf(tw, "%s\t", name)
		for j := range names {
			fmt.Fprintf(tw, "%.4f\t", d.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
