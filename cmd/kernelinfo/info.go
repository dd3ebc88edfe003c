package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spike/dsp/kernel"
	"github.com/cwbudde/algo-spike/dsp/quantity"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in kernel shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range kernel.Shapes() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

type infoOptions struct {
	size         string
	rate         string
	areaFraction float64
	numBins      int
	normalize    bool
}

func newInfoCmd() *cobra.Command {
	var o infoOptions

	cmd := &cobra.Command{
		Use:   "info [shape ...]",
		Short: "Print properties and discretization of kernels",
		Long:  "Print symmetry, normalization factor, boundary and discretization of kernels.\nWithout arguments all built-in shapes are listed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args, o)
		},
	}
	cmd.Flags().StringVar(&o.size, "size", "1 s", "Kernel size")
	cmd.Flags().StringVar(&o.rate, "rate", "1 kHz", "Sampling rate of the discretization")
	cmd.Flags().Float64Var(&o.areaFraction, "area-fraction", kernel.DefaultAreaFraction, "Area fraction covered by the boundary and the discretization")
	cmd.Flags().IntVar(&o.numBins, "num-bins", 0, "Number of discretization samples (overrides --area-fraction)")
	cmd.Flags().BoolVar(&o.normalize, "normalize", true, "Scale kernels to unit area")
	return cmd
}

func runInfo(cmd *cobra.Command, args []string, o infoOptions) error {
	size, err := quantity.ParseQuantity(o.size)
	if err != nil {
		return err
	}
	rate, err := quantity.ParseQuantity(o.rate)
	if err != nil {
		return err
	}

	shapes := kernel.Shapes()
	if len(args) > 0 {
		shapes = shapes[:0:0]
		for _, a := range args {
			s, err := kernel.ParseShape(a)
			if err != nil {
				return err
			}
			shapes = append(shapes, s)
		}
	}

	opts := kernel.DiscretizeOptions{AreaFraction: o.areaFraction, NumBins: o.numBins}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SHAPE\tSYMMETRIC\tNORM FACTOR\tBOUNDARY\tSAMPLES\tAREA")
	for _, s := range shapes {
		k, err := kernel.New(s, size, o.normalize)
		if err != nil {
			return err
		}
		f, err := k.NormalizationFactor(size)
		if err != nil {
			return err
		}
		b, err := k.BoundaryEnclosingAtLeast(o.areaFraction)
		if err != nil {
			return err
		}
		w, err := kernel.Discretize(k, rate, opts)
		if err != nil {
			return fmt.Errorf("%v: %w", s, err)
		}
		area := w.Sum().Mul(rate.Inverse()).Simplified()

		fmt.Fprintf(tw, "%v\t%t\t%.6g %v\t%.6g %v\t%d\t%.6g\n",
			s, k.IsSymmetric(), f.Value, f.Unit, b.Value, b.Unit, w.Len(), area.Value)
	}
	return tw.Flush()
}
