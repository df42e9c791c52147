package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hwy-kernels/simdmat/hwy"
	"github.com/hwy-kernels/simdmat/hwy/contrib/matrix"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level, CPU features and backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "level:          %s (%d-byte registers)\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(out, "vector kernels: %v\n", hwy.HasVectorKernels())
			fmt.Fprintf(out, "cpu:            %s\n", hwy.Features())
			fmt.Fprintf(out, "preferred:      %s\n", matrix.Preferred())
			fmt.Fprintf(out, "available:      %s\n", strings.Join(backendNames(matrix.Available()), ", "))

			supported := lo.Filter(matrix.Backends(), func(b matrix.Backend, _ int) bool { return matrix.Supported(b) })
			fmt.Fprintf(out, "selectable:     %s\n", strings.Join(backendNames(supported), ", "))

			maxBits, _ := hwy.MaxWidthEnv()
			opts.logger.Debug("environment", "HWY_NO_SIMD", hwy.NoSimdEnv(), "HWY_MAX_WIDTH", maxBits)
			return nil
		},
	}
}
