package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hwy-kernels/simdmat/hwy/contrib/matrix"
)

// options holds the flags shared by every subcommand.
type options struct {
	logLevel  string
	vectorize bool
	backend   string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "simdmat",
		Short:        "Inspect and exercise the float32 matrix kernels",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	addGlobalFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(
		newInfoCmd(opts),
		newRunCmd(opts),
		newVerifyCmd(opts),
		newBenchCmd(opts),
	)
	return cmd
}

func addGlobalFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.BoolVar(&opts.vectorize, "vectorize", true, "run on the preferred vector backend instead of scalar")
	fs.StringVar(&opts.backend, "backend", "", "force a backend ("+strings.Join(backendNames(matrix.Backends()), ", ")+"); overrides --vectorize")
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// selectedBackend resolves --backend, falling back to --vectorize.
func (o *options) selectedBackend() (matrix.Backend, error) {
	if o.backend == "" {
		return matrix.Resolve(o.vectorize), nil
	}
	b, err := matrix.ParseBackend(o.backend)
	if err != nil {
		return 0, err
	}
	if !matrix.Supported(b) {
		return 0, fmt.Errorf("backend %s is not supported on this CPU (available: %s)",
			b, strings.Join(backendNames(matrix.Available()), ", "))
	}
	return b, nil
}

func backendNames(bs []matrix.Backend) []string {
	return lo.Map(bs, func(b matrix.Backend, _ int) string { return b.String() })
}
