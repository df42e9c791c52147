package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hwy-kernels/simdmat/hwy/contrib/matrix"
)

// verifyShapes covers vector bodies, every tail length and degenerate 1-wide
// cases for both step sizes.
var verifyShapes = []shape{
	{1, 1, 1}, {2, 2, 2}, {3, 5, 7}, {4, 4, 4}, {8, 8, 8},
	{9, 3, 15}, {16, 16, 16}, {5, 17, 33}, {31, 7, 64}, {1, 40, 100},
}

type verifyOptions struct {
	seed        int64
	tolerance   float64
	concurrency int
}

// mismatch records the worst element of one case that fell outside tolerance.
type mismatch struct {
	op      string
	s       shape
	backend matrix.Backend
	index   int
	want    float32
	got     float32
}

func (m mismatch) String() string {
	return fmt.Sprintf("%s %s on %s: r[%d] = %g, scalar gives %g", m.op, m.s, m.backend, m.index, m.got, m.want)
}

func newVerifyCmd(opts *options) *cobra.Command {
	vo := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every selectable backend against the scalar backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backends := lo.Filter(matrix.Backends(), func(b matrix.Backend, _ int) bool {
				return b != matrix.BackendScalar && matrix.Supported(b)
			})
			bad, cases, err := verify(cmd.Context(), backends, vo)
			if err != nil {
				return err
			}
			for _, m := range bad {
				opts.logger.Error("mismatch", "detail", m.String())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cases on %d backends, %d mismatches\n", cases, len(backends), len(bad))
			if len(bad) > 0 {
				return fmt.Errorf("%d cases outside tolerance %g", len(bad), vo.tolerance)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Int64Var(&vo.seed, "seed", 1, "random seed for the operands")
	fs.Float64Var(&vo.tolerance, "tolerance", 1e-4, "allowed relative difference from scalar")
	fs.IntVar(&vo.concurrency, "concurrency", runtime.GOMAXPROCS(0), "cases checked at once")
	return cmd
}

// verify runs every (operation, shape) case on the given backends and
// compares each against scalar. Every case owns its buffers, so cases run
// concurrently.
func verify(ctx context.Context, backends []matrix.Backend, vo *verifyOptions) ([]mismatch, int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(vo.concurrency, 1))

	var (
		mu  sync.Mutex
		bad []mismatch
	)
	cases := 0
	for _, op := range operations {
		for i, s := range verifyShapes {
			cases++
			seed := vo.seed + int64(cases)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				p, err := newProblem(op, s, rand.New(rand.NewSource(seed)))
				if err != nil {
					return fmt.Errorf("case %d: %w", i, err)
				}
				p.run(matrix.BackendScalar)
				for _, b := range backends {
					got := make([]float32, len(p.r))
					p.runInto(b, got)
					if m, ok := worst(p.r, got, vo.tolerance); !ok {
						m.op, m.s, m.backend = op, s, b
						mu.Lock()
						bad = append(bad, m)
						mu.Unlock()
					}
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, cases, err
	}
	return bad, cases, nil
}

// worst returns the element with the largest relative error and whether all
// elements are within tol. Values near zero are compared absolutely.
func worst(want, got []float32, tol float64) (mismatch, bool) {
	var m mismatch
	maxErr := -1.0
	for i := range want {
		diff := math.Abs(float64(want[i]) - float64(got[i]))
		scale := max(math.Abs(float64(want[i])), 1)
		if e := diff / scale; e > maxErr {
			maxErr = e
			m = mismatch{index: i, want: want[i], got: got[i]}
		}
	}
	return m, maxErr <= tol
}
