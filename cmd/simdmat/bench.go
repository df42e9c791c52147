package main

import (
	"fmt"
	"math/rand"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hwy-kernels/simdmat/hwy/contrib/matrix"
	"github.com/hwy-kernels/simdmat/hwy/contrib/workerpool"
)

type benchOptions struct {
	op          string
	s           shape
	iterations  int
	concurrency int
	bands       bool
	all         bool
	seed        int64
}

type benchResult struct {
	backend matrix.Backend
	elapsed time.Duration
	gflops  float64
}

func newBenchCmd(opts *options) *cobra.Command {
	bo := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure kernel throughput",
		Long: "Measure kernel throughput. With --concurrency N, N independent problems run\n" +
			"at once on a worker pool; with --bands, a single matrix product is split into\n" +
			"row bands across the pool instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bo.iterations <= 0 {
				return fmt.Errorf("--iterations must be positive, got %d", bo.iterations)
			}
			if bo.bands && bo.op != opMatMul && bo.op != opMatMulT {
				return fmt.Errorf("--bands needs --op %s or %s", opMatMul, opMatMulT)
			}

			var backends []matrix.Backend
			if bo.all {
				backends = lo.Filter(matrix.Backends(), func(b matrix.Backend, _ int) bool { return matrix.Supported(b) })
			} else {
				b, err := opts.selectedBackend()
				if err != nil {
					return err
				}
				backends = []matrix.Backend{b}
			}

			pool := workerpool.New(bo.concurrency)
			defer pool.Close()

			results := make([]benchResult, 0, len(backends))
			for _, b := range backends {
				res, err := benchBackend(pool, b, bo)
				if err != nil {
					return err
				}
				opts.logger.Debug("bench", "backend", b.String(), "elapsed", res.elapsed)
				results = append(results, res)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "backend\top\tshape\tworkers\ttime/op\tGFLOPS\n")
			for _, r := range results {
				perOp := r.elapsed / time.Duration(bo.iterations)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%.3f\n", r.backend, bo.op, bo.s, pool.NumWorkers(), perOp, r.gflops)
			}
			return tw.Flush()
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&bo.op, "op", opMatMul, "operation ("+strings.Join(operations, ", ")+")")
	addShapeFlags(fs, &bo.s, 256)
	fs.IntVar(&bo.iterations, "iterations", 10, "runs per problem")
	fs.IntVar(&bo.concurrency, "concurrency", 1, "worker pool size (0 means GOMAXPROCS)")
	fs.BoolVar(&bo.bands, "bands", false, "split one product into row bands instead of running independent problems")
	fs.BoolVar(&bo.all, "all", false, "benchmark every selectable backend")
	fs.Int64Var(&bo.seed, "seed", 1, "random seed for the operands")
	return cmd
}

func benchBackend(pool *workerpool.Pool, backend matrix.Backend, bo *benchOptions) (benchResult, error) {
	rng := rand.New(rand.NewSource(bo.seed))
	workers := pool.NumWorkers()
	if bo.bands {
		workers = 1
	}

	problems := make([]*problem, workers)
	for i := range problems {
		p, err := newProblem(bo.op, bo.s, rng)
		if err != nil {
			return benchResult{}, err
		}
		problems[i] = p
	}

	start := time.Now()
	if bo.bands {
		p := problems[0]
		s := p.s
		for range bo.iterations {
			if p.op == opMatMul {
				matrix.ParallelMatMulWith(pool, backend, p.a, p.b, s.k, s.m, s.n, s.k, p.r)
			} else {
				matrix.ParallelMatMulTransposedWith(pool, backend, p.a, p.b, s.k, s.m, s.k, s.n, p.r)
			}
		}
	} else {
		pool.ParallelForAtomic(len(problems), func(i int) {
			for range bo.iterations {
				problems[i].run(backend)
			}
		})
	}
	elapsed := time.Since(start)

	total := problems[0].flops() * float64(bo.iterations) * float64(len(problems))
	return benchResult{
		backend: backend,
		elapsed: elapsed,
		gflops:  total / elapsed.Seconds() / 1e9,
	}, nil
}
