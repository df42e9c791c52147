package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

type runOptions struct {
	op    string
	s     shape
	seed  int64
	demo  bool
	print bool
}

func newRunCmd(opts *options) *cobra.Command {
	ro := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one operation and print the result",
		Long: "Run one operation on random operands (or, with --demo, on A=[[1,2],[3,4]] and\n" +
			"B=[[5,6],[7,8]]) and print the result matrix.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := opts.selectedBackend()
			if err != nil {
				return err
			}

			var p *problem
			if ro.demo {
				p, err = demoProblem(ro.op)
			} else {
				p, err = newProblem(ro.op, ro.s, rand.New(rand.NewSource(ro.seed)))
			}
			if err != nil {
				return err
			}

			opts.logger.Info("running", "op", p.op, "shape", p.s.String(), "backend", backend.String())
			p.run(backend)
			if ro.print {
				printMatrix(cmd.OutOrStdout(), p.r, p.s.n)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&ro.op, "op", opMatMul, "operation ("+strings.Join(operations, ", ")+")")
	addShapeFlags(fs, &ro.s, 2)
	fs.Int64Var(&ro.seed, "seed", 1, "random seed for the operands")
	fs.BoolVar(&ro.demo, "demo", false, "use the fixed 2x2 operands instead of random ones")
	fs.BoolVar(&ro.print, "print", true, "print the result matrix")
	return cmd
}

func demoProblem(op string) (*problem, error) {
	p, err := newProblem(op, shape{m: 2, n: 2, k: 2}, rand.New(rand.NewSource(0)))
	if err != nil {
		return nil, err
	}
	copy(p.a, []float32{1, 2, 3, 4})
	copy(p.b, []float32{5, 6, 7, 8})
	return p, nil
}

// printMatrix writes r as rows of width values.
func printMatrix(w io.Writer, r []float32, width int) {
	for row := 0; row < len(r); row += width {
		cells := make([]string, width)
		for i, v := range r[row : row+width] {
			cells[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}
