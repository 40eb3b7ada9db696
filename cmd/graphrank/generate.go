// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/graphrank/builder"
	"github.com/katalvlaran/graphrank/internal/dispatch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrBadGenerateFlags reports an invalid generate flag combination.
var ErrBadGenerateFlags = errors.New("generate: invalid flags")

type generateOptions struct {
	vertices    int
	capacity    int
	graphs      int
	density     float64
	seed        int64
	minWeight   uint64
	maxWeight   uint64
	reportEvery int
}

func newGenerateCmd() *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic request stream of random graphs to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.validate(); err != nil {
				return err
			}
			return o.write(cmd.OutOrStdout())
		},
	}
	addGenerateFlags(cmd.Flags(), o)

	return cmd
}

func addGenerateFlags(fs *pflag.FlagSet, o *generateOptions) {
	fs.IntVarP(&o.vertices, "vertices", "n", 10, "Vertex count N shared by every graph")
	fs.IntVarP(&o.capacity, "capacity", "k", 3, "Ranking capacity K")
	fs.IntVarP(&o.graphs, "graphs", "g", 20, "Number of graphs to submit")
	fs.Float64VarP(&o.density, "density", "p", 0.3, "Probability of each arc")
	fs.Int64Var(&o.seed, "seed", 1, "Random seed")
	fs.Uint64Var(&o.minWeight, "min-weight", 1, "Smallest arc weight")
	fs.Uint64Var(&o.maxWeight, "max-weight", 100, "Largest arc weight")
	fs.IntVar(&o.reportEvery, "report-every", 5, "Emit a report after every this many graphs (0: only at the end)")
}

func (o *generateOptions) validate() error {
	switch {
	case o.vertices < 1:
		return fmt.Errorf("%w: --vertices must be >= 1", ErrBadGenerateFlags)
	case o.capacity < 0:
		return fmt.Errorf("%w: --capacity must be >= 0", ErrBadGenerateFlags)
	case o.graphs < 0:
		return fmt.Errorf("%w: --graphs must be >= 0", ErrBadGenerateFlags)
	case o.density < 0 || o.density > 1:
		return fmt.Errorf("%w: --density must be in [0,1]", ErrBadGenerateFlags)
	case o.minWeight < 1 || o.maxWeight < o.minWeight:
		return fmt.Errorf("%w: need 1 <= --min-weight <= --max-weight", ErrBadGenerateFlags)
	case o.reportEvery < 0:
		return fmt.Errorf("%w: --report-every must be >= 0", ErrBadGenerateFlags)
	}

	return nil
}

// write emits the header, every graph, periodic reports and a final report.
func (o *generateOptions) write(w io.Writer) error {
	enc := dispatch.NewEncoder(w)
	if err := enc.Header(o.vertices, o.capacity); err != nil {
		return err
	}

	// One RNG across graphs so that consecutive graphs differ for a fixed seed.
	bopts := []builder.BuilderOption{
		builder.WithRand(rand.New(rand.NewSource(o.seed))),
		builder.WithWeightFn(builder.UniformWeightFn(o.minWeight, o.maxWeight)),
	}
	for i := 1; i <= o.graphs; i++ {
		m, err := builder.BuildMatrix(o.vertices, bopts, builder.RandomSparse(o.density))
		if err != nil {
			return err
		}
		if err := enc.Submit(m); err != nil {
			return err
		}
		if o.reportEvery > 0 && i%o.reportEvery == 0 && i != o.graphs {
			if err := enc.Report(); err != nil {
				return err
			}
		}
	}
	if err := enc.Report(); err != nil {
		return err
	}

	return enc.Flush()
}
