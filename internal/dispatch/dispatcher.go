// SPDX-License-Identifier: MIT

package dispatch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/graphrank/core"
	"github.com/katalvlaran/graphrank/dijkstra"
	"github.com/katalvlaran/graphrank/internal/metrics"
	"github.com/katalvlaran/graphrank/ranking"
	"github.com/rs/zerolog"
)

// Canonical command words. Only the first letter is significant.
const (
	CmdSubmit = "AggiungiGrafo"
	CmdReport = "TopK"
)

// Stats summarizes a run.
type Stats struct {
	Submitted int
	Admitted  int
	Reports   int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// Dispatcher owns the RankingState for one run and feeds it from the stream.
// It is not safe for concurrent use.
type Dispatcher struct {
	in    *scanner
	out   *bufio.Writer
	log   zerolog.Logger
	order int
	rank  *ranking.Ranking
	next  int
	stats Stats
}

// New returns a Dispatcher reading requests from r and writing reports to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		in:  newScanner(r),
		out: bufio.NewWriter(w),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run reads the header and processes commands until EOF. It returns the first
// malformed-input error, or ctx's error if ctx is done between commands. A
// submission that has started always runs to completion.
func (d *Dispatcher) Run(ctx context.Context) error {
	err := d.run(ctx)
	if err != nil && !errors.Is(err, ctx.Err()) {
		metrics.InputErrorsTotal.WithLabelValues(errorKind(err)).Inc()
	}
	if ferr := d.out.Flush(); err == nil {
		err = ferr
	}

	return err
}

func (d *Dispatcher) run(ctx context.Context) error {
	if err := d.readHeader(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := d.in.command()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if cmd == "" {
			continue
		}

		switch cmd[0] {
		case CmdSubmit[0]:
			err = d.submit()
		case CmdReport[0]:
			err = d.report()
		default:
			err = fmt.Errorf("line %d: %w: %q", d.in.cmdLine, ErrUnknownCommand, cmd)
		}
		if err != nil {
			return err
		}
	}
}

// readHeader consumes "N K" and creates the ranking.
func (d *Dispatcher) readHeader() error {
	n, err := d.in.number()
	if err != nil {
		return fmt.Errorf("%w: vertex count: %w", ErrBadHeader, eofAsUnexpected(err))
	}
	k, err := d.in.number()
	if err != nil {
		return fmt.Errorf("%w: capacity: %w", ErrBadHeader, eofAsUnexpected(err))
	}
	if n == 0 || n > math.MaxInt32 || k > math.MaxInt32 {
		return fmt.Errorf("%w: N=%d K=%d", ErrBadHeader, n, k)
	}

	d.order = int(n)
	d.rank = ranking.New(int(k))
	d.log.Info().Int("vertices", d.order).Int("capacity", d.rank.Cap()).Msg("header read")

	return nil
}

// submit reads one N×N matrix, scores it and offers it to the ranking.
func (d *Dispatcher) submit() error {
	id := d.next
	m := make([][]uint64, d.order)
	for i := range m {
		m[i] = make([]uint64, d.order)
		for j := range m[i] {
			v, err := d.in.number()
			// A command word here means the matrix stopped short.
			if err == io.EOF || errors.Is(err, errWord) {
				return fmt.Errorf("line %d: graph %d: %w at row %d col %d",
					d.in.line, id, ErrTruncatedMatrix, i, j)
			}
			if err != nil {
				return fmt.Errorf("line %d: graph %d: %w", d.in.line, id, err)
			}
			m[i][j] = v
		}
	}

	start := time.Now()
	g, err := core.NewGraphOrder(id, d.order, m)
	if err != nil {
		return fmt.Errorf("graph %d: %w", id, err)
	}
	res, err := dijkstra.Compute(g)
	if err != nil {
		return fmt.Errorf("graph %d: %w", id, err)
	}
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	d.next++
	admitted := d.rank.Offer(res.Score, id)

	d.stats.Submitted++
	metrics.GraphsSubmittedTotal.Inc()
	metrics.GraphScore.Observe(float64(res.Score))
	if admitted {
		d.stats.Admitted++
		metrics.GraphsAdmittedTotal.Inc()
		metrics.RankingSize.Set(float64(d.rank.Len()))
	}
	d.log.Debug().
		Int("graph_id", id).
		Uint64("score", res.Score).
		Int("reached", res.Reached).
		Bool("admitted", admitted).
		Msg("graph scored")

	return nil
}

// report writes the current leaderboard as one line.
func (d *Dispatcher) report() error {
	d.stats.Reports++
	metrics.ReportsTotal.Inc()

	if _, err := d.out.WriteString(d.rank.Format() + "\n"); err != nil {
		return err
	}

	return d.out.Flush()
}

// Order returns N, or 0 before the header is read.
func (d *Dispatcher) Order() int { return d.order }

// Ranking returns the ranking state, or nil before the header is read.
func (d *Dispatcher) Ranking() *ranking.Ranking { return d.rank }

// Stats returns the counters accumulated so far.
func (d *Dispatcher) Stats() Stats { return d.stats }

func eofAsUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
