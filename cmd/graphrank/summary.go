// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/graphrank/internal/dispatch"
	"github.com/katalvlaran/graphrank/ranking"
	"github.com/olekukonko/tablewriter"
)

// printSummary renders the leaderboard with scores, best first.
func printSummary(w io.Writer, r *ranking.Ranking, st dispatch.Stats) error {
	table := tablewriter.NewTable(w)
	table.Header([]string{"RANK", "GRAPH", "SCORE"})

	for i, e := range r.Entries() {
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.GraphID),
			strconv.FormatUint(e.Score, 10),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "submitted=%d admitted=%d reports=%d capacity=%d\n",
		st.Submitted, st.Admitted, st.Reports, r.Cap())

	return err
}
