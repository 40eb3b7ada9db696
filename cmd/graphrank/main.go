// SPDX-License-Identifier: MIT

// Command graphrank reads a stream of weighted graphs, scores each by the sum
// of shortest-path distances from vertex 0, and reports the K best on demand.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
